package prettyprint

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/ucodelang/ucls/internal/analysis"
)

var (
	ANSI_RESET_SEQUENCE = []byte(termenv.CSI + termenv.ResetSeq + "m")

	ERROR_COLOR_SEQUENCE    = GetFullColorSequence(termenv.ANSIBrightRed, false)
	WARNING_COLOR_SEQUENCE  = GetFullColorSequence(termenv.ANSIYellow, false)
	LOCATION_COLOR_SEQUENCE = GetFullColorSequence(termenv.ANSIBrightBlack, false)
)

func GetFullColorSequence(color termenv.Color, bg bool) []byte {
	var b = []byte(termenv.CSI)
	b = append(b, []byte(color.Sequence(bg))...)
	b = append(b, 'm')
	return b
}

// PrintDiagnostic writes a diagnostic on its own line:
//
//	file.uc:3:5: error: undefined variable 'x' (undefined-variable)
//
// The severity is colorized when colorize is true.
func PrintDiagnostic(w io.Writer, diag analysis.Diagnostic, colorize bool) {
	pos := diag.Position

	if colorize {
		w.Write(LOCATION_COLOR_SEQUENCE)
	}
	fmt.Fprintf(w, "%s:%d:%d:", pos.SourceName, pos.StartLine, pos.StartColumn)
	if colorize {
		w.Write(ANSI_RESET_SEQUENCE)
	}

	if colorize {
		if diag.Severity == analysis.ErrorSeverity {
			w.Write(ERROR_COLOR_SEQUENCE)
		} else {
			w.Write(WARNING_COLOR_SEQUENCE)
		}
	}
	fmt.Fprintf(w, " %s:", diag.Severity)
	if colorize {
		w.Write(ANSI_RESET_SEQUENCE)
	}

	fmt.Fprintf(w, " %s (%s)\n", diag.Message, diag.Code)
}
