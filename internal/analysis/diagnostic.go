package analysis

import (
	"github.com/ucodelang/ucls/internal/sourcecode"
)

type Severity int

const (
	ErrorSeverity Severity = iota + 1
	WarningSeverity
)

func (s Severity) String() string {
	switch s {
	case ErrorSeverity:
		return "error"
	case WarningSeverity:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic codes are stable across releases so that editor-side tooling
// can filter on them. Lexer and parser diagnostics reuse the parsing error
// kinds ("parse", "syntax", "regex-flag") as their code.
const (
	UndefinedVariableCode = "undefined-variable"
	UndefinedFunctionCode = "undefined-function"
	RedeclarationCode     = "redeclaration"
	BuiltinShadowingCode  = "builtin-shadowing"
	ShadowingCode         = "shadowing"
	UnusedVariableCode    = "unused-variable"
	ConstAssignmentCode   = "const-assignment"
	ArityCode             = "arity"
	ArgumentTypeCode      = "argument-type"
	UnknownMemberCode     = "unknown-member"
)

const DiagnosticSource = "ucls"

// DisableLineDirective is the marker comment that downgrades every
// diagnostic starting on its line from error to warning.
const DisableLineDirective = "ucode-disable-line"

type Diagnostic struct {
	Span     sourcecode.NodeSpan      `json:"span"`
	Position sourcecode.PositionRange `json:"position"`
	Severity Severity                 `json:"severity"`
	Code     string                   `json:"code"`
	Message  string                   `json:"message"`
	Source   string                   `json:"source"`
}

// diagnosticSink is the shared, ordered collection the resolver and the
// type engine both write into.
type diagnosticSink struct {
	src   *sourcecode.File
	items []Diagnostic
}

func (s *diagnosticSink) add(span sourcecode.NodeSpan, severity Severity, code string, message string) {
	s.items = append(s.items, Diagnostic{
		Span:     span,
		Position: s.src.SpanPosition(span),
		Severity: severity,
		Code:     code,
		Message:  message,
		Source:   DiagnosticSource,
	})
}

func (s *diagnosticSink) addError(span sourcecode.NodeSpan, code string, message string) {
	s.add(span, ErrorSeverity, code, message)
}

func (s *diagnosticSink) addWarning(span sourcecode.NodeSpan, code string, message string) {
	s.add(span, WarningSeverity, code, message)
}
