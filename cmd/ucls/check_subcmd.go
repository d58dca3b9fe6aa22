package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ucodelang/ucls/internal/analysis"
	"github.com/ucodelang/ucls/internal/config"
	"github.com/ucodelang/ucls/internal/prettyprint"
	"github.com/ucodelang/ucls/internal/signatures"
	"github.com/ucodelang/ucls/internal/sourcecode"
)

func runCheckSubcommand(mainSubCommandArgs []string, outW io.Writer, errW io.Writer) int {
	//read and check arguments

	flags := flag.NewFlagSet(CHECK_SUBCMD, flag.ExitOnError)
	var watch bool
	var noColor bool
	var signatureFile string

	flags.BoolVar(&watch, "watch", false, "re-check the files whenever one of them changes")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.StringVar(&signatureFile, "signatures", "", "YAML file with additional builtin and module signatures")

	if showHelp(flags, mainSubCommandArgs, outW) { //only show help
		return 0
	}

	moveFlagsStart(mainSubCommandArgs)

	err := flags.Parse(mainSubCommandArgs)
	if err != nil {
		fmt.Fprintln(errW, "check:", err)
		return ERROR_STATUS_CODE
	}

	files := flags.Args()
	if len(files) == 0 {
		fmt.Fprintln(errW, "missing file paths")
		return ERROR_STATUS_CODE
	}

	registry := signatures.Default()
	if signatureFile != "" {
		if err := signatures.LoadFile(registry, signatureFile); err != nil {
			fmt.Fprintln(errW, "check:", err)
			return ERROR_STATUS_CODE
		}
	}

	colorize := config.SHOULD_COLORIZE && !noColor

	hasErrors := checkFiles(files, registry, colorize, outW, errW)

	if !watch {
		if hasErrors {
			return ERROR_STATUS_CODE
		}
		return 0
	}

	return watchAndRecheck(files, registry, colorize, outW, errW)
}

// checkFiles analyzes each file and prints its diagnostics, it reports
// whether at least one error-severity diagnostic (or unreadable file) was
// encountered.
func checkFiles(files []string, registry analysis.Registry, colorize bool, outW io.Writer, errW io.Writer) bool {
	hasErrors := false

	for _, fpath := range files {
		content, err := os.ReadFile(fpath)
		if err != nil {
			fmt.Fprintln(errW, "check:", err)
			hasErrors = true
			continue
		}

		result := analysis.Analyze(sourcecode.NewFile(fpath, string(content)), analysis.Options{
			Registry: registry,
		})

		for _, diag := range result.Diagnostics {
			prettyprint.PrintDiagnostic(outW, diag, colorize)
			if diag.Severity == analysis.ErrorSeverity {
				hasErrors = true
			}
		}
	}

	return hasErrors
}

// watchAndRecheck re-runs the check whenever one of the files changes. The
// parent directories are watched because most editors replace files on save
// instead of writing them in place.
func watchAndRecheck(files []string, registry analysis.Registry, colorize bool, outW io.Writer, errW io.Writer) int {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintln(errW, "check:", err)
		return ERROR_STATUS_CODE
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(files))
	for _, fpath := range files {
		watched[filepath.Clean(fpath)] = true

		if err := watcher.Add(filepath.Dir(fpath)); err != nil {
			fmt.Fprintln(errW, "check:", err)
			return ERROR_STATUS_CODE
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			checkFiles(files, registry, colorize, outW, errW)
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			fmt.Fprintln(errW, "check:", err)
		}
	}
}
