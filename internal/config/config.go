package config

import (
	"os"
	"time"
)

const (
	APP_NAME = "ucls"

	VERSION = "0.1.0"

	// SOURCE_LOG_FIELD_NAME is the log field identifying the subsystem a
	// log event comes from.
	SOURCE_LOG_FIELD_NAME = "src"

	// DEFAULT_WEBSOCKET_ADDR is the default address of the websocket LSP
	// endpoint.
	DEFAULT_WEBSOCKET_ADDR = "localhost:9257"

	// DIAGNOSTICS_DEBOUNCE_DURATION is how long the server waits after the
	// last edit before re-analyzing a document.
	DIAGNOSTICS_DEBOUNCE_DURATION = 150 * time.Millisecond

	// MAX_DOCUMENT_SIZE is the size in bytes above which a document is no
	// longer analyzed.
	MAX_DOCUMENT_SIZE = 10_000_000
)

var (
	FORCE_COLOR     bool
	NO_COLOR        bool
	SHOULD_COLORIZE bool
)

func init() {
	FORCE_COLOR = os.Getenv("FORCE_COLOR") != ""
	NO_COLOR = os.Getenv("NO_COLOR") != ""
	SHOULD_COLORIZE = !NO_COLOR && (FORCE_COLOR || isTerminal(os.Stdout))
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
