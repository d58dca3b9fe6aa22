package main

import (
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

const (
	LSP_SUBCMD                   = "lsp"
	CHECK_SUBCMD                 = "check"
	VERSION_SUBCMD               = "version"
	INSTALL_COMPLETIONS_SUBCMD   = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD = "uninstall-completions"
	HELP_SUBCMD                  = "help"
)

var (
	SUBCOMMANDS = []string{
		LSP_SUBCMD, CHECK_SUBCMD, VERSION_SUBCMD, HELP_SUBCMD,
		INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD,
	}

	HELP_SUBCMD_EQUIVALENTS = []string{"--help", "-help", "-h"}

	SUBCOMMAND_DESCRIPTIONS = [][2]string{
		{LSP_SUBCMD, "start the language server (LSP), stdio transport by default"},
		{CHECK_SUBCMD, "analyze ucode files and print the diagnostics"},
		{VERSION_SUBCMD, "show the version"},

		{INSTALL_COMPLETIONS_SUBCMD, "install CLI completions by adding the completion command to the detected rc file (supported shells are bash, zsh and fish)"},
		{UNINSTALL_COMPLETIONS_SUBCMD, "uninstall CLI completions by removing the completion command from the detected rc file"},
		{HELP_SUBCMD, "show the general help or command-specific help"},
	}

	SUBCOMMAND_DESCRIPTION_MAP = map[string]string{}

	UCLS_CMD_HELP = "commands:\n"

	cmd = &complete.Command{
		Sub: map[string]*complete.Command{
			LSP_SUBCMD: {
				Flags: map[string]complete.Predictor{
					"stdio":     predict.Nothing,
					"websocket": predict.Set{"localhost:9257"},
					"config":    predict.Set{`'{"port":9257}'`},
				},
			},
			CHECK_SUBCMD: {
				Flags: map[string]complete.Predictor{
					"watch":      predict.Nothing,
					"no-color":   predict.Nothing,
					"signatures": predict.Files("*.yaml"),
				},
				Args: predict.Files("*.uc"),
			},
			VERSION_SUBCMD:               {},
			HELP_SUBCMD:                  {},
			INSTALL_COMPLETIONS_SUBCMD:   {},
			UNINSTALL_COMPLETIONS_SUBCMD: {},
		},
	}
)

func init() {
	for _, entry := range SUBCOMMAND_DESCRIPTIONS {
		cmd, desc := entry[0], entry[1]
		SUBCOMMAND_DESCRIPTION_MAP[cmd] = desc
		UCLS_CMD_HELP += "\t" + cmd + " - " + desc + "\n"
	}
	UCLS_CMD_HELP += "\nType `ucls help <command>` to get command-specific help.\n"
}

func moveFlagsStart(args []string) {
	index := 0

	for i := range args {
		if args[i] == "--" {
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			temp := args[i]
			args[i] = args[index]
			args[index] = temp
			index++
		}
	}
}

func showHelp(flags *flag.FlagSet, args []string, out io.Writer) bool {
	//only show help
	if slices.Contains(args, "-h") || slices.Contains(args, "--help") {

		cmd := flags.Name()
		if desc, ok := SUBCOMMAND_DESCRIPTION_MAP[cmd]; ok {
			fmt.Fprintln(out, desc)
		}

		flags.SetOutput(out)
		fmt.Fprint(out, "\noptions:\n")
		flags.PrintDefaults()

		return true
	}

	return false
}
