package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"unicode"

	"github.com/posener/complete/v2/install"

	"github.com/ucodelang/ucls/internal/config"
)

const (
	ERROR_STATUS_CODE = 1

	COMMAND_NAME = "ucls"
)

func main() {
	//handle completions
	cmd.Complete(COMMAND_NAME)

	statusCode := _main(os.Args, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	mainSubCommand := ""
	var mainSubCommandArgs []string

	if len(args) == 1 { //no subcommand specified
		mainSubCommand = HELP_SUBCMD
	} else {
		mainSubCommand = args[1]
		mainSubCommandArgs = args[2:]
	}

	if slices.Contains(HELP_SUBCMD_EQUIVALENTS, mainSubCommand) {
		mainSubCommand = HELP_SUBCMD
	}

	//if the command has the shape `help <subcommand> ...` we modify the
	//arguments to ask the subcommand to print its help message.
	if mainSubCommand == HELP_SUBCMD && len(mainSubCommandArgs) > 0 && mainSubCommandArgs[0] != "" &&
		unicode.IsLetter(rune(mainSubCommandArgs[0][0])) {
		mainSubCommand = mainSubCommandArgs[0]
		mainSubCommandArgs = []string{"-h"}
	}

	//unknown command
	if !slices.Contains(SUBCOMMANDS, mainSubCommand) {
		fmt.Fprintf(errW, "unknown command '%s'\n", mainSubCommand)
		fmt.Fprint(errW, UCLS_CMD_HELP)
		return ERROR_STATUS_CODE
	}

	switch mainSubCommand {
	case HELP_SUBCMD:
		fmt.Fprint(outW, UCLS_CMD_HELP)
		return
	case VERSION_SUBCMD:
		fmt.Fprintln(outW, config.APP_NAME, config.VERSION)
		return
	case INSTALL_COMPLETIONS_SUBCMD:
		err := install.Install(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
		} else {
			fmt.Fprintln(outW, "installed")
		}
		return
	case UNINSTALL_COMPLETIONS_SUBCMD:
		err := install.Uninstall(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
		} else {
			fmt.Fprintln(outW, "uninstalled")
		}
		return
	case LSP_SUBCMD:
		return runLspSubcommand(mainSubCommandArgs, outW, errW)
	case CHECK_SUBCMD:
		return runCheckSubcommand(mainSubCommandArgs, outW, errW)
	}
	return
}
