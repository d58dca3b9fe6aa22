package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ucodelang/ucls/internal/langserver"
	"github.com/ucodelang/ucls/internal/signatures"
)

func runLspSubcommand(mainSubCommandArgs []string, outW io.Writer, errW io.Writer) int {
	//read and check arguments

	flags := flag.NewFlagSet(LSP_SUBCMD, flag.ExitOnError)
	var stdio bool
	var websocketAddr string
	var configOrConfigFile string

	flags.BoolVar(&stdio, "stdio", false, "use the stdio transport (default)")
	flags.StringVar(&websocketAddr, "websocket", "", "listen on the given websocket address, examples: localhost:9257, :9257")
	flags.StringVar(&configOrConfigFile, "config", "", "JSON configuration or JSON file")

	if showHelp(flags, mainSubCommandArgs, outW) { //only show help
		return 0
	}

	err := flags.Parse(mainSubCommandArgs)
	if err != nil {
		fmt.Fprintln(errW, "lsp:", err)
		return ERROR_STATUS_CODE
	}

	if stdio && websocketAddr != "" {
		fmt.Fprintln(errW, "lsp: -stdio and -websocket are mutually exclusive flags")
		return ERROR_STATUS_CODE
	}

	var serverConfig langserver.IndividualServerConfig

	configOrConfigFile = strings.TrimSpace(configOrConfigFile)
	if configOrConfigFile != "" {
		if configOrConfigFile[0] == '{' {
			err := json.Unmarshal([]byte(configOrConfigFile), &serverConfig)
			if err != nil {
				fmt.Fprintln(errW, "lsp: failed to unmarshal configuration argument:", err)
				return ERROR_STATUS_CODE
			}
		} else {
			content, err := os.ReadFile(configOrConfigFile)
			if err != nil {
				fmt.Fprintln(errW, "lsp: failed to read configuration file:", err)
				return ERROR_STATUS_CODE
			}
			err = json.Unmarshal(content, &serverConfig)
			if err != nil {
				fmt.Fprintln(errW, "lsp: failed to unmarshal configuration file:", err)
				return ERROR_STATUS_CODE
			}
		}
	}

	if websocketAddr == "" && !stdio && serverConfig.Port > 0 {
		host := "localhost:"
		if serverConfig.BindToAllInterfaces {
			host = ":"
		}
		websocketAddr = host + strconv.Itoa(serverConfig.Port)
	}

	conf := langserver.ServerConfiguration{
		Registry: signatures.Default(),
	}

	if websocketAddr != "" {
		conf.Websocket = &langserver.WebsocketServerConfiguration{Addr: websocketAddr}

		//not in stdio mode, logging to stderr is fine
		conf.Logger = zerolog.New(errW).With().Timestamp().Logger()
	} else {
		//stdio mode: stdout carries the protocol, log to a file if one is
		//configured and to stderr otherwise
		logOut := io.Writer(errW)
		if serverConfig.LogFile != "" {
			f, err := os.OpenFile(serverConfig.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o600)
			if err != nil {
				fmt.Fprintln(errW, "lsp: failed to open log file:", err)
				return ERROR_STATUS_CODE
			}
			defer f.Close()
			logOut = f
		}
		conf.Logger = zerolog.New(logOut).With().Timestamp().Logger()
	}

	if err := langserver.StartServer(conf); err != nil {
		fmt.Fprintln(errW, "failed to start LSP server:", err)
		return ERROR_STATUS_CODE
	}
	return 0
}
