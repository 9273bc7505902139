// Command neovm runs scripts against the classic stack-based bytecode VM:
// a one-shot executor, an interactive debugger, a websocket execution
// server, and chain dump/restore utilities.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/config"
)

func versionPrinter(c *cli.Context) {
	fmt.Fprintf(c.App.Writer, "neovm\nVersion: %s\nGoVersion: %s\n", config.Version, runtime.Version())
}

func main() {
	cli.VersionPrinter = versionPrinter
	app := cli.NewApp()
	app.Name = "neovm"
	app.Version = config.Version
	app.Usage = "a stack-based bytecode VM for Neo-classic smart contracts"

	app.Commands = []cli.Command{
		newRunCommand(),
		newDebugCommand(),
		newServeCommand(),
		newDumpCommand(),
		newRestoreCommand(),
		newSignCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
