package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm"
)

func newRunCommand() cli.Command {
	return cli.Command{
		Name:      "run",
		Usage:     "execute a script to completion and print the resulting stack",
		UsageText: "neovm run [--config path] [--gas amount] <script>",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "config"},
			cli.Int64Flag{Name: "gas", Value: 10_00000000},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fatalf("run requires exactly one script argument")
	}
	code, err := loadScript(c.Args().First())
	if err != nil {
		return fatalf("failed to load script: %v", err)
	}

	chain, closeChain, err := openChainFromContext(c)
	if err != nil {
		return fatalf("failed to open chain: %v", err)
	}
	defer closeChain()

	e := vm.NewEngine()
	ctx, st, err := e.ExecuteScript(code, chain, vm.Init{
		ScriptContainer: emptyContainer(),
		Trigger:         defaultTrigger(),
	}, util.Fixed8(c.Int64("gas")), nil)

	fmt.Printf("state: %s\n", st)
	if err != nil {
		fmt.Printf("fault: %v\n", err)
	}
	if ctx != nil {
		fmt.Printf("script hash: %s (%s)\n", ctx.ScriptHash, address.Encode(ctx.ScriptHash))
		fmt.Printf("gas left: %s\n", ctx.GasLeft)
		fmt.Println("stack:")
		for i := 0; i < ctx.Stack.Len(); i++ {
			it, _ := ctx.Stack.Peek(i)
			fmt.Printf("  %d: %s\n", i, it)
		}
	}
	if st == vm.FAULT {
		return cli.NewExitError("", 1)
	}
	return nil
}
