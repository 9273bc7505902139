package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/chaindump"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
)

func newRestoreCommand() cli.Command {
	return cli.Command{
		Name:      "restore",
		Usage:     "restore blocks from a dump archive into a chain",
		UsageText: "neovm restore [--config path] [--skip n] [--count n] <in-file>",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "config"},
			cli.Uint64Flag{Name: "skip", Value: 0},
			cli.Uint64Flag{Name: "count", Usage: "defaults to everything after --skip"},
		},
		Action: restoreAction,
	}
}

func restoreAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fatalf("restore requires exactly one input file argument")
	}

	chain, closeChain, err := openChainFromContext(c)
	if err != nil {
		return fatalf("failed to open chain: %v", err)
	}
	defer closeChain()

	f, err := os.Open(c.Args().First())
	if err != nil {
		return fatalf("failed to open %s: %v", c.Args().First(), err)
	}
	defer f.Close()

	skip := uint32(c.Uint64("skip"))
	count := uint32(c.Uint64("count"))
	if count == 0 {
		count = ^uint32(0) - skip
	}

	var restored int
	err = chaindump.Restore(chain, f, skip, count, func(b *state.Block) error {
		restored++
		return nil
	})
	if err != nil {
		return fatalf("restore failed after %d blocks: %v", restored, err)
	}
	fmt.Printf("restored %d blocks\n", restored)
	return nil
}
