package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/chaindump"
)

func newDumpCommand() cli.Command {
	return cli.Command{
		Name:      "dump",
		Usage:     "dump blocks from a chain into an lz4-compressed archive",
		UsageText: "neovm dump [--config path] [--start n] [--count n] <out-file>",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "config"},
			cli.Uint64Flag{Name: "start", Value: 0},
			cli.Uint64Flag{Name: "count", Usage: "defaults to everything from --start to the current height"},
		},
		Action: dumpAction,
	}
}

func dumpAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fatalf("dump requires exactly one output file argument")
	}

	chain, closeChain, err := openChainFromContext(c)
	if err != nil {
		return fatalf("failed to open chain: %v", err)
	}
	defer closeChain()

	start := uint32(c.Uint64("start"))
	count := uint32(c.Uint64("count"))
	if count == 0 {
		height := chain.Height()
		if height+1 <= start {
			return fatalf("chain height %d is below start %d", height, start)
		}
		count = height + 1 - start
	}

	f, err := os.Create(c.Args().First())
	if err != nil {
		return fatalf("failed to create %s: %v", c.Args().First(), err)
	}
	defer f.Close()

	if err := chaindump.Dump(chain, f, start, count); err != nil {
		return fatalf("dump failed: %v", err)
	}
	fmt.Printf("dumped %d blocks starting at %d\n", count, start)
	return nil
}
