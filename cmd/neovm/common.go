package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/config"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/ledger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// loadScript resolves a script given as a file path, or as `hex:<data>`/
// `base64:<data>` literals, the three forms the run and serve commands and
// the debugger's load command accept.
func loadScript(arg string) ([]byte, error) {
	switch {
	case strings.HasPrefix(arg, "hex:"):
		return hex.DecodeString(strings.TrimPrefix(arg, "hex:"))
	case strings.HasPrefix(arg, "base64:"):
		return base64.StdEncoding.DecodeString(strings.TrimPrefix(arg, "base64:"))
	default:
		return os.ReadFile(arg)
	}
}

// emptyContainer is a minimal script container for ad hoc script runs
// that don't need real witness/signature verification.
func emptyContainer() state.ScriptContainer {
	return &state.Transaction{Hash: util.Uint256{}, RawMessage: []byte{}}
}

func defaultTrigger() trigger.Type {
	return trigger.Application
}

func openChainFromContext(c *cli.Context) (ledger.Chain, func() error, error) {
	cfgPath := c.String("config")
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, nil, err
		}
	}
	return ledger.Open(cfg.ApplicationConfiguration.DBConfiguration.Type, cfg.ApplicationConfiguration.DBConfiguration.Path)
}

func fatalf(format string, args ...any) error {
	return cli.NewExitError(fmt.Sprintf(format, args...), 1)
}
