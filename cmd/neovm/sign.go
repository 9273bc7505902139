package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/urfave/cli"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/crypto/keys"
)

func newSignCommand() cli.Command {
	return cli.Command{
		Name:      "sign",
		Usage:     "sign a message with a fresh or supplied private key",
		UsageText: "neovm sign [--key hex] <hex-message>",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "key", Usage: "hex-encoded 32-byte private scalar; a fresh key is generated if omitted"},
		},
		Action: signAction,
	}
}

func signAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fatalf("sign requires exactly one hex message argument")
	}
	msg, err := hex.DecodeString(c.Args().First())
	if err != nil {
		return fatalf("message must be hex-encoded: %v", err)
	}

	priv, err := resolvePrivateKey(c.String("key"))
	if err != nil {
		return fatalf("failed to resolve private key: %v", err)
	}

	sig := priv.Sign(msg)
	pub := priv.PublicKey()

	fmt.Printf("private: %s\n", hex.EncodeToString(priv.D.Bytes()))
	fmt.Printf("public:  %s\n", hex.EncodeToString(pub.Bytes()))
	fmt.Printf("sig:     %s\n", hex.EncodeToString(sig))
	return nil
}

// resolvePrivateKey generates a fresh key when raw is empty, otherwise
// rebuilds one from a hex-encoded scalar so a caller can re-derive the
// same signature across runs.
func resolvePrivateKey(raw string) (*keys.PrivateKey, error) {
	if raw == "" {
		return keys.NewPrivateKey()
	}
	d, err := hex.DecodeString(raw)
	if err != nil {
		return nil, err
	}
	curve := elliptic.P256()
	x, y := curve.ScalarBaseMult(d)
	priv := &keys.PrivateKey{
		PrivateKey: ecdsa.PrivateKey{
			PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
			D:         new(big.Int).SetBytes(d),
		},
	}
	return priv, nil
}
