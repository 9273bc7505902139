package syscall

import (
	"math/big"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register("Neo.Runtime.GetTrigger", 0, runtimeGetTrigger)
	register("Neo.Runtime.CheckWitness", FeeCheckSig, runtimeCheckWitness)
	register("Neo.Runtime.Notify", 0, runtimeNotify)
	register("Neo.Runtime.Log", 0, runtimeLog)

	alias("AntShares.Runtime.GetTrigger", "Neo.Runtime.GetTrigger")
	alias("AntShares.Runtime.CheckWitness", "Neo.Runtime.CheckWitness")
	alias("AntShares.Runtime.Notify", "Neo.Runtime.Notify")
	alias("AntShares.Runtime.Log", "Neo.Runtime.Log")
}

func runtimeGetTrigger(f Frame) error {
	f.Push(stackitem.NewInteger(big.NewInt(int64(f.Trigger()))))
	return nil
}

// runtimeCheckWitness resolves its argument to a script hash — either a
// raw 20-byte hash or a 33-byte (or infinity) EC point reduced through its
// verification script — and reports whether that hash appears in the
// container's witness set.
func runtimeCheckWitness(f Frame) error {
	it, err := f.Pop()
	if err != nil {
		return err
	}
	raw, err := it.AsBuffer()
	if err != nil {
		return err
	}
	var hash util.Uint160
	switch len(raw) {
	case 20:
		hash, err = util.Uint160DecodeBytesLE(raw)
		if err != nil {
			return err
		}
	case 1, 33:
		pk, err := keys.DecodeBytes(raw)
		if err != nil {
			return err
		}
		hash = util.Uint160FromScript(verificationScript(pk))
	default:
		return ErrInvalidArgument
	}
	f.Push(stackitem.NewBoolean(containsWitness(f.Container().WitnessHashes(), hash)))
	return nil
}

func containsWitness(hashes []util.Uint160, target util.Uint160) bool {
	for _, h := range hashes {
		if h.Equals(target) {
			return true
		}
	}
	return false
}

// verificationScript builds the single-signature verification script a
// bare public key canonicalizes to: PUSHBYTES33 <pk> CHECKSIG.
func verificationScript(pk *keys.PublicKey) []byte {
	b := pk.Bytes()
	script := make([]byte, 0, len(b)+2)
	script = append(script, byte(len(b)))
	script = append(script, b...)
	script = append(script, 0xAC) // CHECKSIG
	return script
}

func runtimeNotify(f Frame) error {
	it, err := f.Pop()
	if err != nil {
		return err
	}
	f.Notify([]smartcontract.Parameter{it.ToContractParameter()})
	return nil
}

func runtimeLog(f Frame) error {
	it, err := f.Pop()
	if err != nil {
		return err
	}
	raw, err := it.AsBuffer()
	if err != nil {
		return err
	}
	f.Log(string(raw))
	return nil
}
