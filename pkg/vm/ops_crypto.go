package vm

import (
	"github.com/nspcc-dev/neo-go-classicvm/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/stackitem"
)

func init() {
	register(opcode.SHA1, FeeHash, 0, hashOp(hash.Sha1))
	register(opcode.SHA256, FeeHash, 0, hashOp(hash.Sha256))
	register(opcode.HASH160, FeeHash, 0, hashOp(func(b []byte) []byte { return hash.Hash160(b).BytesLE() }))
	register(opcode.HASH256, FeeHash, 0, hashOp(func(b []byte) []byte { return hash.Hash256(b).BytesLE() }))
	register(opcode.CHECKSIG, FeeCheckSig, 0, opCheckSig)
	register(opcode.CHECKMULTISIG, defaultFee, 0, opCheckMultisig)
}

func hashOp(fn func([]byte) []byte) opHandler {
	return func(e *Engine, ctx *Context) error {
		buf, err := popBuffer(ctx)
		if err != nil {
			return err
		}
		ctx.Stack.Push(stackitem.NewBuffer(fn(buf)))
		return nil
	}
}

func opCheckSig(e *Engine, ctx *Context) error {
	sig, err := popBuffer(ctx)
	if err != nil {
		return err
	}
	pkRaw, err := popBuffer(ctx)
	if err != nil {
		return err
	}
	pk, err := keys.DecodeBytes(pkRaw)
	if err != nil {
		ctx.Stack.Push(stackitem.NewBoolean(false))
		return nil
	}
	ctx.Stack.Push(stackitem.NewBoolean(pk.VerifySignature(ctx.Init.ScriptContainer.Message(), sig)))
	return nil
}

// opCheckMultisig implements the dynamic-arity CHECKMULTISIG: the stack
// carries a pubkey-count-prefixed key list, then a signature-count-prefixed
// signature list; keys and signatures must each appear in ascending order
// with no reuse, so a single forward scan over both lists suffices (spec
// §4.3).
func opCheckMultisig(e *Engine, ctx *Context) error {
	pubKeys, err := popKeyOrSigList(ctx)
	if err != nil {
		return err
	}
	sigs, err := popKeyOrSigList(ctx)
	if err != nil {
		return err
	}
	if len(sigs) == 0 || len(sigs) > len(pubKeys) {
		return ErrInvalidCheckMultisigArg
	}
	fee := FeeCheckMultisigPerKey * util.Fixed8(len(pubKeys))
	if ctx.GasLeft < fee {
		return ErrOutOfGas
	}
	ctx.GasLeft -= fee

	msg := ctx.Init.ScriptContainer.Message()
	si, ki := 0, 0
	for si < len(sigs) && ki < len(pubKeys) {
		pk, err := keys.DecodeBytes(pubKeys[ki])
		if err != nil {
			return ErrInvalidCheckMultisigArg
		}
		if pk.VerifySignature(msg, sigs[si]) {
			si++
		}
		ki++
		if len(sigs)-si > len(pubKeys)-ki {
			break
		}
	}
	ctx.Stack.Push(stackitem.NewBoolean(si == len(sigs)))
	return nil
}

// popKeyOrSigList pops one of CHECKMULTISIG's two lists: either a stack
// Array of buffers, or a count followed by that many individually pushed
// buffers (the wire-compatible encoding legacy scripts use).
func popKeyOrSigList(ctx *Context) ([][]byte, error) {
	it, err := ctx.Stack.Pop()
	if err != nil {
		return nil, err
	}
	if arr, aerr := it.AsArray(); aerr == nil {
		out := make([][]byte, len(arr))
		for i, v := range arr {
			b, err := v.AsBuffer()
			if err != nil {
				return nil, err
			}
			out[i] = b
		}
		return out, nil
	}
	n, err := it.AsBigInteger()
	if err != nil {
		return nil, ErrInvalidCheckMultisigArg
	}
	count := int(n.Int64())
	if count <= 0 || count > MaxArraySize {
		return nil, ErrInvalidCheckMultisigArg
	}
	out := make([][]byte, count)
	for i := count - 1; i >= 0; i-- {
		b, err := popBuffer(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}
