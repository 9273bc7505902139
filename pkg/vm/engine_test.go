package vm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/ledger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/state"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm/opcode"
)

func emptyContainer() state.ScriptContainer {
	return &state.Transaction{Hash: util.Uint256{}, RawMessage: []byte{}}
}

func execute(t *testing.T, code []byte, gas util.Fixed8) (*Context, State, error) {
	bc := ledger.NewMemChain()
	e := NewEngine()
	return e.ExecuteScript(code, bc, Init{
		ScriptContainer: emptyContainer(),
		Trigger:         trigger.Application,
	}, gas, nil)
}

func TestExecuteScriptAddition(t *testing.T) {
	code := []byte{
		byte(opcode.PUSH2),
		byte(opcode.PUSH3),
		byte(opcode.ADD),
		byte(opcode.RET),
	}
	ctx, st, err := execute(t, code, OneGas)
	require.NoError(t, err)
	require.Equal(t, HALT, st)
	require.Equal(t, 1, ctx.Stack.Len())

	item, err := ctx.Stack.Pop()
	require.NoError(t, err)
	n, err := item.AsBigInteger()
	require.NoError(t, err)
	require.Equal(t, 0, n.Cmp(big.NewInt(5)))
}

func TestExecuteScriptUnknownOpcodeFaults(t *testing.T) {
	code := []byte{0xFF}
	_, st, err := execute(t, code, OneGas)
	require.Error(t, err)
	require.Equal(t, FAULT, st)
}

func TestExecuteScriptOutOfGasFaults(t *testing.T) {
	code := []byte{
		byte(opcode.PUSH1),
		byte(opcode.PUSH1),
		byte(opcode.CHECKSIG),
	}
	_, st, err := execute(t, code, 0)
	require.ErrorIs(t, err, ErrOutOfGas)
	require.Equal(t, FAULT, st)
}

func TestStepOneSingleSteps(t *testing.T) {
	code := []byte{
		byte(opcode.PUSH4),
		byte(opcode.PUSH5),
		byte(opcode.ADD),
		byte(opcode.RET),
	}
	bc := ledger.NewMemChain()
	e := NewEngine()
	ctx, err := e.Load(code, bc, Init{ScriptContainer: emptyContainer(), Trigger: trigger.Application}, OneGas, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		st, err := e.StepOne()
		require.NoError(t, err)
		require.Equal(t, NONE, st)
	}
	require.Equal(t, 1, ctx.Stack.Len())

	st, err := e.StepOne()
	require.NoError(t, err)
	require.Equal(t, HALT, st)
	require.Nil(t, e.Current())
}
