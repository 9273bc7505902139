package vm

import "github.com/nspcc-dev/neo-go-classicvm/pkg/util"

// Size and resource limits (spec §4.6).
const (
	MaxStackSize           = 2048
	MaxInvocationStackSize = 1024
	MaxArraySize           = 1024
	MaxItemSize            = 1 << 20 // 1 MiB
	MaxScriptLength        = 1 << 20 // 1 MiB
	MaxVotes               = 1024
	BlockHeightYear        = 2_000_000
	MaxAssetNameLength     = 1024
	MaxSyscallNameLength   = 252
)

// defaultFee is the per-opcode gas cost for ordinary (non-syscall)
// instructions: 0, matching the classic engine's free-opcode model, gas is
// charged by syscalls and a handful of expensive primitives (SHA1/SHA256/
// HASH160/HASH256/CHECKSIG/CHECKMULTISIG) rather than uniformly per step.
const defaultFee = 0

// OneGas is 1 GAS expressed in Fixed8 units, the scale syscall fees are
// quoted in.
const OneGas = util.Fixed8(1_0000_0000)

// Gas cost of cryptographic opcodes and syscalls, in Fixed8 units. These
// mirror the production network's fee schedule: hashing is cheap,
// signature verification and ledger-mutating syscalls are priced per
// key/entry.
const (
	FeeHash                = OneGas / 10000
	FeeCheckSig            = OneGas / 10
	FeeCheckMultisigPerKey = OneGas / 10
	FeeStoragePut          = OneGas
	FeeContractCreate      = 100 * OneGas
	FeeContractMigrate     = 100 * OneGas
)
