package syscall

import "github.com/nspcc-dev/neo-go-classicvm/pkg/util"

// OneGas is 1 GAS in Fixed8 units, mirroring pkg/vm's constant of the same
// name; duplicated here rather than imported because pkg/vm imports this
// package to dispatch SYSCALL, so the dependency cannot run the other way.
const OneGas = util.Fixed8(1_0000_0000)

// Syscall gas costs (spec §4.4, §4.6), quoted in Fixed8 units.
const (
	FeeHash                = OneGas / 10000
	FeeCheckSig            = OneGas / 10
	FeeCheckMultisigPerKey = OneGas / 10
	FeeStoragePut          = OneGas
	FeeContractCreate      = 100 * OneGas
	FeeContractMigrate     = 100 * OneGas
)

// Size limits the management syscalls enforce, duplicated from pkg/vm's
// gas.go for the same import-direction reason as OneGas above.
const (
	MaxVotes        = 1024
	BlockHeightYear = 2_000_000
)
