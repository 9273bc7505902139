package vm

import "github.com/nspcc-dev/neo-go-classicvm/pkg/core/ledger"

// Blockchain is an alias for the ledger facade the syscall catalogue
// consumes; kept as a short name inside pkg/vm since every opcode/syscall
// handler refers to it.
type Blockchain = ledger.Chain
