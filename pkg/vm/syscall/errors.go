package syscall

import "errors"

var (
	// ErrUnknownSyscall is returned when SYSCALL names an operation absent
	// from the catalogue and its alias table.
	ErrUnknownSyscall = errors.New("syscall: unknown operation")
	// ErrInvalidArgument is returned when a syscall's arguments fail to
	// coerce to the types it expects.
	ErrInvalidArgument = errors.New("syscall: invalid argument")
	// ErrNotFound is returned by read accessors when the ledger has no
	// entity under the requested key.
	ErrNotFound = errors.New("syscall: not found")
	// ErrWitnessCheckFailed is returned by CheckWitness when none of the
	// container's witnesses match the requested script hash.
	ErrWitnessCheckFailed = errors.New("syscall: witness check failed")
	// ErrReadOnlyTrigger is returned when a state-mutating syscall runs
	// under the Verification trigger, which spec §4.4 forbids.
	ErrReadOnlyTrigger = errors.New("syscall: state mutation forbidden under verification trigger")
)
