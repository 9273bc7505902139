package syscall

import (
	"fmt"

	"github.com/twmb/murmur3"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// Handler is a syscall implementation. It receives the capability surface
// of the invoking frame and reports a fault by returning a non-nil error.
type Handler func(f Frame) error

// descriptor pairs a syscall's gas fee with its handler. Fee is expressed
// in the same util.Fixed8 unit ordinary opcode fees use (spec §4.4).
type descriptor struct {
	name    string
	fee     util.Fixed8
	handler Handler
}

var (
	byHash  = map[uint64]*descriptor{}
	byName  = map[string]*descriptor{}
	aliases = map[string]string{}
)

func hashName(name string) uint64 {
	return murmur3.SeedStringSum64(0, name)
}

// register adds a syscall under its canonical name. Called from each
// catalogue file's init().
func register(name string, fee util.Fixed8, h Handler) {
	d := &descriptor{name: name, fee: fee, handler: h}
	byName[name] = d
	byHash[hashName(name)] = d
}

// alias maps a legacy name (the "AntShares.*" namespace) onto an already
// registered canonical name (spec §4.4: legacy scripts must keep working
// unmodified).
func alias(legacy, canonical string) {
	aliases[legacy] = canonical
}

// Lookup resolves a syscall name as it appears on the wire, following the
// legacy alias table first, then hashing the canonical name to its
// descriptor. The hash step is what keeps dispatch O(1) regardless of how
// large the catalogue grows.
func Lookup(name string) (fee util.Fixed8, handler Handler, err error) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	d, ok := byHash[hashName(name)]
	if !ok {
		return 0, nil, fmt.Errorf("%w: %s", ErrUnknownSyscall, name)
	}
	return d.fee, d.handler, nil
}
