// Package metrics exposes Prometheus counters for opcodes executed and gas
// consumed, the production engine's pkg/metrics equivalent for this VM
// (SPEC_FULL.md, SUPPLEMENTED FEATURES).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
)

// Collector is an optional sink an Engine reports opcode/gas counters to.
type Collector struct {
	opcodes  *prometheus.CounterVec
	gas      prometheus.Counter
	syscalls *prometheus.CounterVec
}

// NewCollector registers a fresh set of counters with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		opcodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neovm",
			Name:      "opcodes_executed_total",
			Help:      "Number of opcodes executed, by mnemonic.",
		}, []string{"opcode"}),
		gas: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neovm",
			Name:      "gas_consumed_total",
			Help:      "Total gas consumed across all runs, in Fixed8 units.",
		}),
		syscalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neovm",
			Name:      "syscalls_total",
			Help:      "Number of syscalls dispatched, by canonical name.",
		}, []string{"syscall"}),
	}
	reg.MustRegister(c.opcodes, c.gas, c.syscalls)
	return c
}

// OpcodeExecuted increments the counter for mnemonic.
func (c *Collector) OpcodeExecuted(mnemonic string) {
	c.opcodes.WithLabelValues(mnemonic).Inc()
}

// GasConsumed adds fee (Fixed8 units) to the running total.
func (c *Collector) GasConsumed(fee util.Fixed8) {
	c.gas.Add(float64(fee))
}

// SyscallDispatched increments the counter for the canonical syscall name.
func (c *Collector) SyscallDispatched(name string) {
	c.syscalls.WithLabelValues(name).Inc()
}
