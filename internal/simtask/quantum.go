package simtask

import (
	"math"

	"schedkit/pkg/sched"
)

// QuantumTable maps a priority level to its tick allotment. Levels absent
// from the table run to completion.
type QuantumTable map[uint]uint

// DefaultQuantumTable mirrors the classic three-level feedback setup:
// the bottom level runs to completion, higher levels get shorter slices.
func DefaultQuantumTable() QuantumTable {
	return QuantumTable{2: 2, 3: 1}
}

// Specifier adapts the table to the scheduler's quantum specifier.
func (qt QuantumTable) Specifier() sched.QuantumSpecifier {
	return func(priority uint) uint {
		if quantum, ok := qt[priority]; ok && quantum > 0 {
			return quantum
		}
		return math.MaxUint
	}
}
