package primitives

import (
	"fmt"
)

// Slot represents a single slot.
type Slot uint64

// Epoch represents a single epoch.
type Epoch uint64

// ValidatorIndex in eth2.
type ValidatorIndex uint64

// DivSlot divides slot by x. Division by zero returns zero instead of panicking, callers are
// expected to have validated the divisor as part of the chain config.
func (s Slot) DivSlot(x Slot) Slot {
	if x == 0 {
		return 0
	}
	return s / x
}

// String returns the decimal form of the slot.
func (s Slot) String() string {
	return fmt.Sprintf("%d", uint64(s))
}
