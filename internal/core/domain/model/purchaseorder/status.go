package purchaseorder

import (
	"fmt"

	"cogs/internal/pkg/errs"
)

// Status is the lifecycle state of a purchase order.
//
//	New <──> Closed
//
// Closed orders can be reopened; status changes never touch costs.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the status of every freshly created purchase order.
	// Open orders are picked up by the scheduled recalculation.
	New

	// Closed marks an order as received and settled.
	// Closed orders keep their costs until recalculated on demand.
	Closed
)

// getStatusStrings returns the wire form of every Status, Unknown included.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		New:     "NEW",
		Closed:  "CLOSED",
	}
}

// getValidStatusStrings returns the wire form of the statuses an order can hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:    "NEW",
		Closed: "CLOSED",
	}
}

// ParseStatus converts exactly "NEW" or "CLOSED" to a Status.
// Any other value, including a different casing, is a validation error.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is New or Closed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "NEW", "CLOSED" or "UNKNOWN" for persistence and display.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
