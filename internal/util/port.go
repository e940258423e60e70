package util

import (
	"fmt"
	"strconv"
)

const (
	MinPort = 1
	MaxPort = 65535
)

// ValidatePort checks whether s is a decimal port in the valid range
// (1-65535). The write path never calls this; it is a diagnostic used by
// doctor, since profile values are stored as written.
func ValidatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port %q is not a number", s)
	}
	if p < MinPort || p > MaxPort {
		return fmt.Errorf("port %d out of range (must be %d-%d)", p, MinPort, MaxPort)
	}
	return nil
}
