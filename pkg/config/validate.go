package config

import (
	"cmp"
	"fmt"
)

// InRange reports an error naming key unless lo <= v <= hi.
//
//	if err := InRange("SHUTDOWN_TIMEOUT", timeout, time.Second, 5*time.Minute); err != nil {
//	    return err
//	}
func InRange[T cmp.Ordered](key string, v, lo, hi T) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s: %v is outside [%v, %v]", key, v, lo, hi)
	}
	return nil
}

// AtLeast reports an error naming key when v is below lo.
func AtLeast[T cmp.Ordered](key string, v, lo T) error {
	if v < lo {
		return fmt.Errorf("%s: %v is below %v", key, v, lo)
	}
	return nil
}
