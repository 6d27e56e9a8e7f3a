package env

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArm indicates an arm index or label outside the fixed arm set.
	ErrInvalidArm = errors.New("arm outside the configured arm set")
	// ErrDimensionMismatch indicates a context vector whose length does not
	// match the feature schema.
	ErrDimensionMismatch = errors.New("context does not match feature schema dimension")
)

func invalidArmIndex(arm int) error {
	return fmt.Errorf("%w: index %d not in [0,%d)", ErrInvalidArm, arm, numArms)
}

func invalidArmName(name string) error {
	return fmt.Errorf("%w: unknown label %q", ErrInvalidArm, name)
}

func dimensionMismatch(got int) error {
	return fmt.Errorf("%w: got %d features, want %d", ErrDimensionMismatch, got, numFeatures)
}
