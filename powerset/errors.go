// SPDX-License-Identifier: MIT

package powerset

import "errors"

var (
	// ErrSetTooLarge indicates more than MaxSetSize input elements.
	ErrSetTooLarge = errors.New("powerset: set too large")

	// ErrFull indicates Add on a PowerSet whose rows are all used.
	ErrFull = errors.New("powerset: no free subset row")

	// ErrOutOfRange indicates a subset index outside [0, Len()).
	ErrOutOfRange = errors.New("powerset: subset index out of range")

	// ErrNilPowerSet indicates a nil or released PowerSet.
	ErrNilPowerSet = errors.New("powerset: nil or released power set")
)
