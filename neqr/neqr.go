//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package neqr implements NEQR-style basis-state encoding of 8-bit
// pixel intensities: an intensity value is prepared into a register of
// two-level cells with unconditional bit-flip gates and recovered from
// a measurement outcome.
package neqr

import (
	"errors"
	"fmt"

	"github.com/markkurossi/qvss/circuit"
)

// Bits is the width of an intensity value in bits.
const Bits = 8

// MaxIntensity is the largest encodable intensity value.
const MaxIntensity = 1<<Bits - 1

var (
	// ErrIntensityRange is returned when an intensity value is
	// outside [0,255].
	ErrIntensityRange = errors.New("intensity out of range")

	// ErrOutcomeWidth is returned when a measurement outcome does not
	// have the expected bit width.
	ErrOutcomeWidth = errors.New("malformed measurement outcome")
)

// Encode appends the gates preparing the register into the basis state
// of the intensity value. Register cell i receives bit i of the value,
// counted from the least-significant end of its natural binary string.
// The register is not measured; the caller composes it into a larger
// circuit or measures it with EncodeMeasured. The intensity is
// validated before any gate is appended.
func Encode(qc *circuit.Circuit, reg circuit.Register, intensity int) error {
	if intensity < 0 || intensity > MaxIntensity {
		return fmt.Errorf("%w: %d", ErrIntensityRange, intensity)
	}
	if reg.Size != Bits {
		return fmt.Errorf("invalid register width %d, expected %d",
			reg.Size, Bits)
	}
	bits := circuit.FormatBits(intensity, Bits)
	for i := 0; i < Bits; i++ {
		if bits[Bits-1-i] == '1' {
			qc.Set(reg.Cell(i))
		}
	}
	return nil
}

// EncodeMeasured encodes the intensity into the register and measures
// every register cell for round-trip verification.
func EncodeMeasured(qc *circuit.Circuit, reg circuit.Register,
	intensity int) error {

	if err := Encode(qc, reg, intensity); err != nil {
		return err
	}
	qc.MeasureReg(reg)
	return nil
}

// Decode recovers the intensity value from a measured register
// outcome. The outcome must be exactly Bits digits; it is interpreted
// in natural MSB-first order, the order Compute emits register
// sub-ranges in.
func Decode(outcome string) (int, error) {
	if len(outcome) != Bits {
		return 0, fmt.Errorf("%w: got %d bits, expected %d",
			ErrOutcomeWidth, len(outcome), Bits)
	}
	return circuit.ParseBits(outcome)
}
