//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package neqr

import (
	"errors"
	"testing"

	"github.com/markkurossi/qvss/circuit"
)

// The encoding path contains no randomization: every test passes a nil
// randomness source to Compute.

func TestRoundTrip(t *testing.T) {
	for v := 0; v <= MaxIntensity; v++ {
		qc := circuit.New()
		reg := qc.Register("q", Bits)
		if err := EncodeMeasured(qc, reg, v); err != nil {
			t.Fatalf("Encode(%d) failed: %s", v, err)
		}
		outcome, err := qc.Compute(nil)
		if err != nil {
			t.Fatalf("Compute failed: %s", err)
		}
		decoded, err := Decode(outcome)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %s", outcome, err)
		}
		if decoded != v {
			t.Errorf("round trip %d: got %d (outcome %q)", v, decoded, outcome)
		}
	}
}

func TestEncodeRange(t *testing.T) {
	for _, v := range []int{-1, 256, 1000, -255} {
		qc := circuit.New()
		reg := qc.Register("q", Bits)
		err := Encode(qc, reg, v)
		if err == nil {
			t.Fatalf("Encode(%d) succeeded", v)
		}
		if !errors.Is(err, ErrIntensityRange) {
			t.Errorf("Encode(%d): unexpected error: %s", v, err)
		}
		if len(qc.Gates) != 0 {
			t.Errorf("Encode(%d) appended gates before validation", v)
		}
	}
}

func TestEncodeRegisterWidth(t *testing.T) {
	qc := circuit.New()
	reg := qc.Register("q", 4)
	if err := Encode(qc, reg, 7); err == nil {
		t.Error("Encode succeeded with a 4-cell register")
	}
}

func TestEncodeGateCount(t *testing.T) {
	// One Set gate per 1-bit; no gate for 0-bits.
	tests := []struct {
		v     int
		gates int
	}{
		{0, 0},
		{255, 8},
		{170, 4},
		{1, 1},
		{128, 1},
	}
	for _, test := range tests {
		qc := circuit.New()
		reg := qc.Register("q", Bits)
		if err := Encode(qc, reg, test.v); err != nil {
			t.Fatalf("Encode(%d) failed: %s", test.v, err)
		}
		if len(qc.Gates) != test.gates {
			t.Errorf("Encode(%d): %d gates, expected %d",
				test.v, len(qc.Gates), test.gates)
		}
	}
}

func TestDecodeWidth(t *testing.T) {
	for _, outcome := range []string{"", "0101", "010101010", "1111111111111111"} {
		_, err := Decode(outcome)
		if err == nil {
			t.Fatalf("Decode(%q) succeeded", outcome)
		}
		if !errors.Is(err, ErrOutcomeWidth) {
			t.Errorf("Decode(%q): unexpected error: %s", outcome, err)
		}
	}
}

func TestEncodeShots(t *testing.T) {
	qc := circuit.New()
	reg := qc.Register("q", Bits)
	if err := EncodeMeasured(qc, reg, 170); err != nil {
		t.Fatalf("Encode failed: %s", err)
	}

	counts, err := qc.Sample(nil, 64)
	if err != nil {
		t.Fatalf("Sample failed: %s", err)
	}
	if len(counts) != 1 {
		t.Fatalf("%d distinct outcomes, expected 1: %v", len(counts), counts)
	}
	for outcome, count := range counts {
		if count != 64 {
			t.Errorf("outcome %q observed %d times, expected 64",
				outcome, count)
		}
		decoded, err := Decode(outcome)
		if err != nil {
			t.Fatalf("Decode failed: %s", err)
		}
		if decoded != 170 {
			t.Errorf("decoded %d, expected 170", decoded)
		}
	}
}
