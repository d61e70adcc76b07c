//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package chenwu implements the Chen-Wu (2,3)-threshold visual secret
// sharing scheme over the reversible-gate substrate. Two 8-bit secrets
// G0 and G1 are blinded with one uniformly random share S0; the derived
// shares B0 = G1 XOR S0 and Sn = G0 XOR B0 are computed with
// controlled-NOT chains and collapsed by measurement. Any two of
// {S0, B0, Sn} recover both secrets by classical XOR.
package chenwu

import (
	"fmt"
	"io"

	"github.com/markkurossi/qvss/circuit"
	"github.com/markkurossi/qvss/neqr"
)

// OutcomeBits is the width of the sharing circuit's classical output.
const OutcomeBits = 3 * neqr.Bits

// Shares holds one share triple produced by a sharing run.
type Shares struct {
	S0 int
	B0 int
	Sn int
}

func (sh Shares) String() string {
	return fmt.Sprintf("s0=%d b0=%d sn=%d", sh.S0, sh.B0, sh.Sn)
}

// Secrets holds the two secret intensity values.
type Secrets struct {
	G0 int
	G1 int
}

func (s Secrets) String() string {
	return fmt.Sprintf("g0=%d g1=%d", s.G0, s.G1)
}

// BuildSharing constructs the sharing circuit for the two secrets:
// registers g0, g1, s0, b0, sn of 8 cells each; NEQR encoding of the
// secrets; 8 independent randomizations of s0; the two CNot chains
// deriving b0 and sn; and measurement of s0, b0 and sn into one 24-bit
// classical output. The secret registers g0 and g1 are never measured.
func BuildSharing(g0, g1 int) (*circuit.Circuit, error) {
	qc := circuit.New()

	qG0 := qc.Register("g0", neqr.Bits)
	qG1 := qc.Register("g1", neqr.Bits)
	qS0 := qc.Register("s0", neqr.Bits)
	qB0 := qc.Register("b0", neqr.Bits)
	qSn := qc.Register("sn", neqr.Bits)

	if err := neqr.Encode(qc, qG0, g0); err != nil {
		return nil, err
	}
	if err := neqr.Encode(qc, qG1, g1); err != nil {
		return nil, err
	}

	for i := 0; i < neqr.Bits; i++ {
		qc.Rand(qS0.Cell(i))
	}

	// b0 = g1 XOR s0: b0 starts at 0, the first CNot copies g1's bit
	// in, the second folds in s0's bit.
	for i := 0; i < neqr.Bits; i++ {
		qc.CNot(qG1.Cell(i), qB0.Cell(i))
		qc.CNot(qS0.Cell(i), qB0.Cell(i))
	}

	// sn = g0 XOR b0.
	for i := 0; i < neqr.Bits; i++ {
		qc.CNot(qG0.Cell(i), qSn.Cell(i))
		qc.CNot(qB0.Cell(i), qSn.Cell(i))
	}

	qc.MeasureReg(qS0)
	qc.MeasureReg(qB0)
	qc.MeasureReg(qSn)

	return qc, nil
}

// SplitOutcome slices a 24-bit sharing outcome into the share triple.
// The outcome lists classical bits in descending index order, so sn
// occupies the leftmost 8 digits, then b0, then s0.
func SplitOutcome(outcome string) (Shares, error) {
	if len(outcome) != OutcomeBits {
		return Shares{}, fmt.Errorf("%w: got %d bits, expected %d",
			neqr.ErrOutcomeWidth, len(outcome), OutcomeBits)
	}
	sn, err := neqr.Decode(outcome[0:8])
	if err != nil {
		return Shares{}, err
	}
	b0, err := neqr.Decode(outcome[8:16])
	if err != nil {
		return Shares{}, err
	}
	s0, err := neqr.Decode(outcome[16:24])
	if err != nil {
		return Shares{}, err
	}
	return Shares{
		S0: s0,
		B0: b0,
		Sn: sn,
	}, nil
}

// Reconstruct recovers both secrets from the share triple by classical
// XOR. It is a pure function, total over all 8-bit inputs.
func Reconstruct(sh Shares) Secrets {
	return Secrets{
		G0: sh.Sn ^ sh.B0,
		G1: sh.B0 ^ sh.S0,
	}
}

// Run builds the sharing circuit for the secrets, executes exactly one
// shot with the randomness source, and splits the outcome into the
// share triple. An execution failure is propagated and never retried:
// a re-run would draw a new S0 and be a different protocol instance.
func Run(rnd io.Reader, g0, g1 int) (Shares, error) {
	qc, err := BuildSharing(g0, g1)
	if err != nil {
		return Shares{}, err
	}
	outcome, err := qc.Compute(rnd)
	if err != nil {
		return Shares{}, err
	}
	return SplitOutcome(outcome)
}
