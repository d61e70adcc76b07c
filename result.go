//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package qvss provides result decoding helpers for drivers running
// circuits built from the neqr and chenwu packages.
package qvss

import (
	"fmt"
	"sort"

	"github.com/markkurossi/qvss/circuit"
)

// Results slices a measurement outcome into per-register intensity
// values, one for each measured register of the circuit, in
// measurement order.
func Results(qc *circuit.Circuit, outcome string) ([]int, error) {
	if len(outcome) != qc.NumOut {
		return nil, fmt.Errorf("invalid outcome width %d, expected %d",
			len(outcome), qc.NumOut)
	}
	var results []int
	var base int
	for _, reg := range qc.Outputs {
		start := qc.NumOut - base - reg.Size
		value, err := circuit.ParseBits(outcome[start : start+reg.Size])
		if err != nil {
			return nil, err
		}
		results = append(results, value)
		base += reg.Size
	}
	return results, nil
}

// PrintResults prints the per-register values of every observed
// outcome, outcomes in lexical order.
func PrintResults(qc *circuit.Circuit, counts circuit.Counts) error {
	var outcomes []string
	for outcome := range counts {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)

	for _, outcome := range outcomes {
		values, err := Results(qc, outcome)
		if err != nil {
			return err
		}
		for idx, reg := range qc.Outputs {
			fmt.Printf("Result[%s]: %d\n", reg.Name, values[idx])
		}
		if len(outcomes) > 1 {
			fmt.Printf("  (%d shots)\n", counts[outcome])
		}
	}
	return nil
}
