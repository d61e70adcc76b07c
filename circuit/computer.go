//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
)

// Counts maps observed measurement outcomes to their occurrence counts
// across the requested shots.
type Counts map[string]int

// Compute runs one shot of the circuit: gates are evaluated in order
// over the classical cell state and the measured bits are returned as
// an outcome string. The outcome lists classical bits in descending
// index order, so the leftmost character is the highest classical bit;
// within a measured register this renders the register value MSB-first.
// Every Rand gate consumes one byte from rnd and keeps its low bit.
func (c *Circuit) Compute(rnd io.Reader) (string, error) {
	cells := make([]byte, c.NumCells)
	out := make([]byte, c.NumOut)

	var buf [1]byte

	for id, gate := range c.Gates {
		if int(gate.Target) >= c.NumCells {
			return "", fmt.Errorf("gate %d: %s: cell out of range", id, gate)
		}
		switch gate.Op {
		case Set:
			cells[gate.Target] ^= 1

		case Rand:
			if _, err := io.ReadFull(rnd, buf[:]); err != nil {
				return "", fmt.Errorf("gate %d: %s: randomness source: %w",
					id, gate, err)
			}
			cells[gate.Target] = buf[0] & 1

		case CNot:
			if int(gate.Control) >= c.NumCells {
				return "", fmt.Errorf("gate %d: %s: cell out of range",
					id, gate)
			}
			cells[gate.Target] ^= cells[gate.Control]

		case Measure:
			if gate.Out >= c.NumOut {
				return "", fmt.Errorf("gate %d: %s: output bit out of range",
					id, gate)
			}
			out[gate.Out] = cells[gate.Target]

		default:
			return "", fmt.Errorf("gate %d: invalid gate %s", id, gate.Op)
		}
	}

	// Format outcome with classical bit NumOut-1 first.
	result := make([]byte, c.NumOut)
	for i := 0; i < c.NumOut; i++ {
		result[i] = '0' + out[c.NumOut-1-i]
	}
	return string(result), nil
}

// Sample runs the circuit for the number of shots and tallies the
// observed outcomes. Shots are independent: no state carries from one
// shot to the next.
func (c *Circuit) Sample(rnd io.Reader, shots int) (Counts, error) {
	if shots < 1 {
		return nil, fmt.Errorf("invalid shot count %d", shots)
	}
	counts := make(Counts)
	for i := 0; i < shots; i++ {
		outcome, err := c.Compute(rnd)
		if err != nil {
			return nil, err
		}
		counts[outcome]++
	}
	return counts, nil
}
