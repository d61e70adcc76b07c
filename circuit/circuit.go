//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package circuit implements the reversible-gate substrate used by the
// NEQR encoder and the Chen-Wu sharing protocol: named registers of
// two-level cells, an append-only gate list, and a classical execution
// engine producing measurement outcomes.
package circuit

import (
	"fmt"
)

// Op specifies gate function.
type Op byte

// Gate functions.
const (
	Set Op = iota
	Rand
	CNot
	Measure
)

// Stats holds statistics about circuit operations.
type Stats [Measure + 1]int

func (op Op) String() string {
	switch op {
	case Set:
		return "X"
	case Rand:
		return "H"
	case CNot:
		return "CX"
	case Measure:
		return "M"
	default:
		return fmt.Sprintf("{Op %d}", op)
	}
}

// Cell specifies a two-level cell ID.
type Cell uint32

// ID returns the cell ID as integer.
func (c Cell) ID() int {
	return int(c)
}

func (c Cell) String() string {
	return fmt.Sprintf("q%d", c)
}

// Gate specifies a reversible gate. Control is used by CNot gates and
// Out names the classical output bit of Measure gates.
type Gate struct {
	Op      Op
	Control Cell
	Target  Cell
	Out     int
}

func (g Gate) String() string {
	switch g.Op {
	case CNot:
		return fmt.Sprintf("%s %v %v", g.Op, g.Control, g.Target)
	case Measure:
		return fmt.Sprintf("%s %v c%d", g.Op, g.Target, g.Out)
	default:
		return fmt.Sprintf("%s %v", g.Op, g.Target)
	}
}

// Register specifies a named window of Size consecutive cells starting
// at Base.
type Register struct {
	Name string
	Base Cell
	Size int
}

// Cell returns the register cell with the index i. Cell index 0 encodes
// the least-significant bit of the register value.
func (r Register) Cell(i int) Cell {
	if i < 0 || i >= r.Size {
		panic(fmt.Sprintf("register %s: cell index %d out of range", r.Name, i))
	}
	return r.Base + Cell(i)
}

func (r Register) String() string {
	return fmt.Sprintf("%s[%d]", r.Name, r.Size)
}

// Circuit specifies a reversible circuit over registers of two-level
// cells. The zero value is an empty circuit; registers and gates are
// appended with the builder methods and never removed.
type Circuit struct {
	NumCells int
	NumOut   int
	Regs     []Register
	Outputs  []Register
	Gates    []Gate
	Stats    Stats
}

// New creates a new empty circuit.
func New() *Circuit {
	return new(Circuit)
}

// Register allocates a new register with the name and size in cells.
// Cells start in the reset state 0.
func (c *Circuit) Register(name string, size int) Register {
	reg := Register{
		Name: name,
		Base: Cell(c.NumCells),
		Size: size,
	}
	c.NumCells += size
	c.Regs = append(c.Regs, reg)
	return reg
}

func (c *Circuit) add(g Gate) {
	c.Gates = append(c.Gates, g)
	c.Stats[g.Op]++
}

// Set appends an unconditional bit-flip gate for the target cell.
func (c *Circuit) Set(target Cell) {
	c.add(Gate{Op: Set, Target: target})
}

// Rand appends a randomization gate putting the target cell into an
// unbiased two-outcome state. Each Rand gate draws independently when
// the circuit is computed.
func (c *Circuit) Rand(target Cell) {
	c.add(Gate{Op: Rand, Target: target})
}

// CNot appends a controlled-NOT gate: the target cell is flipped iff
// the control cell holds 1.
func (c *Circuit) CNot(control, target Cell) {
	c.add(Gate{Op: CNot, Control: control, Target: target})
}

// MeasureCell appends a measurement of the target cell into a fresh
// classical output bit and returns the bit index.
func (c *Circuit) MeasureCell(target Cell) int {
	out := c.NumOut
	c.NumOut++
	c.add(Gate{Op: Measure, Target: target, Out: out})
	return out
}

// MeasureReg measures every cell of the register, in ascending cell
// order, into fresh consecutive classical output bits.
func (c *Circuit) MeasureReg(reg Register) {
	for i := 0; i < reg.Size; i++ {
		c.MeasureCell(reg.Cell(i))
	}
	c.Outputs = append(c.Outputs, reg)
}

func (c *Circuit) String() string {
	var stats string

	for k := Set; k <= Measure; k++ {
		v := c.Stats[k]
		if len(stats) > 0 {
			stats += " "
		}
		stats += fmt.Sprintf("%s=%d", k, v)
	}
	return fmt.Sprintf("#gates=%d (%s) #cells=%d #out=%d",
		len(c.Gates), stats, c.NumCells, c.NumOut)
}

// Dump prints a debug dump of the circuit.
func (c *Circuit) Dump() {
	fmt.Printf("circuit %s\n", c)
	for id, gate := range c.Gates {
		fmt.Printf("%04d\t%s\n", id, gate)
	}
}
