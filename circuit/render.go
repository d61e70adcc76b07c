//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"os"
	"sort"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// CellName resolves the cell into its register-qualified name, with
// the cell index rendered in superscript.
func (c *Circuit) CellName(cell Cell) string {
	for _, reg := range c.Regs {
		if cell >= reg.Base && int(cell-reg.Base) < reg.Size {
			return reg.Name + superscript.Itoa(int(cell-reg.Base))
		}
	}
	return cell.String()
}

// Render prints the circuit as a gate listing with register-qualified
// cell names.
func (c *Circuit) Render() {
	fmt.Printf("circuit %s\n", c)
	for id, gate := range c.Gates {
		switch gate.Op {
		case CNot:
			fmt.Printf("%04d\t%s %s %s\n", id, gate.Op,
				c.CellName(gate.Control), c.CellName(gate.Target))
		case Measure:
			fmt.Printf("%04d\t%s %s c%d\n", id, gate.Op,
				c.CellName(gate.Target), gate.Out)
		default:
			fmt.Printf("%04d\t%s %s\n", id, gate.Op,
				c.CellName(gate.Target))
		}
	}
}

// Print renders the counts as a table to standard output, outcomes in
// lexical order.
func (counts Counts) Print() {
	var total int
	var outcomes []string
	for outcome, count := range counts {
		outcomes = append(outcomes, outcome)
		total += count
	}
	sort.Strings(outcomes)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Outcome").SetAlign(tabulate.ML)
	tab.Header("Count").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	for _, outcome := range outcomes {
		row := tab.Row()
		row.Column(outcome)
		row.Column(fmt.Sprintf("%d", counts[outcome]))
		row.Column(fmt.Sprintf("%.2f%%",
			float64(counts[outcome])/float64(total)*100))
	}
	tab.Print(os.Stdout)
}
