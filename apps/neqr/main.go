//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command neqr demonstrates NEQR basis-state encoding: it encodes one
// pixel intensity into an 8-cell register, samples the circuit, and
// verifies that every shot decodes back to the input intensity.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/markkurossi/qvss"
	"github.com/markkurossi/qvss/circuit"
	"github.com/markkurossi/qvss/neqr"
)

func main() {
	intensity := flag.Int("i", 170, "pixel intensity to encode")
	shots := flag.Int("shots", 64, "number of measurement shots")
	seed := flag.String("seed", "", "hex PRG seed for reproducible runs")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	fmt.Printf("Encoding pixel intensity: %d\n", *intensity)

	qc := circuit.New()
	reg := qc.Register("q", neqr.Bits)

	if err := neqr.EncodeMeasured(qc, reg, *intensity); err != nil {
		log.Fatal(err)
	}
	if *verbose {
		qc.Render()
	}

	rnd, err := newRand(*seed)
	if err != nil {
		log.Fatal(err)
	}
	counts, err := qc.Sample(rnd, *shots)
	if err != nil {
		log.Fatal(err)
	}
	counts.Print()
	if err := qvss.PrintResults(qc, counts); err != nil {
		log.Fatal(err)
	}

	if len(counts) != 1 {
		fmt.Printf("FAILED: %d distinct outcomes, expected 1\n", len(counts))
		os.Exit(1)
	}
	for outcome := range counts {
		value, err := neqr.Decode(outcome)
		if err != nil {
			log.Fatal(err)
		}
		if value == *intensity {
			fmt.Printf("SUCCESS: encoding/decoding verified\n")
		} else {
			fmt.Printf("FAILED: got %d, expected %d\n", value, *intensity)
			os.Exit(1)
		}
	}
}

func newRand(seed string) (io.Reader, error) {
	if len(seed) == 0 {
		return circuit.NewPRG()
	}
	data, err := hex.DecodeString(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return circuit.NewSeededPRG(data)
}
