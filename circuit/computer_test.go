//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestSetMeasure(t *testing.T) {
	qc := New()
	q := qc.Register("q", 3)
	qc.Set(q.Cell(0))
	qc.Set(q.Cell(2))
	qc.MeasureReg(q)

	outcome, err := qc.Compute(nil)
	if err != nil {
		t.Fatalf("Compute failed: %s", err)
	}
	if outcome != "101" {
		t.Errorf("got %q, expected %q", outcome, "101")
	}
}

func TestSetIsFlip(t *testing.T) {
	qc := New()
	q := qc.Register("q", 1)
	qc.Set(q.Cell(0))
	qc.Set(q.Cell(0))
	qc.MeasureReg(q)

	outcome, err := qc.Compute(nil)
	if err != nil {
		t.Fatalf("Compute failed: %s", err)
	}
	if outcome != "0" {
		t.Errorf("double flip: got %q, expected %q", outcome, "0")
	}
}

func TestCNot(t *testing.T) {
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			qc := New()
			q := qc.Register("q", 2)
			if a == 1 {
				qc.Set(q.Cell(0))
			}
			if b == 1 {
				qc.Set(q.Cell(1))
			}
			qc.CNot(q.Cell(0), q.Cell(1))
			qc.MeasureReg(q)

			outcome, err := qc.Compute(nil)
			if err != nil {
				t.Fatalf("Compute failed: %s", err)
			}
			expected := string([]byte{'0' + byte(a^b), '0' + byte(a)})
			if outcome != expected {
				t.Errorf("CNot(%d,%d): got %q, expected %q",
					a, b, outcome, expected)
			}
		}
	}
}

func TestRandScripted(t *testing.T) {
	tests := []struct {
		input    byte
		expected string
	}{
		{0x00, "0"},
		{0x01, "1"},
		{0xfe, "0"},
		{0xff, "1"},
	}
	for _, test := range tests {
		qc := New()
		q := qc.Register("q", 1)
		qc.Rand(q.Cell(0))
		qc.MeasureReg(q)

		outcome, err := qc.Compute(bytes.NewReader([]byte{test.input}))
		if err != nil {
			t.Fatalf("Compute failed: %s", err)
		}
		if outcome != test.expected {
			t.Errorf("Rand(%#02x): got %q, expected %q",
				test.input, outcome, test.expected)
		}
	}
}

func TestRandSourceFailure(t *testing.T) {
	qc := New()
	q := qc.Register("q", 1)
	qc.Rand(q.Cell(0))
	qc.MeasureReg(q)

	_, err := qc.Compute(bytes.NewReader(nil))
	if err == nil {
		t.Fatal("Compute succeeded with exhausted randomness source")
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestSample(t *testing.T) {
	qc := New()
	q := qc.Register("q", 1)
	qc.Set(q.Cell(0))
	qc.MeasureReg(q)

	counts, err := qc.Sample(nil, 16)
	if err != nil {
		t.Fatalf("Sample failed: %s", err)
	}
	if len(counts) != 1 || counts["1"] != 16 {
		t.Errorf("counts %v", counts)
	}

	if _, err := qc.Sample(nil, 0); err == nil {
		t.Error("Sample succeeded with zero shots")
	}
}

func TestSampleRand(t *testing.T) {
	qc := New()
	q := qc.Register("q", 1)
	qc.Rand(q.Cell(0))
	qc.MeasureReg(q)

	counts, err := qc.Sample(bytes.NewReader([]byte{0, 1, 1, 1}), 4)
	if err != nil {
		t.Fatalf("Sample failed: %s", err)
	}
	if counts["0"] != 1 || counts["1"] != 3 {
		t.Errorf("counts %v", counts)
	}
}
