package gc

import "testing"

// decode maps an output label back to a bit by comparing it against the
// gate's known output0/output1 labels, the same way a real evaluator uses
// a decoding table.
func decode(label, out0, out1 Block) (bit int, ok bool) {
	switch label {
	case out0:
		return 0, true
	case out1:
		return 1, true
	default:
		return 0, false
	}
}

func TestFreeXOROutputLabelInvariant(t *testing.T) {
	g := NewGate()
	a0, a1 := g.GenLabels()
	b0, b1 := g.GenLabels()

	if XOR(a1, b1) != XOR(XOR(a0, b0), XOR(g.Delta, g.Delta)) {
		t.Fatal("sanity identity failed")
	}

	// The free-XOR invariant: equal input bits (00, 11) give the output-0
	// label and unequal input bits (01, 10) give output1 == output0 ^ Delta.
	z00 := EvalXOR(a0, b0)
	z01 := EvalXOR(a0, b1)
	z10 := EvalXOR(a1, b0)
	z11 := EvalXOR(a1, b1)

	if XOR(z00, g.Delta) != z01 {
		t.Fatalf("expected z00^delta == z01")
	}
	if XOR(z11, g.Delta) != z10 {
		t.Fatalf("expected z11^delta == z10")
	}
}

func TestGarbleANDExhaustiveTruthTable(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		g := NewGate()
		a0, a1 := g.GenLabels()
		b0, b1 := g.GenLabels()
		const gid = 7

		out0, out1, ct := g.GarbleAND(a0, a1, b0, b1, gid)

		cases := []struct {
			abit, bbit int
			la, lb     Block
		}{
			{0, 0, a0, b0},
			{0, 1, a0, b1},
			{1, 0, a1, b0},
			{1, 1, a1, b1},
		}

		for _, c := range cases {
			want := c.abit & c.bbit
			gotLabel := EvalAND(c.la, c.lb, ct, gid)
			bit, ok := decode(gotLabel, out0, out1)
			if !ok {
				t.Fatalf("trial %d: a=%d b=%d: evaluated label did not decode to either output label", trial, c.abit, c.bbit)
			}
			if bit != want {
				t.Fatalf("trial %d: a=%d b=%d: got %d, want %d", trial, c.abit, c.bbit, bit, want)
			}
		}
	}
}

func TestHashLabelDomainSeparation(t *testing.T) {
	label := RandBlock()
	left := HashLabel(label, 1, 0)
	right := HashLabel(label, 1, 1)
	if left == right {
		t.Fatal("expected left/right tweak to separate hash outputs")
	}

	other := HashLabel(label, 2, 0)
	if left == other {
		t.Fatal("expected gate id to separate hash outputs")
	}
}
