// Package circuit drives the two-party computation of the fixed formula
// z = a ⊕ ((b ⊕ x) & y), where the garbler holds a, b and the evaluator
// holds x, y, transcribed from Rust's
// lab07/src/bin/{garbler,evaluater}.rs.
package circuit

import (
	"log"

	"zkgc/internal/gc"
	"zkgc/internal/gcnet"
	"zkgc/internal/ot"
)

// andGateID is the single AND gate's id in this fixed three-gate circuit
// (two free-XOR gates, one garbled AND gate).
const andGateID = 1

// Garbler holds the circuit's two garbler-side inputs (a, b) and drives the
// garbling side of the protocol.
type Garbler struct {
	Conn   *gcnet.Conn
	InputA bool
	InputB bool
	Log    *log.Logger
}

// Run garbles the circuit, transfers the evaluator's input labels via two
// rounds of Simplest OT, and sends the garbled AND table and output
// zero-label. It does not learn the result itself — only the evaluator does.
func (g *Garbler) Run() error {
	gate := gc.NewGate()
	a0, a1 := gate.GenLabels()
	b0, b1 := gate.GenLabels()
	x0, x1 := gate.GenLabels()
	y0, y1 := gate.GenLabels()

	la, lb := a0, b0
	if g.InputA {
		la = a1
	}
	if g.InputB {
		lb = b1
	}

	if err := g.Conn.Send(labelsMessage{La: la, Lb: lb}); err != nil {
		return err
	}
	g.logf("sent garbler input a & b")

	if err := g.transferInputLabels(x0, x1); err != nil {
		return err
	}
	g.logf("sent OT messages for input x")

	if err := g.transferInputLabels(y0, y1); err != nil {
		return err
	}
	g.logf("sent OT messages for input y")

	// w1 = b ⊕ x
	w1_0 := gc.XOR(b0, x0)
	w1_1 := gc.XOR(b0, x1)

	// w2 = (b ⊕ x) & y
	w2_0, _, ct := gate.GarbleAND(w1_0, w1_1, y0, y1, andGateID)

	// z = a ⊕ w2
	z0 := gc.XOR(a0, w2_0)

	if err := g.Conn.Send(gatesMessage{AndCT: ct}); err != nil {
		return err
	}
	g.logf("sent garbled tables")

	if err := g.Conn.Send(zeroLabelMessage{Z0: z0}); err != nil {
		return err
	}
	g.logf("sent z0")
	return nil
}

// transferInputLabels runs one Simplest OT transfer masking label0/label1
// under the sender's derived keys and sends the masked pair.
func (g *Garbler) transferInputLabels(label0, label1 gc.Block) error {
	sender, err := ot.NewSender(g.Conn)
	if err != nil {
		return err
	}
	k0, k1, err := sender.Execute()
	if err != nil {
		return err
	}
	enc0 := maskLabel(label0, k0)
	enc1 := maskLabel(label1, k1)
	return g.Conn.Send(otDataMessage{E0: enc0[:], E1: enc1[:]})
}

func (g *Garbler) logf(format string, args ...any) {
	if g.Log != nil {
		g.Log.Printf("[Garbler] "+format, args...)
	}
}
