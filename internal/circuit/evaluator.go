package circuit

import (
	"log"

	"zkgc/internal/gc"
	"zkgc/internal/gcnet"
	"zkgc/internal/ot"
)

// Evaluator holds the circuit's two evaluator-side inputs (x, y) and drives
// the evaluation side of the protocol.
type Evaluator struct {
	Conn   *gcnet.Conn
	InputX bool
	InputY bool
	Log    *log.Logger
}

// Run evaluates the garbled circuit end to end and returns the single
// output bit z = a ⊕ ((b ⊕ x) & y).
func (e *Evaluator) Run() (int, error) {
	var lm labelsMessage
	if err := e.Conn.Receive(&lm); err != nil {
		return 0, err
	}
	e.logf("received garbler input a & b")

	lx, err := e.receiveInputLabel(e.InputX)
	if err != nil {
		return 0, err
	}
	e.logf("OT for x done")

	ly, err := e.receiveInputLabel(e.InputY)
	if err != nil {
		return 0, err
	}
	e.logf("OT for y done")

	var gm gatesMessage
	if err := e.Conn.Receive(&gm); err != nil {
		return 0, err
	}
	e.logf("received garbled AND gate table")

	// w1 = b ⊕ x
	lw1 := gc.EvalXOR(lm.Lb, lx)
	// w2 = (b ⊕ x) & y
	lw2 := gc.EvalAND(lw1, ly, gm.AndCT, andGateID)
	// z = a ⊕ w2
	lz := gc.EvalXOR(lm.La, lw2)

	var zm zeroLabelMessage
	if err := e.Conn.Receive(&zm); err != nil {
		return 0, err
	}
	e.logf("received z0")

	if lz == zm.Z0 {
		return 0, nil
	}
	return 1, nil
}

// receiveInputLabel runs one Simplest OT receive for the evaluator's choice
// bit and unmasks its input label out of the garbler's OT-masked pair.
func (e *Evaluator) receiveInputLabel(choiceBit bool) (gc.Block, error) {
	choice := uint8(0)
	if choiceBit {
		choice = 1
	}
	receiver, err := ot.NewReceiver(e.Conn, choice)
	if err != nil {
		return gc.Block{}, err
	}
	key, err := receiver.Execute()
	if err != nil {
		return gc.Block{}, err
	}

	var data otDataMessage
	if err := e.Conn.Receive(&data); err != nil {
		return gc.Block{}, err
	}

	enc := data.E0
	if choiceBit {
		enc = data.E1
	}
	return unmaskLabel(enc, key), nil
}

func (e *Evaluator) logf(format string, args ...any) {
	if e.Log != nil {
		e.Log.Printf("[Evaluator] "+format, args...)
	}
}
