package ot

import (
	"bytes"
	"fmt"

	"zkgc/internal/gcnet"
)

// Receiver runs the receiving side of Simplest OT: it picks one of the
// sender's two messages by a single bit and learns only that one.
// Transcribed from OtReceiver.
type Receiver struct {
	Conn   *gcnet.Conn
	Choice uint8 // 0 or 1
	r      Scalar
}

// NewReceiver draws a fresh scalar for choice (0 or 1).
func NewReceiver(conn *gcnet.Conn, choice uint8) (*Receiver, error) {
	if choice != 0 && choice != 1 {
		return nil, fmt.Errorf("ot: choice must be 0 or 1, got %d", choice)
	}
	r, err := GenerateScalar()
	if err != nil {
		return nil, err
	}
	return &Receiver{Conn: conn, Choice: choice, r: r}, nil
}

// Execute runs the five-step Simplest OT receiver flow and returns the
// single derived key corresponding to Choice, aborting if the sender's
// opened seed does not match its earlier commitment.
func (rv *Receiver) Execute() ([]byte, error) {
	var im initMessage
	if err := rv.Conn.Receive(&im); err != nil {
		return nil, err
	}
	aPoint, err := BytesToPoint(im.A)
	if err != nil {
		return nil, err
	}

	g := Generator()
	b0 := ScalarMult(&rv.r, &g)
	var bPoint Point
	if rv.Choice == 0 {
		bPoint = b0
	} else {
		bPoint = AddPoints(&aPoint, &b0)
	}
	if err := rv.Conn.Send(bMessage{B: PointToBytes(bPoint)}); err != nil {
		return nil, err
	}

	var sm seedMessage
	if err := rv.Conn.Receive(&sm); err != nil {
		return nil, err
	}
	if !bytes.Equal(SHA256(sm.Seed), im.Comm) {
		return nil, fmt.Errorf("ot: sender's opened seed does not match its commitment")
	}

	k := ScalarMult(&rv.r, &aPoint)
	return HashPoint(k, sm.Seed, uint64(rv.Choice)), nil
}
