package ot

import "zkgc/internal/gcnet"

type initMessage struct {
	A    []byte `json:"A"`
	Comm []byte `json:"comm"`
}

type bMessage struct {
	B []byte `json:"B"`
}

type seedMessage struct {
	Seed []byte `json:"seed"`
}

// Sender runs the sending side of Simplest OT: it derives two keys k0, k1,
// of which the receiver can derive exactly the one it chose, without the
// sender learning which. The caller masks its two real messages with the
// returned keys. Transcribed from OtSender.
type Sender struct {
	Conn   *gcnet.Conn
	sk     Scalar
	pk     Point
	seed   []byte
	commit []byte
}

// NewSender draws a fresh keypair and commit-then-open seed.
func NewSender(conn *gcnet.Conn) (*Sender, error) {
	sk, err := GenerateScalar()
	if err != nil {
		return nil, err
	}
	pk := ScalarBaseMult(&sk)
	seed, err := RandomSeed()
	if err != nil {
		return nil, err
	}
	return &Sender{Conn: conn, sk: sk, pk: pk, seed: seed, commit: SHA256(seed)}, nil
}

// Execute runs the five-step Simplest OT sender flow and returns the two
// derived keys K0, K1, used to mask the sender's two real messages.
func (s *Sender) Execute() (k0, k1 []byte, err error) {
	if err = s.Conn.Send(initMessage{A: PointToBytes(s.pk), Comm: s.commit}); err != nil {
		return nil, nil, err
	}

	var bm bMessage
	if err = s.Conn.Receive(&bm); err != nil {
		return nil, nil, err
	}
	bPoint, err := BytesToPoint(bm.B)
	if err != nil {
		return nil, nil, err
	}

	k0Point := ScalarMult(&s.sk, &bPoint)
	aA := ScalarMult(&s.sk, &s.pk)
	k1Point := SubPoints(&k0Point, &aA)

	if err = s.Conn.Send(seedMessage{Seed: s.seed}); err != nil {
		return nil, nil, err
	}

	k0 = HashPoint(k0Point, s.seed, 0)
	k1 = HashPoint(k1Point, s.seed, 1)
	return k0, k1, nil
}
