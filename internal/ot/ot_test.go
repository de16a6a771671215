package ot

import (
	"bytes"
	"net"
	"testing"
	"time"

	"zkgc/internal/gcnet"
)

func runOT(t *testing.T, choice uint8) (senderK0, senderK1, receiverKey []byte) {
	t.Helper()
	senderConn, receiverConn := net.Pipe()
	defer senderConn.Close()
	defer receiverConn.Close()

	senderErr := make(chan error, 1)
	var k0, k1 []byte
	go func() {
		s, err := NewSender(gcnet.New(senderConn))
		if err != nil {
			senderErr <- err
			return
		}
		k0, k1, err = s.Execute()
		senderErr <- err
	}()

	receiverErr := make(chan error, 1)
	var key []byte
	go func() {
		r, err := NewReceiver(gcnet.New(receiverConn), choice)
		if err != nil {
			receiverErr <- err
			return
		}
		key, err = r.Execute()
		receiverErr <- err
	}()

	select {
	case err := <-senderErr:
		if err != nil {
			t.Fatalf("sender failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("sender did not finish in time")
	}
	if err := <-receiverErr; err != nil {
		t.Fatalf("receiver failed: %v", err)
	}
	return k0, k1, key
}

func TestOTCorrectness(t *testing.T) {
	k0, k1, key := runOT(t, 0)
	if !bytes.Equal(k0, key) {
		t.Fatal("choice=0 receiver key should match sender's K0")
	}
	if bytes.Equal(k1, key) {
		t.Fatal("choice=0 receiver key should not match sender's K1")
	}

	k0, k1, key = runOT(t, 1)
	if !bytes.Equal(k1, key) {
		t.Fatal("choice=1 receiver key should match sender's K1")
	}
	if bytes.Equal(k0, key) {
		t.Fatal("choice=1 receiver key should not match sender's K0")
	}
}

func TestCurvePointArithmetic(t *testing.T) {
	g := Generator()
	a, err := GenerateScalar()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateScalar()
	if err != nil {
		t.Fatal(err)
	}

	aG := ScalarMult(&a, &g)
	bG := ScalarMult(&b, &g)
	sum := AddPoints(&aG, &bG)

	var abSum Scalar
	abSum.Add2(&a, &b)
	expected := ScalarBaseMult(&abSum)

	if PointToBytes(sum) == nil || string(PointToBytes(sum)) != string(PointToBytes(expected)) {
		t.Fatal("a*G + b*G should equal (a+b)*G")
	}

	diff := SubPoints(&sum, &aG)
	if string(PointToBytes(diff)) != string(PointToBytes(bG)) {
		t.Fatal("(a*G + b*G) - a*G should equal b*G")
	}
}

func TestPointSerializationRoundTrip(t *testing.T) {
	g := Generator()
	encoded := PointToBytes(g)
	decoded, err := BytesToPoint(encoded)
	if err != nil {
		t.Fatalf("BytesToPoint failed: %v", err)
	}
	if string(PointToBytes(decoded)) != string(encoded) {
		t.Fatal("round-tripped point does not re-encode identically")
	}
}

func TestBytesToPointRejectsOffCurveData(t *testing.T) {
	garbage := make([]byte, 33)
	garbage[0] = 0x02
	for i := 1; i < 33; i++ {
		garbage[i] = 0xFF
	}
	if _, err := BytesToPoint(garbage); err == nil {
		t.Fatal("expected an error for a non-curve-point encoding")
	}
}
