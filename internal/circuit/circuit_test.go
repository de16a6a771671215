package circuit

import (
	"net"
	"testing"
	"time"

	"zkgc/internal/gcnet"
)

func runCircuit(t *testing.T, a, b, x, y bool) int {
	t.Helper()
	garblerConn, evaluatorConn := net.Pipe()
	defer garblerConn.Close()
	defer evaluatorConn.Close()

	garblerErr := make(chan error, 1)
	go func() {
		g := &Garbler{Conn: gcnet.New(garblerConn), InputA: a, InputB: b}
		garblerErr <- g.Run()
	}()

	resultCh := make(chan int, 1)
	evalErr := make(chan error, 1)
	go func() {
		e := &Evaluator{Conn: gcnet.New(evaluatorConn), InputX: x, InputY: y}
		z, err := e.Run()
		resultCh <- z
		evalErr <- err
	}()

	select {
	case err := <-garblerErr:
		if err != nil {
			t.Fatalf("garbler failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("garbler did not finish in time")
	}
	if err := <-evalErr; err != nil {
		t.Fatalf("evaluator failed: %v", err)
	}
	return <-resultCh
}

func TestCircuitTruthTable(t *testing.T) {
	toBit := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}

	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			for _, x := range []bool{false, true} {
				for _, y := range []bool{false, true} {
					want := toBit(a) ^ (toBit(b != x) & toBit(y))
					got := runCircuit(t, a, b, x, y)
					if got != want {
						t.Fatalf("a=%v b=%v x=%v y=%v: got z=%d, want %d", a, b, x, y, got, want)
					}
				}
			}
		}
	}
}
