// Command garbler runs the garbled-circuit garbler: it listens for one
// evaluator connection, garbles z = a ⊕ ((b ⊕ x) & y), and transfers the
// evaluator's input labels via Simplest OT. Transcribed from Rust's
// lab07/src/bin/garbler.rs.
package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"

	"zkgc/internal/circuit"
	"zkgc/internal/gcnet"
	"zkgc/pkg/config"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.LoadGarbler(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Printf("using parameters: port=%d input_a=%v input_b=%v", cfg.Port, cfg.InputA, cfg.InputB)

	listener, err := net.Listen("tcp", net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.Port)))
	if err != nil {
		logger.Fatalf("failed to listen on port %d: %v", cfg.Port, err)
	}
	defer listener.Close()

	conn, err := listener.Accept()
	if err != nil {
		logger.Fatalf("failed to accept evaluator connection: %v", err)
	}
	defer conn.Close()

	g := &circuit.Garbler{Conn: gcnet.New(conn), InputA: cfg.InputA, InputB: cfg.InputB, Log: logger}
	if err := g.Run(); err != nil {
		logger.Fatalf("garbler session failed: %v", err)
	}
}
