// Command evaluator runs the garbled-circuit evaluator: it connects to a
// garbler, retrieves its own input labels via Simplest OT, evaluates the
// garbled circuit, and prints the resulting bit. Transcribed from Rust's
// lab07/src/bin/evaluater.rs.
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

	cfg, err := config.LoadEvaluator(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Printf("using parameters: host=%s port=%d input_x=%v input_y=%v", cfg.Host, cfg.Port, cfg.InputX, cfg.InputY)

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		logger.Fatalf("failed to connect to garbler at %s: %v", addr, err)
	}
	defer conn.Close()

	e := &circuit.Evaluator{Conn: gcnet.New(conn), InputX: cfg.InputX, InputY: cfg.InputY, Log: logger}
	z, err := e.Run()
	if err != nil {
		logger.Fatalf("evaluator session failed: %v", err)
	}
	fmt.Printf("Computation result z = %d\n", z)
}
