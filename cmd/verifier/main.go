// Command verifier runs the ZKP verifier: it listens for one prover
// connection and runs the challenge-response session for a fixed number of
// rounds. Transcribed from Rust's
// lab04/zkp/src/bin/verifier.rs.
package main

import (
	"fmt"
	"log"
	"net"
	"os"

	"zkgc/internal/sudoku"
	"zkgc/internal/zkp"
	"zkgc/pkg/config"
	"zkgc/pkg/constants"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.LoadVerifier(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: verifier <port> <rounds>")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Printf("[Verifier] starting up......")

	listener, err := net.Listen("tcp", net.JoinHostPort(constants.DefaultVerifierBind, cfg.Port))
	if err != nil {
		logger.Fatalf("[Verifier] failed to listen on port %s: %v", cfg.Port, err)
	}
	defer listener.Close()

	conn, err := listener.Accept()
	if err != nil {
		logger.Fatalf("[Verifier] failed to accept prover connection: %v", err)
	}
	defer conn.Close()
	logger.Printf("[Verifier] prover connected from %s", conn.RemoteAddr())

	mode := sudoku.HashSHA256
	if cfg.Legacy {
		mode = sudoku.HashFNV
	}

	v := &zkp.Verifier{RW: conn, Rounds: cfg.Rounds, Mode: mode, Log: logger}
	accepted, err := v.Run()
	if err != nil {
		logger.Fatalf("[Verifier] session failed: %v", err)
	}
	if accepted {
		logger.Printf("[Verifier] proof accepted")
	} else {
		logger.Printf("[Verifier] proof rejected")
		os.Exit(1)
	}
}
