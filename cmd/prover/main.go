// Command prover runs the ZKP prover: it generates a Sudoku puzzle, connects
// to a verifier, and proves knowledge of the solution without revealing it,
// over as many rounds as the verifier announces in its puzzle
// acknowledgement (the prover's own <rounds> argument is parsed but does not
// set the round count). Transcribed from Rust's
// lab04/zkp/src/bin/prover.rs.
package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"zkgc/internal/sudoku"
	"zkgc/internal/zkp"
	"zkgc/pkg/config"
	"zkgc/pkg/constants"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.LoadProver(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: prover <host> <port> <rounds> <clues>")
		fmt.Fprintln(os.Stderr, "Use - on any argument to use its default value.")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	puzzle := sudoku.Generate(cfg.Clues)
	logger.Printf("[Prover] initialized Sudoku puzzle with %d clues", cfg.Clues)
	logger.Printf("[Prover] puzzle:\n%s", printGrid(puzzle.Board))
	logger.Printf("[Prover] solution:\n%s", printGrid(puzzle.Solution))

	mode := sudoku.HashSHA256
	if cfg.Legacy {
		mode = sudoku.HashFNV
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	conn, err := dialWithRetry(addr, logger)
	if err != nil {
		logger.Fatalf("[Prover] failed to connect to verifier at %s: %v", addr, err)
	}
	defer conn.Close()

	p := &zkp.Prover{RW: conn, Puzzle: puzzle, Mode: mode, Log: logger}
	if err := p.Run(); err != nil {
		logger.Fatalf("[Prover] session failed: %v", err)
	}
}

// dialWithRetry retries the initial dial to the verifier with a fixed
// backoff, since the verifier listener may not be up yet.
func dialWithRetry(addr string, logger *log.Logger) (net.Conn, error) {
	var lastErr error
	for attempt := 1; attempt <= constants.ProverConnectRetries; attempt++ {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		logger.Printf("[Prover] connect attempt %d/%d to %s failed: %v", attempt, constants.ProverConnectRetries, addr, err)
		time.Sleep(constants.ProverConnectBackoff)
	}
	return nil, lastErr
}

func printGrid(g sudoku.Grid) string {
	var out string
	for row := 0; row < constants.GridSize; row++ {
		for col := 0; col < constants.GridSize; col++ {
			if col%constants.BoxSize == 0 && col != 0 {
				out += "| "
			}
			if g[row][col] == 0 {
				out += "- "
			} else {
				out += fmt.Sprintf("%d ", g[row][col])
			}
		}
		out += "\n"
		if row%constants.BoxSize == constants.BoxSize-1 && row != constants.GridSize-1 {
			out += "---------------------\n"
		}
	}
	return out
}
