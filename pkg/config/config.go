// Package config builds the small, argument-sourced configuration structs
// each binary needs. Neither subsystem persists state or reads environment
// variables, so each Load function here parses os.Args/flag.FlagSet rather
// than os.Getenv.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"zkgc/pkg/constants"
)

// ProverConfig configures the ZKP prover CLI: `prover <host> <port> <rounds> <clues>`,
// where "-" on any positional selects that field's default, matching Rust's
// usage string.
type ProverConfig struct {
	Host   string
	Port   string
	Rounds int
	Clues  int
	Legacy bool // use the weak FNV-64 commitment mode instead of SHA-256
}

// LoadProver parses a prover's positional arguments (excluding argv[0]).
func LoadProver(args []string) (*ProverConfig, error) {
	fs := flag.NewFlagSet("prover", flag.ContinueOnError)
	legacy := fs.Bool("legacy-hash", false, "use the legacy FNV-64 commitment mode")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) != 4 {
		return nil, errors.New("usage: prover <host> <port> <rounds> <clues> (use - for any default)")
	}

	host := rest[0]
	if host == "-" {
		host = constants.DefaultProverHost
	}

	port := rest[1]
	if port == "-" {
		port = constants.DefaultProverPort
	}

	var err error
	rounds := constants.DefaultRounds
	if rest[2] != "-" {
		rounds, err = strconv.Atoi(rest[2])
		if err != nil {
			return nil, fmt.Errorf("invalid rounds %q: %w", rest[2], err)
		}
	}

	clues := constants.MinClues
	if rest[3] != "-" {
		clues, err = strconv.Atoi(rest[3])
		if err != nil {
			return nil, fmt.Errorf("invalid clues %q: %w", rest[3], err)
		}
	}
	if clues < constants.MinClues {
		clues = constants.MinClues
	}

	return &ProverConfig{Host: host, Port: port, Rounds: rounds, Clues: clues, Legacy: *legacy}, nil
}

// VerifierConfig configures the ZKP verifier CLI: `verifier <port> <rounds>`.
type VerifierConfig struct {
	Port   string
	Rounds int
	Legacy bool
}

// LoadVerifier parses a verifier's positional arguments (excluding argv[0]).
func LoadVerifier(args []string) (*VerifierConfig, error) {
	fs := flag.NewFlagSet("verifier", flag.ContinueOnError)
	legacy := fs.Bool("legacy-hash", false, "use the legacy FNV-64 commitment mode")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return nil, errors.New("usage: verifier <port> <rounds> (use - for either default)")
	}

	port := rest[0]
	if port == "-" {
		port = constants.DefaultProverPort
	}

	rounds := constants.DefaultRounds
	if rest[1] != "-" {
		var err error
		rounds, err = strconv.Atoi(rest[1])
		if err != nil {
			return nil, fmt.Errorf("invalid rounds %q: %w", rest[1], err)
		}
	}

	return &VerifierConfig{Port: port, Rounds: rounds, Legacy: *legacy}, nil
}

// GarblerConfig configures the garbled-circuit garbler CLI, which listens
// for the evaluator and holds the "a"/"b" circuit inputs.
type GarblerConfig struct {
	Port   int
	InputA bool
	InputB bool
}

// LoadGarbler parses garbler flags with the stdlib flag package, mirroring
// Rust's clap::Parser field set (port, input_a, input_b).
func LoadGarbler(args []string) (*GarblerConfig, error) {
	fs := flag.NewFlagSet("garbler", flag.ContinueOnError)
	port := fs.Int("port", constants.DefaultGCPort, "listen port")
	inputA := fs.Int("input-a", 0, "garbler's a input (0 or nonzero)")
	inputB := fs.Int("input-b", 0, "garbler's b input (0 or nonzero)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &GarblerConfig{Port: *port, InputA: *inputA != 0, InputB: *inputB != 0}, nil
}

// EvaluatorConfig configures the garbled-circuit evaluator CLI.
type EvaluatorConfig struct {
	Host   string
	Port   int
	InputX bool
	InputY bool
}

// LoadEvaluator parses evaluator flags, mirroring Rust's
// clap::Parser field set (host, port, input_x, input_y).
func LoadEvaluator(args []string) (*EvaluatorConfig, error) {
	fs := flag.NewFlagSet("evaluator", flag.ContinueOnError)
	host := fs.String("host", constants.DefaultEvaluatorHost, "garbler host")
	port := fs.Int("port", constants.DefaultGCPort, "garbler port")
	inputX := fs.Int("input-x", 0, "evaluator's x input (0 or nonzero)")
	inputY := fs.Int("input-y", 0, "evaluator's y input (0 or nonzero)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &EvaluatorConfig{Host: *host, Port: *port, InputX: *inputX != 0, InputY: *inputY != 0}, nil
}
