package config

import (
	"testing"

	"zkgc/pkg/constants"
)

func TestLoadProverDefaultsEveryPositional(t *testing.T) {
	cfg, err := LoadProver([]string{"-", "-", "-", "-"})
	if err != nil {
		t.Fatalf("LoadProver returned error: %v", err)
	}
	if cfg.Host != constants.DefaultProverHost {
		t.Errorf("Host = %q, want %q", cfg.Host, constants.DefaultProverHost)
	}
	if cfg.Port != constants.DefaultProverPort {
		t.Errorf("Port = %q, want %q", cfg.Port, constants.DefaultProverPort)
	}
	if cfg.Rounds != constants.DefaultRounds {
		t.Errorf("Rounds = %d, want %d", cfg.Rounds, constants.DefaultRounds)
	}
	if cfg.Clues != constants.MinClues {
		t.Errorf("Clues = %d, want %d", cfg.Clues, constants.MinClues)
	}
}

func TestLoadProverExplicitValuesOverrideDefaults(t *testing.T) {
	cfg, err := LoadProver([]string{"10.0.0.1", "7000", "15", "40"})
	if err != nil {
		t.Fatalf("LoadProver returned error: %v", err)
	}
	if cfg.Host != "10.0.0.1" {
		t.Errorf("Host = %q, want %q", cfg.Host, "10.0.0.1")
	}
	if cfg.Port != "7000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "7000")
	}
	if cfg.Rounds != 15 {
		t.Errorf("Rounds = %d, want 15", cfg.Rounds)
	}
	if cfg.Clues != 40 {
		t.Errorf("Clues = %d, want 40", cfg.Clues)
	}
}

func TestLoadProverInvalidRoundsErrors(t *testing.T) {
	if _, err := LoadProver([]string{"-", "-", "nope", "-"}); err == nil {
		t.Fatal("expected an error for a non-numeric rounds argument")
	}
}

func TestLoadProverInvalidCluesErrors(t *testing.T) {
	if _, err := LoadProver([]string{"-", "-", "-", "nope"}); err == nil {
		t.Fatal("expected an error for a non-numeric clues argument")
	}
}

func TestLoadProverCluesBelowMinimumClamps(t *testing.T) {
	cfg, err := LoadProver([]string{"-", "-", "-", "5"})
	if err != nil {
		t.Fatalf("LoadProver returned error: %v", err)
	}
	if cfg.Clues != constants.MinClues {
		t.Errorf("Clues = %d, want clamped to %d", cfg.Clues, constants.MinClues)
	}
}

func TestLoadProverWrongArgCountErrors(t *testing.T) {
	if _, err := LoadProver([]string{"-", "-"}); err == nil {
		t.Fatal("expected an error for too few positional arguments")
	}
}

func TestLoadVerifierDefaultsEveryPositional(t *testing.T) {
	cfg, err := LoadVerifier([]string{"-", "-"})
	if err != nil {
		t.Fatalf("LoadVerifier returned error: %v", err)
	}
	if cfg.Port != constants.DefaultProverPort {
		t.Errorf("Port = %q, want %q", cfg.Port, constants.DefaultProverPort)
	}
	if cfg.Rounds != constants.DefaultRounds {
		t.Errorf("Rounds = %d, want %d", cfg.Rounds, constants.DefaultRounds)
	}
}

func TestLoadVerifierExplicitValuesOverrideDefaults(t *testing.T) {
	cfg, err := LoadVerifier([]string{"7000", "15"})
	if err != nil {
		t.Fatalf("LoadVerifier returned error: %v", err)
	}
	if cfg.Port != "7000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "7000")
	}
	if cfg.Rounds != 15 {
		t.Errorf("Rounds = %d, want 15", cfg.Rounds)
	}
}

func TestLoadVerifierInvalidRoundsErrors(t *testing.T) {
	if _, err := LoadVerifier([]string{"-", "nope"}); err == nil {
		t.Fatal("expected an error for a non-numeric rounds argument")
	}
}

func TestLoadVerifierWrongArgCountErrors(t *testing.T) {
	if _, err := LoadVerifier([]string{"-"}); err == nil {
		t.Fatal("expected an error for too few positional arguments")
	}
}

func TestLoadEvaluatorDefaultHostIsZeroZeroZeroZero(t *testing.T) {
	cfg, err := LoadEvaluator(nil)
	if err != nil {
		t.Fatalf("LoadEvaluator returned error: %v", err)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want %q", cfg.Host, "0.0.0.0")
	}
}
