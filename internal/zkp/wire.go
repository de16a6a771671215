package zkp

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"zkgc/internal/framing"
)

var encMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("zkp: building canonical CBOR encoder: %v", err))
	}
	return mode
}()

// SendProverMessage frames and CBOR-encodes a ProverMessage, playing the
// role of Rust's bincode-based send_message but over canonical CBOR, a
// self-describing schemaless codec with cross-language interoperability.
func SendProverMessage(w io.Writer, msg *ProverMessage) error {
	payload, err := encMode.Marshal(msg)
	if err != nil {
		return fmt.Errorf("zkp: encode prover message: %w", err)
	}
	return framing.WriteFrame(w, payload)
}

// ReceiveProverMessage reads and decodes one ProverMessage.
func ReceiveProverMessage(r io.Reader) (*ProverMessage, error) {
	payload, err := framing.ReadFrame(r)
	if err != nil {
		return nil, fmt.Errorf("zkp: read prover message: %w", err)
	}
	var msg ProverMessage
	if err := cbor.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("zkp: decode prover message: %w", err)
	}
	return &msg, nil
}

// SendVerifierMessage frames and CBOR-encodes a VerifierMessage.
func SendVerifierMessage(w io.Writer, msg *VerifierMessage) error {
	payload, err := encMode.Marshal(msg)
	if err != nil {
		return fmt.Errorf("zkp: encode verifier message: %w", err)
	}
	return framing.WriteFrame(w, payload)
}

// ReceiveVerifierMessage reads and decodes one VerifierMessage.
func ReceiveVerifierMessage(r io.Reader) (*VerifierMessage, error) {
	payload, err := framing.ReadFrame(r)
	if err != nil {
		return nil, fmt.Errorf("zkp: read verifier message: %w", err)
	}
	var msg VerifierMessage
	if err := cbor.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("zkp: decode verifier message: %w", err)
	}
	return &msg, nil
}
