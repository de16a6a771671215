// Package gcnet is the length-prefixed JSON transport shared by the
// garbler, evaluator, and OT sender/receiver, transcribed from the original
// prototype's network.rs Network type (tokio + serde_json instead of Go's
// net.Conn + encoding/json, same framing underneath).
package gcnet

import (
	"encoding/json"
	"fmt"
	"io"

	"zkgc/internal/framing"
)

// Conn is a length-prefixed JSON message channel over an arbitrary
// io.ReadWriter (typically a net.Conn).
type Conn struct {
	RW io.ReadWriter
}

// New wraps rw in a Conn.
func New(rw io.ReadWriter) *Conn {
	return &Conn{RW: rw}
}

// Send JSON-encodes data and writes it as one length-prefixed frame,
// matching Network::send.
func (c *Conn) Send(data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("gcnet: encode: %w", err)
	}
	if err := framing.WriteFrame(c.RW, payload); err != nil {
		return fmt.Errorf("gcnet: send: %w", err)
	}
	return nil
}

// Receive reads one length-prefixed frame and JSON-decodes it into v,
// matching Network::receive (which returned the raw string; callers here
// get typed decoding instead of receive_json!'s manual serde_json::Value
// field extraction).
func (c *Conn) Receive(v any) error {
	payload, err := framing.ReadFrame(c.RW)
	if err != nil {
		return fmt.Errorf("gcnet: receive: %w", err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("gcnet: decode: %w", err)
	}
	return nil
}
