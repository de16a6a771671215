// Package framing implements the 4-byte big-endian length-prefixed message
// transport shared by both subsystems: the ZKP session runs CBOR payloads
// over it, the garbled-circuit/OT session runs JSON payloads over it. Rust's
// bincode-over-TcpStream (networks.rs) and its serde_json-over-tokio::TcpStream
// (network.rs) both used the exact same framing; this package is the one
// place that logic lives.
package framing

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxPayload bounds a single frame so a misbehaving or malicious peer can't
// force an unbounded allocation via a forged length prefix.
const MaxPayload = 16 << 20 // 16 MiB

// WriteFrame writes a length-prefixed payload: a 4-byte big-endian length
// followed by exactly that many bytes.
func WriteFrame(w io.Writer, payload []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("framing: write length prefix: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("framing: write payload: %w", err)
	}
	return nil
}

// ReadFrame reads one length-prefixed payload, failing if the declared
// length exceeds MaxPayload or the stream closes mid-frame.
func ReadFrame(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("framing: read length prefix: %w", err)
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n > MaxPayload {
		return nil, fmt.Errorf("framing: frame of %d bytes exceeds max %d", n, MaxPayload)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("framing: read payload: %w", err)
	}
	return payload, nil
}
