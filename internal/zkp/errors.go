package zkp

import "fmt"

// ProtocolError models a protocol-level failure — a bad reveal, a
// commitment mismatch, a challenge the prover refuses to answer — as
// distinct from a transport-level error. A ProtocolError is returned from
// Prover.Run or Verifier.Run and ends the session; it is not sent to the
// peer as an Abort message. A reveal that fails verification is reported
// separately, as the reason string of a RoundResult{accepted:false}.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("zkp: protocol error: %s", e.Reason)
}

func protocolErrorf(format string, args ...any) *ProtocolError {
	return &ProtocolError{Reason: fmt.Sprintf(format, args...)}
}
