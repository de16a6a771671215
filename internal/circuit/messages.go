package circuit

import "zkgc/internal/gc"

// labelsMessage carries the garbler's own input wire labels, sent once at
// the start of the session (garbler.rs step 1).
type labelsMessage struct {
	La gc.Block `json:"la"`
	Lb gc.Block `json:"lb"`
}

// otDataMessage carries the two OT-masked evaluator input labels for one
// wire (garbler.rs steps 2.1/2.2).
type otDataMessage struct {
	E0 []byte `json:"e0"`
	E1 []byte `json:"e1"`
}

// gatesMessage carries the garbled AND gate's ciphertext (garbler.rs step 3).
type gatesMessage struct {
	AndCT gc.Cipher `json:"and_ct"`
}

// zeroLabelMessage carries the output wire's zero-label, letting the
// evaluator decode its final evaluated label to a bit (garbler.rs step 5).
type zeroLabelMessage struct {
	Z0 gc.Block `json:"z0"`
}

// blockFromKey truncates a derived OT key (32 bytes, from SHA-256) down to
// a 16-byte gc.Block; maskLabel and unmaskLabel XOR that block with a
// label, matching the original prototype's `xor_bytes(&x0, &k0[0..x0.len()])`.
func blockFromKey(key []byte) gc.Block {
	var b gc.Block
	copy(b[:], key[:len(b)])
	return b
}

func maskLabel(label gc.Block, key []byte) gc.Block {
	return gc.XOR(label, blockFromKey(key))
}

func unmaskLabel(enc []byte, key []byte) gc.Block {
	var encBlock gc.Block
	copy(encBlock[:], enc[:len(encBlock)])
	return gc.XOR(encBlock, blockFromKey(key))
}
