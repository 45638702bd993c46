// Package comb implements the stateless combinational helpers shared
// across stages: the 32-bit adder, the 16->32 sign extender, and the
// 2:1/3:1 multiplexers (§4.4, §4.5).
package comb

import "fmt"

// Add32 returns a+b wrapped modulo 2^32, the datapath's adder (PC+4 and
// branch-target adder both instantiate this).
func Add32(a, b uint32) uint32 {
	return a + b
}

// SignExtend16to32 copies the low 16 bits of imm and replicates bit 15
// into bits 16..31, per §4.4.
func SignExtend16to32(imm uint16) uint32 {
	if imm&0x8000 != 0 {
		return uint32(imm) | 0xFFFF0000
	}
	return uint32(imm)
}

// Mux2 selects input0 when sel is 0, else input1. Any other selector
// value is an implementation fault — a 1-bit select can only be 0 or 1,
// so this only fires if a caller passes a malformed selector.
func Mux2[T any](input0, input1 T, sel uint32) T {
	switch sel {
	case 0:
		return input0
	case 1:
		return input1
	default:
		panic(fmt.Sprintf("comb: Mux2 unsupported select %d", sel))
	}
}

// Mux3 selects input0/input1/input2 for sel 0/1/2. sel == 3 is an
// implementation fault, per §4.5.
func Mux3[T any](input0, input1, input2 T, sel uint32) T {
	switch sel {
	case 0:
		return input0
	case 1:
		return input1
	case 2:
		return input2
	default:
		panic(fmt.Sprintf("comb: Mux3 unsupported select %d", sel))
	}
}
