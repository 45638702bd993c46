// Package forward implements the EX-stage Forwarding Unit (§4.8), an
// optional overlay that bypasses not-yet-written results directly into
// the ALU's inputs.
//
// The reference forwarding unit uses "else if" between the rs-match and
// rt-match check within each priority class, rather than computing
// forwardA and forwardB independently. This is faithfully reproduced
// here per spec.md §4.8/§9 and the literal structure of
// original_source/PipelinedCPU.h's ForwardingUnit::advanceCycle — do not
// "fix" it to the canonical independent-condition form without checking
// the test harness first.
package forward

// Select is a forwarding mux selector: 00 = no forward (use the ID/EX
// read-port value), 01 = forward from EX/MEM, 10 = forward from MEM/WB.
type Select uint32

const (
	SelectNone  Select = 0b00
	SelectExMem Select = 0b01
	SelectMemWb Select = 0b10
)

// Inputs bundles the Forwarding Unit's wires for one EX-stage evaluation.
type Inputs struct {
	IDEXRs uint32
	IDEXRt uint32

	EXMEMRegWrite  bool
	EXMEMRegDstIdx uint32

	MEMWBRegWrite  bool
	MEMWBRegDstIdx uint32
}

// Outputs holds the two forwarding mux selectors for the current cycle.
type Outputs struct {
	ForwardA Select
	ForwardB Select
}

// Evaluate runs the §4.8 rules in order. Later matches in the same
// priority class only override earlier ones via the else-if chain
// reproduced below — see the package doc comment.
func Evaluate(in Inputs) Outputs {
	out := Outputs{ForwardA: SelectNone, ForwardB: SelectNone}

	if in.EXMEMRegWrite && in.EXMEMRegDstIdx != 0 {
		if in.EXMEMRegDstIdx == in.IDEXRs {
			out.ForwardA = SelectExMem
		} else if in.EXMEMRegDstIdx == in.IDEXRt {
			out.ForwardB = SelectExMem
		}
	}

	if in.MEMWBRegWrite && in.MEMWBRegDstIdx != 0 {
		if in.MEMWBRegDstIdx == in.IDEXRs {
			out.ForwardA = SelectMemWb
		} else if in.MEMWBRegDstIdx == in.IDEXRt {
			out.ForwardB = SelectMemWb
		}
	}

	return out
}
