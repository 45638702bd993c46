// Package hazard implements the Hazard Detection Unit (§4.9), an
// optional overlay (requires forwarding) that stalls the pipeline for
// one cycle on a load-use hazard by injecting a bubble.
package hazard

// Inputs bundles the Hazard Detection Unit's wires for one ID-stage
// evaluation.
type Inputs struct {
	IFIDRs     uint32
	IFIDRt     uint32
	IDEXRt     uint32
	IDEXMemRead bool
}

// Outputs holds the three stall-control signals. When Stalling reports true,
// PCWrite/IFIDWrite/IDEXCtrlWrite are all 0: PC and IF/ID do not update
// and the ID/EX control fields are zeroed (a bubble) next cycle.
type Outputs struct {
	PCWrite       bool
	IFIDWrite     bool
	IDEXCtrlWrite bool
}

// Evaluate runs the §4.9 rule: stall iff the instruction in ID/EX is a
// load (memRead) whose destination register is either source operand of
// the instruction currently in IF/ID.
func Evaluate(in Inputs) Outputs {
	if in.IDEXMemRead && (in.IDEXRt == in.IFIDRs || in.IDEXRt == in.IFIDRt) {
		return Outputs{}
	}
	return Outputs{PCWrite: true, IFIDWrite: true, IDEXCtrlWrite: true}
}

// Stalling reports whether Evaluate's result represents a stall cycle.
func (o Outputs) Stalling() bool {
	return !o.PCWrite && !o.IFIDWrite && !o.IDEXCtrlWrite
}
