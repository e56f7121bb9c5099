package asm

import (
	"math/big"

	"github.com/wippyai/evm-assembler/asm/internal/binary"
	"github.com/wippyai/evm-assembler/errors"
	"github.com/wippyai/evm-assembler/evm"
)

// Reference widths in bytes. Four-byte label operands are required by the
// subroutine-dialect instructions; plain label references and the assembly
// size placeholder use the same width for every label regardless of actual
// program size.
const (
	labelReferenceWidth = 4
	sizeReferenceWidth  = 4
)

// unresolved is the sentinel position for a label that has been allocated
// but not yet defined.
const unresolved = -1

// labelRef records a reserved placeholder at pos awaiting label's resolved
// position.
type labelRef struct {
	pos   int
	label LabelID
}

// Assembly assembles one bytecode image. It owns its byte buffer and all
// bookkeeping tables; instances are not safe for concurrent use and are
// driven by a single caller from construction through Finalize.
type Assembly struct {
	w              *binary.Writer
	jumps          jumpEncoder
	namedLabels    map[string]LabelID
	labelPositions []int
	refs           []labelRef
	sizeRefs       []int
	stackHeight    int
	dialect        Dialect
}

// New creates an empty assembly using the given control-flow dialect.
// The dialect cannot be changed afterwards.
func New(d Dialect) *Assembly {
	a := &Assembly{
		w:           binary.NewWriter(),
		namedLabels: make(map[string]LabelID),
		dialect:     d,
	}
	if d == DialectSubroutine {
		a.jumps = subroutineJumps{}
	} else {
		a.jumps = stackJumps{}
	}
	return a
}

// Dialect returns the control-flow dialect fixed at construction.
func (a *Assembly) Dialect() Dialect {
	return a.dialect
}

// Location identifies a source position supplied by the code generator.
type Location struct {
	Source string
	Line   int
	Col    int
}

// SetLocation records the source location for subsequently emitted
// instructions. Locations are currently discarded; the hook exists so
// generators can annotate emission ahead of future debug-info support.
func (a *Assembly) SetLocation(Location) {}

// AppendInstruction emits a single opcode and applies its declared stack
// effect.
func (a *Assembly) AppendInstruction(op evm.Instruction) {
	info := evm.InstructionInfo(op)
	a.w.Byte(byte(op))
	a.stackHeight += info.Rets - info.Args
}

// AppendConstant emits a push of v using the minimal operand width: the
// compact big-endian encoding of v (at least one byte, even for zero)
// preceded by the matching push opcode. Values wider than the largest push
// operand are a caller-contract violation; nothing is emitted.
func (a *Assembly) AppendConstant(v *big.Int) error {
	if v == nil || v.Sign() < 0 {
		return errors.InvalidInput(errors.PhaseEmit, "constant must be a non-negative integer")
	}
	data := binary.CompactUint(v)
	if len(data) > evm.MaxPushSize {
		return errors.Overflow(errors.PhaseEmit, v, evm.MaxPushSize)
	}
	a.AppendInstruction(evm.PushInstruction(len(data)))
	a.w.Write(data)
	return nil
}

// AppendAssemblySize emits a push whose operand is patched with the total
// final bytecode length at Finalize time.
func (a *Assembly) AppendAssemblySize() {
	a.AppendInstruction(evm.PushInstruction(sizeReferenceWidth))
	pos := a.w.Reserve(sizeReferenceWidth)
	a.sizeRefs = append(a.sizeRefs, pos)
}

// StackHeight returns the assembler's running estimate of the operand-stack
// depth at the current emission point. The counter is advisory: it is
// maintained from declared instruction effects and caller-supplied deltas
// but nothing in the assembler depends on it.
func (a *Assembly) StackHeight() int {
	return a.stackHeight
}

// Len returns the number of bytes emitted so far.
func (a *Assembly) Len() int {
	return a.w.Len()
}

// recordReference reserves a zero-filled label operand at the current
// position and registers it for backpatching. The label must already be
// validated by the caller.
func (a *Assembly) recordReference(id LabelID) {
	pos := a.w.Reserve(labelReferenceWidth)
	a.refs = append(a.refs, labelRef{pos: pos, label: id})
}

// checkLabel verifies that id was allocated by this assembly.
func (a *Assembly) checkLabel(id LabelID) error {
	if int(id) >= len(a.labelPositions) {
		return errors.UnknownLabel(errors.PhaseLabel, uint32(id))
	}
	return nil
}
