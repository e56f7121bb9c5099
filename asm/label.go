package asm

import (
	"go.uber.org/zap"

	"github.com/wippyai/evm-assembler/errors"
	"github.com/wippyai/evm-assembler/evm"
)

// LabelID is an opaque handle for a byte position in the output. Identifiers
// are allocated monotonically per assembly and index the label position
// table; they carry no value themselves.
type LabelID uint32

// NewLabel allocates a fresh, unresolved label.
func (a *Assembly) NewLabel() LabelID {
	id := LabelID(len(a.labelPositions))
	a.labelPositions = append(a.labelPositions, unresolved)
	return id
}

// NamedLabel returns the label associated with name, allocating it on first
// use. The same name always yields the same label within one assembly.
func (a *Assembly) NamedLabel(name string) (LabelID, error) {
	if name == "" {
		return 0, errors.InvalidInput(errors.PhaseLabel, "named label requires a non-empty name")
	}
	if id, ok := a.namedLabels[name]; ok {
		return id, nil
	}
	id := a.NewLabel()
	a.namedLabels[name] = id
	return id, nil
}

// AppendLabel resolves id to the current position and emits the jump
// destination marker. Defining an unknown or already-resolved label is a
// caller-contract violation.
func (a *Assembly) AppendLabel(id LabelID) error {
	if err := a.setLabelPosition(id); err != nil {
		return err
	}
	a.AppendInstruction(evm.JUMPDEST)
	return nil
}

// AppendLabelReference pushes the (not necessarily resolved) position of id
// on the operand stack: a fixed-width push opcode followed by a reserved
// operand patched at Finalize time. Only the stack dialect references labels
// through the stack.
func (a *Assembly) AppendLabelReference(id LabelID) error {
	return a.jumps.labelReference(a, id)
}

// setLabelPosition resolves id to the current buffer length. A label
// resolves exactly once.
func (a *Assembly) setLabelPosition(id LabelID) error {
	if err := a.checkLabel(id); err != nil {
		return err
	}
	if pos := a.labelPositions[id]; pos != unresolved {
		return errors.RedefinedLabel(uint32(id), pos)
	}
	a.labelPositions[id] = a.w.Len()
	Logger().Debug("label resolved",
		zap.Uint32("label", uint32(id)),
		zap.Int("offset", a.w.Len()))
	return nil
}
