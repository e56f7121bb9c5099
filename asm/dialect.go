package asm

import (
	"github.com/wippyai/evm-assembler/errors"
	"github.com/wippyai/evm-assembler/evm"
)

// Dialect selects one of the two mutually exclusive control-flow instruction
// families. It is fixed for the lifetime of an Assembly.
type Dialect int

const (
	// DialectStack is legacy EVM control flow: jump targets travel over the
	// operand stack ahead of JUMP/JUMPI.
	DialectStack Dialect = iota

	// DialectSubroutine is structured EVM1.5 control flow: jump targets are
	// inline fixed-width operands of JUMPTO/JUMPIF/JUMPSUB, with
	// BEGINSUB/RETURNSUB delimiting subroutines.
	DialectSubroutine
)

// String returns the dialect name.
func (d Dialect) String() string {
	if d == DialectSubroutine {
		return "subroutine"
	}
	return "stack"
}

// jumpEncoder is the jump capability of one dialect. Exactly one
// implementation is bound at construction; each rejects the other dialect's
// operations before any state is mutated.
type jumpEncoder interface {
	labelReference(a *Assembly, id LabelID) error
	jump(a *Assembly, stackDiffAfter int) error
	jumpTo(a *Assembly, id LabelID, stackDiffAfter int) error
	jumpToIf(a *Assembly, id LabelID) error
	beginSub(a *Assembly, id LabelID, arguments int) error
	jumpSub(a *Assembly, id LabelID, arguments, returns int) error
	returnSub(a *Assembly, returns, stackDiffAfter int) error
}

// AppendJump emits an unconditional jump consuming the target already on the
// stack. stackDiffAfter is the caller-supplied net stack change observed at
// the fall-through position, which the assembler cannot infer because
// control leaves the current sequence. Stack dialect only.
func (a *Assembly) AppendJump(stackDiffAfter int) error {
	return a.jumps.jump(a, stackDiffAfter)
}

// AppendJumpOut emits the jump that leaves the current function body. It is
// encoded exactly like AppendJump; the distinction exists for generators
// that track function boundaries.
func (a *Assembly) AppendJumpOut(stackDiffAfter int) error {
	return a.jumps.jump(a, stackDiffAfter)
}

// AppendJumpTo emits an unconditional jump to id, encoded per the dialect.
func (a *Assembly) AppendJumpTo(id LabelID, stackDiffAfter int) error {
	return a.jumps.jumpTo(a, id, stackDiffAfter)
}

// AppendJumpToIf emits a conditional jump to id, consuming the condition
// value on the stack.
func (a *Assembly) AppendJumpToIf(id LabelID) error {
	return a.jumps.jumpToIf(a, id)
}

// AppendBeginsub resolves id to the current position and emits a subroutine
// entry marker expecting the given number of arguments. Subroutine dialect
// only.
func (a *Assembly) AppendBeginsub(id LabelID, arguments int) error {
	return a.jumps.beginSub(a, id, arguments)
}

// AppendJumpsub emits a subroutine call to id with the given argument and
// return counts. Subroutine dialect only.
func (a *Assembly) AppendJumpsub(id LabelID, arguments, returns int) error {
	return a.jumps.jumpSub(a, id, arguments, returns)
}

// AppendReturnsub emits a return from the current subroutine. Subroutine
// dialect only.
func (a *Assembly) AppendReturnsub(returns, stackDiffAfter int) error {
	return a.jumps.returnSub(a, returns, stackDiffAfter)
}

// stackJumps encodes control flow for the legacy stack dialect.
type stackJumps struct{}

func (stackJumps) labelReference(a *Assembly, id LabelID) error {
	if err := a.checkLabel(id); err != nil {
		return err
	}
	a.AppendInstruction(evm.PushInstruction(labelReferenceWidth))
	a.recordReference(id)
	return nil
}

func (stackJumps) jump(a *Assembly, stackDiffAfter int) error {
	a.AppendInstruction(evm.JUMP)
	a.stackHeight += stackDiffAfter
	return nil
}

func (s stackJumps) jumpTo(a *Assembly, id LabelID, stackDiffAfter int) error {
	if err := s.labelReference(a, id); err != nil {
		return err
	}
	return s.jump(a, stackDiffAfter)
}

func (s stackJumps) jumpToIf(a *Assembly, id LabelID) error {
	if err := s.labelReference(a, id); err != nil {
		return err
	}
	a.AppendInstruction(evm.JUMPI)
	return nil
}

func (stackJumps) beginSub(*Assembly, LabelID, int) error {
	return errors.WrongDialect("BEGINSUB", DialectSubroutine.String())
}

func (stackJumps) jumpSub(*Assembly, LabelID, int, int) error {
	return errors.WrongDialect("JUMPSUB", DialectSubroutine.String())
}

func (stackJumps) returnSub(*Assembly, int, int) error {
	return errors.WrongDialect("RETURNSUB", DialectSubroutine.String())
}

// subroutineJumps encodes control flow for the structured EVM1.5 dialect.
// Opcode bytes are written directly: their stack effects depend on
// caller-supplied counts, not on the metadata table.
type subroutineJumps struct{}

func (subroutineJumps) labelReference(*Assembly, LabelID) error {
	return errors.WrongDialect("plain label reference", DialectStack.String())
}

func (subroutineJumps) jump(*Assembly, int) error {
	return errors.WrongDialect("plain JUMP", DialectStack.String())
}

func (subroutineJumps) jumpTo(a *Assembly, id LabelID, stackDiffAfter int) error {
	if err := a.checkLabel(id); err != nil {
		return err
	}
	a.w.Byte(byte(evm.JUMPTO))
	a.recordReference(id)
	a.stackHeight += stackDiffAfter
	return nil
}

func (subroutineJumps) jumpToIf(a *Assembly, id LabelID) error {
	if err := a.checkLabel(id); err != nil {
		return err
	}
	a.w.Byte(byte(evm.JUMPIF))
	a.recordReference(id)
	a.stackHeight--
	return nil
}

func (subroutineJumps) beginSub(a *Assembly, id LabelID, arguments int) error {
	if arguments < 0 {
		return errors.Invariant(errors.PhaseEmit, "BEGINSUB argument count %d is negative", arguments)
	}
	if err := a.setLabelPosition(id); err != nil {
		return err
	}
	a.w.Byte(byte(evm.BEGINSUB))
	a.stackHeight += arguments
	return nil
}

func (subroutineJumps) jumpSub(a *Assembly, id LabelID, arguments, returns int) error {
	if arguments < 0 || returns < 0 {
		return errors.Invariant(errors.PhaseEmit,
			"JUMPSUB argument/return counts (%d, %d) must be non-negative", arguments, returns)
	}
	if err := a.checkLabel(id); err != nil {
		return err
	}
	a.w.Byte(byte(evm.JUMPSUB))
	a.recordReference(id)
	a.stackHeight += returns - arguments
	return nil
}

func (subroutineJumps) returnSub(a *Assembly, returns, stackDiffAfter int) error {
	if returns < 0 {
		return errors.Invariant(errors.PhaseEmit, "RETURNSUB return count %d is negative", returns)
	}
	a.w.Byte(byte(evm.RETURNSUB))
	a.stackHeight += stackDiffAfter - returns
	return nil
}
