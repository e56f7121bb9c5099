package asm_test

import (
	"bytes"
	"testing"

	"github.com/wippyai/evm-assembler/asm"
	evmerrors "github.com/wippyai/evm-assembler/errors"
	"github.com/wippyai/evm-assembler/evm"
)

func TestStackDialectRejectsSubroutineOps(t *testing.T) {
	a := asm.New(asm.DialectStack)
	l := a.NewLabel()

	assertKind(t, a.AppendBeginsub(l, 0), evmerrors.KindWrongDialect)
	assertKind(t, a.AppendJumpsub(l, 0, 0), evmerrors.KindWrongDialect)
	assertKind(t, a.AppendReturnsub(0, 0), evmerrors.KindWrongDialect)

	if a.Len() != 0 || a.StackHeight() != 0 {
		t.Errorf("rejected operations mutated state: len=%d height=%d", a.Len(), a.StackHeight())
	}
}

func TestSubroutineDialectRejectsStackOps(t *testing.T) {
	a := asm.New(asm.DialectSubroutine)
	l := a.NewLabel()

	assertKind(t, a.AppendJump(0), evmerrors.KindWrongDialect)
	assertKind(t, a.AppendJumpOut(0), evmerrors.KindWrongDialect)
	assertKind(t, a.AppendLabelReference(l), evmerrors.KindWrongDialect)

	if a.Len() != 0 || a.StackHeight() != 0 {
		t.Errorf("rejected operations mutated state: len=%d height=%d", a.Len(), a.StackHeight())
	}
}

func TestSubroutineJumpToEncoding(t *testing.T) {
	a := asm.New(asm.DialectSubroutine)
	l := a.NewLabel()

	if err := a.AppendJumpTo(l, 0); err != nil {
		t.Fatalf("AppendJumpTo: %v", err)
	}
	a.AppendInstruction(evm.STOP)
	if err := a.AppendLabel(l); err != nil {
		t.Fatalf("AppendLabel: %v", err)
	}

	code := mustFinalize(t, a)
	// Inline 4-byte operand directly after the opcode, no push instruction.
	want := []byte{
		byte(evm.JUMPTO), 0x00, 0x00, 0x00, 0x06,
		byte(evm.STOP),
		byte(evm.JUMPDEST),
	}
	if !bytes.Equal(code, want) {
		t.Errorf("bytecode = %x, want %x", code, want)
	}
}

func TestSubroutineJumpToIf(t *testing.T) {
	a := asm.New(asm.DialectSubroutine)
	l := a.NewLabel()

	a.AppendInstruction(evm.CALLVALUE) // condition
	if err := a.AppendJumpToIf(l); err != nil {
		t.Fatalf("AppendJumpToIf: %v", err)
	}
	if err := a.AppendLabel(l); err != nil {
		t.Fatalf("AppendLabel: %v", err)
	}

	if a.StackHeight() != 0 {
		t.Errorf("height = %d, want 0 (condition consumed)", a.StackHeight())
	}

	code := mustFinalize(t, a)
	want := []byte{
		byte(evm.CALLVALUE),
		byte(evm.JUMPIF), 0x00, 0x00, 0x00, 0x06,
		byte(evm.JUMPDEST),
	}
	if !bytes.Equal(code, want) {
		t.Errorf("bytecode = %x, want %x", code, want)
	}
}

func TestSubroutineCallAndReturn(t *testing.T) {
	a := asm.New(asm.DialectSubroutine)
	sub := a.NewLabel()

	if err := a.AppendJumpsub(sub, 1, 1); err != nil {
		t.Fatalf("AppendJumpsub: %v", err)
	}
	a.AppendInstruction(evm.STOP)
	if err := a.AppendBeginsub(sub, 1); err != nil {
		t.Fatalf("AppendBeginsub: %v", err)
	}
	if err := a.AppendReturnsub(1, 0); err != nil {
		t.Fatalf("AppendReturnsub: %v", err)
	}

	code := mustFinalize(t, a)
	// BEGINSUB's implicit target is its own position.
	want := []byte{
		byte(evm.JUMPSUB), 0x00, 0x00, 0x00, 0x06,
		byte(evm.STOP),
		byte(evm.BEGINSUB),
		byte(evm.RETURNSUB),
	}
	if !bytes.Equal(code, want) {
		t.Errorf("bytecode = %x, want %x", code, want)
	}
}

func TestSubroutineStackEffects(t *testing.T) {
	a := asm.New(asm.DialectSubroutine)
	sub := a.NewLabel()

	// JUMPSUB with 2 arguments and 1 return: net -1.
	if err := a.AppendJumpsub(sub, 2, 1); err != nil {
		t.Fatalf("AppendJumpsub: %v", err)
	}
	if a.StackHeight() != -1 {
		t.Errorf("height after jumpsub = %d, want -1", a.StackHeight())
	}

	// BEGINSUB declares 2 arguments on entry.
	if err := a.AppendBeginsub(sub, 2); err != nil {
		t.Fatalf("AppendBeginsub: %v", err)
	}
	if a.StackHeight() != 1 {
		t.Errorf("height after beginsub = %d, want 1", a.StackHeight())
	}

	// RETURNSUB with 1 return and a caller-supplied diff of -1.
	if err := a.AppendReturnsub(1, -1); err != nil {
		t.Fatalf("AppendReturnsub: %v", err)
	}
	if a.StackHeight() != -1 {
		t.Errorf("height after returnsub = %d, want -1", a.StackHeight())
	}
}

func TestSubroutineNegativeCounts(t *testing.T) {
	a := asm.New(asm.DialectSubroutine)
	l := a.NewLabel()

	assertKind(t, a.AppendBeginsub(l, -1), evmerrors.KindInvariant)
	assertKind(t, a.AppendJumpsub(l, -1, 0), evmerrors.KindInvariant)
	assertKind(t, a.AppendJumpsub(l, 0, -1), evmerrors.KindInvariant)
	assertKind(t, a.AppendReturnsub(-1, 0), evmerrors.KindInvariant)

	if a.Len() != 0 || a.StackHeight() != 0 {
		t.Errorf("rejected operations mutated state: len=%d height=%d", a.Len(), a.StackHeight())
	}
}

func TestJumpToUnknownLabel(t *testing.T) {
	a := asm.New(asm.DialectStack)
	assertKind(t, a.AppendJumpTo(asm.LabelID(42), 0), evmerrors.KindUnknownLabel)
	if a.Len() != 0 {
		t.Errorf("rejected jump mutated buffer: len=%d", a.Len())
	}

	s := asm.New(asm.DialectSubroutine)
	assertKind(t, s.AppendJumpTo(asm.LabelID(42), 0), evmerrors.KindUnknownLabel)
	if s.Len() != 0 {
		t.Errorf("rejected jump mutated buffer: len=%d", s.Len())
	}
}

func TestAppendJumpOutEncodesAsJump(t *testing.T) {
	a := asm.New(asm.DialectStack)
	l := a.NewLabel()

	if err := a.AppendLabelReference(l); err != nil {
		t.Fatalf("AppendLabelReference: %v", err)
	}
	if err := a.AppendJumpOut(-1); err != nil {
		t.Fatalf("AppendJumpOut: %v", err)
	}
	if err := a.AppendLabel(l); err != nil {
		t.Fatalf("AppendLabel: %v", err)
	}

	code := mustFinalize(t, a)
	want := []byte{
		byte(evm.PUSH4), 0x00, 0x00, 0x00, 0x06,
		byte(evm.JUMP),
		byte(evm.JUMPDEST),
	}
	if !bytes.Equal(code, want) {
		t.Errorf("bytecode = %x, want %x", code, want)
	}
}

func TestDialectString(t *testing.T) {
	if asm.DialectStack.String() != "stack" || asm.DialectSubroutine.String() != "subroutine" {
		t.Error("unexpected dialect names")
	}
}
