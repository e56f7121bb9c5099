package asm_test

import (
	"bytes"
	stderrors "errors"
	"math/big"
	"testing"

	"github.com/wippyai/evm-assembler/asm"
	evmerrors "github.com/wippyai/evm-assembler/errors"
	"github.com/wippyai/evm-assembler/evm"
)

func assertKind(t *testing.T, err error, kind evmerrors.Kind) {
	t.Helper()
	var e *evmerrors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected *errors.Error with kind %s, got %v", kind, err)
	}
	if e.Kind != kind {
		t.Fatalf("expected kind %s, got %s (%v)", kind, e.Kind, err)
	}
}

func mustFinalize(t *testing.T, a *asm.Assembly) []byte {
	t.Helper()
	obj, err := a.Finalize()
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return obj.Bytecode
}

func TestAppendInstruction(t *testing.T) {
	a := asm.New(asm.DialectStack)
	a.AppendInstruction(evm.CALLER)
	a.AppendInstruction(evm.STOP)

	code := mustFinalize(t, a)
	want := []byte{byte(evm.CALLER), byte(evm.STOP)}
	if !bytes.Equal(code, want) {
		t.Errorf("bytecode = %x, want %x", code, want)
	}
}

func TestAppendConstant(t *testing.T) {
	tests := []struct {
		name string
		v    *big.Int
		want []byte
	}{
		{"zero is one zero byte", big.NewInt(0), []byte{byte(evm.PUSH1), 0x00}},
		{"single byte", big.NewInt(0x7f), []byte{byte(evm.PUSH1), 0x7f}},
		{"256 is two bytes", big.NewInt(256), []byte{byte(evm.PUSH2), 0x01, 0x00}},
		{"0x1234", big.NewInt(0x1234), []byte{byte(evm.PUSH2), 0x12, 0x34}},
		{
			"32 bytes uses PUSH32",
			new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)),
			append([]byte{byte(evm.PUSH32)}, bytes.Repeat([]byte{0xff}, 32)...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := asm.New(asm.DialectStack)
			if err := a.AppendConstant(tt.v); err != nil {
				t.Fatalf("AppendConstant: %v", err)
			}
			code := mustFinalize(t, a)
			if !bytes.Equal(code, tt.want) {
				t.Errorf("bytecode = %x, want %x", code, tt.want)
			}
		})
	}
}

func TestAppendConstantInvalid(t *testing.T) {
	a := asm.New(asm.DialectStack)

	err := a.AppendConstant(big.NewInt(-1))
	assertKind(t, err, evmerrors.KindInvalidInput)

	err = a.AppendConstant(new(big.Int).Lsh(big.NewInt(1), 256))
	assertKind(t, err, evmerrors.KindOverflow)

	if a.Len() != 0 {
		t.Errorf("failed constant emitted %d bytes", a.Len())
	}
	if a.StackHeight() != 0 {
		t.Errorf("failed constant changed stack height to %d", a.StackHeight())
	}
}

func TestStackHeight(t *testing.T) {
	a := asm.New(asm.DialectStack)

	if a.StackHeight() != 0 {
		t.Fatalf("initial height = %d", a.StackHeight())
	}

	a.AppendConstant(big.NewInt(1))
	a.AppendConstant(big.NewInt(2))
	if a.StackHeight() != 2 {
		t.Errorf("height after two constants = %d, want 2", a.StackHeight())
	}

	a.AppendInstruction(evm.ADD)
	if a.StackHeight() != 1 {
		t.Errorf("height after ADD = %d, want 1", a.StackHeight())
	}

	a.AppendInstruction(evm.POP)
	if a.StackHeight() != 0 {
		t.Errorf("height after POP = %d, want 0", a.StackHeight())
	}
}

func TestStackHeightConditionalJump(t *testing.T) {
	a := asm.New(asm.DialectStack)
	l := a.NewLabel()

	a.AppendConstant(big.NewInt(1)) // condition
	if err := a.AppendJumpToIf(l); err != nil {
		t.Fatalf("AppendJumpToIf: %v", err)
	}
	// The reference push and JUMPI cancel to a net effect of consuming
	// the condition.
	if a.StackHeight() != 0 {
		t.Errorf("height after conditional jump = %d, want 0", a.StackHeight())
	}
}

func TestStackHeightJumpDiff(t *testing.T) {
	a := asm.New(asm.DialectStack)
	l := a.NewLabel()

	a.AppendConstant(big.NewInt(7))
	if err := a.AppendJumpTo(l, -1); err != nil {
		t.Fatalf("AppendJumpTo: %v", err)
	}
	if a.StackHeight() != 0 {
		t.Errorf("height = %d, want 0", a.StackHeight())
	}
}

func TestNamedLabel(t *testing.T) {
	a := asm.New(asm.DialectStack)

	first, err := a.NamedLabel("loop")
	if err != nil {
		t.Fatalf("NamedLabel: %v", err)
	}
	again, err := a.NamedLabel("loop")
	if err != nil {
		t.Fatalf("NamedLabel: %v", err)
	}
	if first != again {
		t.Errorf("same name yielded different labels: %d, %d", first, again)
	}

	other, err := a.NamedLabel("exit")
	if err != nil {
		t.Fatalf("NamedLabel: %v", err)
	}
	if other == first {
		t.Error("distinct names yielded the same label")
	}

	_, err = a.NamedLabel("")
	assertKind(t, err, evmerrors.KindInvalidInput)
}

func TestAppendAssemblySize(t *testing.T) {
	a := asm.New(asm.DialectStack)
	a.AppendAssemblySize()
	a.AppendInstruction(evm.STOP)

	code := mustFinalize(t, a)
	want := []byte{byte(evm.PUSH4), 0x00, 0x00, 0x00, 0x06, byte(evm.STOP)}
	if !bytes.Equal(code, want) {
		t.Errorf("bytecode = %x, want %x", code, want)
	}
}

func TestAppendAssemblySizeMultipleReferences(t *testing.T) {
	a := asm.New(asm.DialectStack)
	a.AppendAssemblySize()
	a.AppendAssemblySize()
	// Code appended after the placeholders still counts toward the size.
	a.AppendInstruction(evm.STOP)

	code := mustFinalize(t, a)
	if len(code) != 11 {
		t.Fatalf("len = %d, want 11", len(code))
	}
	want := []byte{0x00, 0x00, 0x00, 0x0b}
	if !bytes.Equal(code[1:5], want) || !bytes.Equal(code[6:10], want) {
		t.Errorf("size fields = %x / %x, want %x", code[1:5], code[6:10], want)
	}
}

func TestEndToEndJumpBackpatch(t *testing.T) {
	a := asm.New(asm.DialectStack)
	l := a.NewLabel()

	if err := a.AppendJumpTo(l, 0); err != nil {
		t.Fatalf("AppendJumpTo: %v", err)
	}
	// Three unrelated single-byte instructions before the target.
	a.AppendInstruction(evm.CALLER)
	a.AppendInstruction(evm.POP)
	a.AppendInstruction(evm.PC)
	if err := a.AppendLabel(l); err != nil {
		t.Fatalf("AppendLabel: %v", err)
	}

	code := mustFinalize(t, a)
	want := []byte{
		byte(evm.PUSH4), 0x00, 0x00, 0x00, 0x09,
		byte(evm.JUMP),
		byte(evm.CALLER), byte(evm.POP), byte(evm.PC),
		byte(evm.JUMPDEST),
	}
	if !bytes.Equal(code, want) {
		t.Errorf("bytecode = %x, want %x", code, want)
	}
}

func TestSetLocationIsNoOp(t *testing.T) {
	a := asm.New(asm.DialectStack)
	a.SetLocation(asm.Location{Source: "input.yul", Line: 3, Col: 14})
	a.AppendInstruction(evm.STOP)

	code := mustFinalize(t, a)
	if len(code) != 1 {
		t.Errorf("location annotation affected output: %x", code)
	}
}

func TestDialectAccessor(t *testing.T) {
	if d := asm.New(asm.DialectStack).Dialect(); d != asm.DialectStack {
		t.Errorf("Dialect() = %v", d)
	}
	if d := asm.New(asm.DialectSubroutine).Dialect(); d != asm.DialectSubroutine {
		t.Errorf("Dialect() = %v", d)
	}
}
