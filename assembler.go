package evmassembler

import (
	"math/big"

	"github.com/wippyai/evm-assembler/asm"
	"github.com/wippyai/evm-assembler/evm"
)

// Assembler is the capability surface a code generator drives to emit one
// bytecode image. It covers the full contract, including the external
// linking operations that currently fail as unimplemented, so call sites
// compile against a stable interface regardless of which capabilities are
// built.
type Assembler interface {
	// SetLocation annotates subsequent emission with a source position.
	SetLocation(loc asm.Location)

	// AppendInstruction emits a single opcode.
	AppendInstruction(op evm.Instruction)

	// AppendConstant emits a minimal-width push of a non-negative value.
	AppendConstant(v *big.Int) error

	// NewLabel allocates a fresh, unresolved label.
	NewLabel() asm.LabelID

	// NamedLabel returns the label for name, allocating on first use.
	NamedLabel(name string) (asm.LabelID, error)

	// AppendLabel resolves a label at the current position and emits the
	// jump destination marker.
	AppendLabel(id asm.LabelID) error

	// AppendLabelReference pushes a label's eventual position on the stack.
	AppendLabelReference(id asm.LabelID) error

	// AppendJump emits an unconditional jump to a target already on the
	// stack.
	AppendJump(stackDiffAfter int) error

	// AppendJumpOut emits the jump leaving the current function body.
	AppendJumpOut(stackDiffAfter int) error

	// AppendJumpTo emits an unconditional jump to a label.
	AppendJumpTo(id asm.LabelID, stackDiffAfter int) error

	// AppendJumpToIf emits a conditional jump to a label.
	AppendJumpToIf(id asm.LabelID) error

	// AppendBeginsub marks a subroutine entry point.
	AppendBeginsub(id asm.LabelID, arguments int) error

	// AppendJumpsub emits a subroutine call.
	AppendJumpsub(id asm.LabelID, arguments, returns int) error

	// AppendReturnsub emits a return from the current subroutine.
	AppendReturnsub(returns, stackDiffAfter int) error

	// AppendAssemblySize emits a push patched with the final bytecode
	// length at finalize time.
	AppendAssemblySize()

	// CreateSubAssembly creates a nested assembly. Unimplemented.
	CreateSubAssembly() (*asm.Assembly, asm.SubID, error)

	// AppendData embeds raw bytes in the data section. Unimplemented.
	AppendData(data []byte) (asm.SubID, error)

	// AppendDataOffset pushes a data item's offset. Unimplemented.
	AppendDataOffset(sub asm.SubID) error

	// AppendDataSize pushes a data item's size. Unimplemented.
	AppendDataSize(sub asm.SubID) error

	// AppendLinkerSymbol reserves an externally linked field. Unimplemented.
	AppendLinkerSymbol(name string) error

	// StackHeight reports the tracked operand-stack depth.
	StackHeight() int

	// Finalize backpatches all placeholders and returns the finished
	// object.
	Finalize() (*asm.Object, error)
}

var _ Assembler = (*asm.Assembly)(nil)
