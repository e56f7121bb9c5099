// Package asm implements a single-pass EVM bytecode assembler with two-phase
// relocation.
//
// A code generator drives the assembler through a linear sequence of append
// calls, interleaving instruction emission with label definition. Forward
// references (jumps to labels that are not yet defined, or the total size of
// the assembly itself) are written as fixed-width zero placeholders and
// recorded in a relocation table; Finalize backpatches every placeholder once
// layout is frozen and returns the finished Object.
//
// Two mutually exclusive control-flow dialects share the label machinery:
//
//   - DialectStack: legacy EVM control flow. Jump targets are pushed on the
//     operand stack (PUSH4 <label>) ahead of a JUMP or JUMPI opcode.
//   - DialectSubroutine: structured EVM1.5 control flow. JUMPTO, JUMPIF,
//     JUMPSUB carry their target as an inline 4-byte operand, and
//     BEGINSUB/RETURNSUB delimit subroutines.
//
// The dialect is fixed at construction; using an instruction from the other
// dialect fails with a wrong_dialect error and leaves the assembler
// unchanged.
//
// Typical use:
//
//	a := asm.New(asm.DialectStack)
//	end := a.NewLabel()
//	a.AppendConstant(big.NewInt(1))
//	a.AppendJumpTo(end, 0)
//	a.AppendInstruction(evm.STOP)
//	a.AppendLabel(end)
//	obj, err := a.Finalize()
//
// Every error the package returns reports a broken caller contract (see the
// errors package); callers are expected to treat them as fatal.
package asm
