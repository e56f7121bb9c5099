// Package evm provides the EVM instruction set metadata consumed by the
// assembler.
//
// It defines the opcode constants for the legacy instruction set and the
// structured-subroutine (EVM1.5) extensions, and exposes per-opcode metadata
// through InstructionInfo:
//
//	info := evm.InstructionInfo(evm.ADD)
//	delta := info.Rets - info.Args // net stack effect
//
// Push opcodes are looked up by operand width:
//
//	op := evm.PushInstruction(2) // PUSH2
//
// The package carries no assembler state; it is a pure lookup service.
package evm
