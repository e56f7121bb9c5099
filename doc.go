// Package evmassembler provides a single-pass EVM bytecode assembler with
// two-phase relocation of forward references.
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	evmassembler/        Root package with the Assembler capability interface
//	├── asm/             The assembler core: emission, labels, relocation, finalize
//	├── evm/             EVM instruction set metadata (opcodes, stack effects)
//	├── dis/             Textual disassembly of finalized bytecode
//	└── errors/          Structured error types for contract violations
//
// # Quick Start
//
// Emit a forward jump and let Finalize backpatch it:
//
//	a := asm.New(asm.DialectStack)
//	end := a.NewLabel()
//	a.AppendConstant(big.NewInt(1))
//	a.AppendJumpToIf(end)
//	a.AppendInstruction(evm.INVALID)
//	a.AppendLabel(end)
//	a.AppendInstruction(evm.STOP)
//
//	obj, err := a.Finalize()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(dis.String(obj.Bytecode))
//
// The asm.Dialect chosen at construction selects between legacy stack-based
// control flow and the structured subroutine instruction family; see the asm
// package documentation for details.
package evmassembler
