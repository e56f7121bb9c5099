// Package dis renders finalized EVM bytecode as a readable assembly-style
// listing, one instruction per line:
//
//	0x0000 PUSH2 0x1234
//	0x0003 JUMPDEST
//	0x0004 STOP
//
// The disassembler tolerates arbitrary images: undefined opcodes and push
// operands cut off by the end of the code are annotated rather than
// rejected.
package dis
