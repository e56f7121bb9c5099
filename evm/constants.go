package evm

// Stop and arithmetic operations.
const (
	STOP       Instruction = 0x00
	ADD        Instruction = 0x01
	MUL        Instruction = 0x02
	SUB        Instruction = 0x03
	DIV        Instruction = 0x04
	SDIV       Instruction = 0x05
	MOD        Instruction = 0x06
	SMOD       Instruction = 0x07
	ADDMOD     Instruction = 0x08
	MULMOD     Instruction = 0x09
	EXP        Instruction = 0x0a
	SIGNEXTEND Instruction = 0x0b
)

// Comparison and bitwise logic operations.
const (
	LT     Instruction = 0x10
	GT     Instruction = 0x11
	SLT    Instruction = 0x12
	SGT    Instruction = 0x13
	EQ     Instruction = 0x14
	ISZERO Instruction = 0x15
	AND    Instruction = 0x16
	OR     Instruction = 0x17
	XOR    Instruction = 0x18
	NOT    Instruction = 0x19
	BYTE   Instruction = 0x1a
	SHL    Instruction = 0x1b
	SHR    Instruction = 0x1c
	SAR    Instruction = 0x1d
)

// KECCAK256 computes the Keccak-256 hash of a memory range.
const KECCAK256 Instruction = 0x20

// Environmental information.
const (
	ADDRESS        Instruction = 0x30
	BALANCE        Instruction = 0x31
	ORIGIN         Instruction = 0x32
	CALLER         Instruction = 0x33
	CALLVALUE      Instruction = 0x34
	CALLDATALOAD   Instruction = 0x35
	CALLDATASIZE   Instruction = 0x36
	CALLDATACOPY   Instruction = 0x37
	CODESIZE       Instruction = 0x38
	CODECOPY       Instruction = 0x39
	GASPRICE       Instruction = 0x3a
	EXTCODESIZE    Instruction = 0x3b
	EXTCODECOPY    Instruction = 0x3c
	RETURNDATASIZE Instruction = 0x3d
	RETURNDATACOPY Instruction = 0x3e
	EXTCODEHASH    Instruction = 0x3f
)

// Block information.
const (
	BLOCKHASH   Instruction = 0x40
	COINBASE    Instruction = 0x41
	TIMESTAMP   Instruction = 0x42
	NUMBER      Instruction = 0x43
	DIFFICULTY  Instruction = 0x44
	GASLIMIT    Instruction = 0x45
	CHAINID     Instruction = 0x46
	SELFBALANCE Instruction = 0x47
)

// Stack, memory, storage and flow operations.
const (
	POP      Instruction = 0x50
	MLOAD    Instruction = 0x51
	MSTORE   Instruction = 0x52
	MSTORE8  Instruction = 0x53
	SLOAD    Instruction = 0x54
	SSTORE   Instruction = 0x55
	JUMP     Instruction = 0x56
	JUMPI    Instruction = 0x57
	PC       Instruction = 0x58
	MSIZE    Instruction = 0x59
	GAS      Instruction = 0x5a
	JUMPDEST Instruction = 0x5b
)

// Push operations place a 1..32 byte immediate operand on the stack.
// PUSH1 through PUSH32 occupy a contiguous opcode range; use
// PushInstruction to select one by operand width.
const (
	PUSH1  Instruction = 0x60
	PUSH2  Instruction = 0x61
	PUSH3  Instruction = 0x62
	PUSH4  Instruction = 0x63
	PUSH5  Instruction = 0x64
	PUSH6  Instruction = 0x65
	PUSH7  Instruction = 0x66
	PUSH8  Instruction = 0x67
	PUSH9  Instruction = 0x68
	PUSH10 Instruction = 0x69
	PUSH11 Instruction = 0x6a
	PUSH12 Instruction = 0x6b
	PUSH13 Instruction = 0x6c
	PUSH14 Instruction = 0x6d
	PUSH15 Instruction = 0x6e
	PUSH16 Instruction = 0x6f
	PUSH17 Instruction = 0x70
	PUSH18 Instruction = 0x71
	PUSH19 Instruction = 0x72
	PUSH20 Instruction = 0x73
	PUSH21 Instruction = 0x74
	PUSH22 Instruction = 0x75
	PUSH23 Instruction = 0x76
	PUSH24 Instruction = 0x77
	PUSH25 Instruction = 0x78
	PUSH26 Instruction = 0x79
	PUSH27 Instruction = 0x7a
	PUSH28 Instruction = 0x7b
	PUSH29 Instruction = 0x7c
	PUSH30 Instruction = 0x7d
	PUSH31 Instruction = 0x7e
	PUSH32 Instruction = 0x7f
)

// Duplication and exchange operations. DUP1..DUP16 and SWAP1..SWAP16
// occupy contiguous opcode ranges.
const (
	DUP1   Instruction = 0x80
	DUP16  Instruction = 0x8f
	SWAP1  Instruction = 0x90
	SWAP16 Instruction = 0x9f
)

// Logging operations. LOG0..LOG4 occupy a contiguous opcode range.
const (
	LOG0 Instruction = 0xa0
	LOG4 Instruction = 0xa4
)

// Structured-subroutine (EVM1.5) control-flow extensions. Jump targets are
// encoded as fixed-width operands directly after the opcode byte.
const (
	JUMPTO    Instruction = 0xb0 // unconditional jump to inline label operand
	JUMPIF    Instruction = 0xb1 // conditional jump to inline label operand
	JUMPSUB   Instruction = 0xb3 // call subroutine at inline label operand
	BEGINSUB  Instruction = 0xb5 // marks a subroutine entry point
	RETURNSUB Instruction = 0xb7 // return from the current subroutine
)

// System operations.
const (
	CREATE       Instruction = 0xf0
	CALL         Instruction = 0xf1
	CALLCODE     Instruction = 0xf2
	RETURN       Instruction = 0xf3
	DELEGATECALL Instruction = 0xf4
	CREATE2      Instruction = 0xf5
	STATICCALL   Instruction = 0xfa
	REVERT       Instruction = 0xfd
	INVALID      Instruction = 0xfe
	SELFDESTRUCT Instruction = 0xff
)
