package evm

import "fmt"

// Instruction is a single EVM opcode byte.
type Instruction byte

// MaxPushSize is the widest operand a push instruction can carry, in bytes.
const MaxPushSize = 32

// Info describes an instruction's mnemonic and stack effect.
type Info struct {
	Name string
	Args int // stack items consumed
	Rets int // stack items produced
}

// instructionInfo covers all opcodes outside the PUSH/DUP/SWAP/LOG ranges,
// which are computed from their position within the range instead.
var instructionInfo = map[Instruction]Info{
	STOP:       {Name: "STOP"},
	ADD:        {Name: "ADD", Args: 2, Rets: 1},
	MUL:        {Name: "MUL", Args: 2, Rets: 1},
	SUB:        {Name: "SUB", Args: 2, Rets: 1},
	DIV:        {Name: "DIV", Args: 2, Rets: 1},
	SDIV:       {Name: "SDIV", Args: 2, Rets: 1},
	MOD:        {Name: "MOD", Args: 2, Rets: 1},
	SMOD:       {Name: "SMOD", Args: 2, Rets: 1},
	ADDMOD:     {Name: "ADDMOD", Args: 3, Rets: 1},
	MULMOD:     {Name: "MULMOD", Args: 3, Rets: 1},
	EXP:        {Name: "EXP", Args: 2, Rets: 1},
	SIGNEXTEND: {Name: "SIGNEXTEND", Args: 2, Rets: 1},

	LT:     {Name: "LT", Args: 2, Rets: 1},
	GT:     {Name: "GT", Args: 2, Rets: 1},
	SLT:    {Name: "SLT", Args: 2, Rets: 1},
	SGT:    {Name: "SGT", Args: 2, Rets: 1},
	EQ:     {Name: "EQ", Args: 2, Rets: 1},
	ISZERO: {Name: "ISZERO", Args: 1, Rets: 1},
	AND:    {Name: "AND", Args: 2, Rets: 1},
	OR:     {Name: "OR", Args: 2, Rets: 1},
	XOR:    {Name: "XOR", Args: 2, Rets: 1},
	NOT:    {Name: "NOT", Args: 1, Rets: 1},
	BYTE:   {Name: "BYTE", Args: 2, Rets: 1},
	SHL:    {Name: "SHL", Args: 2, Rets: 1},
	SHR:    {Name: "SHR", Args: 2, Rets: 1},
	SAR:    {Name: "SAR", Args: 2, Rets: 1},

	KECCAK256: {Name: "KECCAK256", Args: 2, Rets: 1},

	ADDRESS:        {Name: "ADDRESS", Rets: 1},
	BALANCE:        {Name: "BALANCE", Args: 1, Rets: 1},
	ORIGIN:         {Name: "ORIGIN", Rets: 1},
	CALLER:         {Name: "CALLER", Rets: 1},
	CALLVALUE:      {Name: "CALLVALUE", Rets: 1},
	CALLDATALOAD:   {Name: "CALLDATALOAD", Args: 1, Rets: 1},
	CALLDATASIZE:   {Name: "CALLDATASIZE", Rets: 1},
	CALLDATACOPY:   {Name: "CALLDATACOPY", Args: 3},
	CODESIZE:       {Name: "CODESIZE", Rets: 1},
	CODECOPY:       {Name: "CODECOPY", Args: 3},
	GASPRICE:       {Name: "GASPRICE", Rets: 1},
	EXTCODESIZE:    {Name: "EXTCODESIZE", Args: 1, Rets: 1},
	EXTCODECOPY:    {Name: "EXTCODECOPY", Args: 4},
	RETURNDATASIZE: {Name: "RETURNDATASIZE", Rets: 1},
	RETURNDATACOPY: {Name: "RETURNDATACOPY", Args: 3},
	EXTCODEHASH:    {Name: "EXTCODEHASH", Args: 1, Rets: 1},

	BLOCKHASH:   {Name: "BLOCKHASH", Args: 1, Rets: 1},
	COINBASE:    {Name: "COINBASE", Rets: 1},
	TIMESTAMP:   {Name: "TIMESTAMP", Rets: 1},
	NUMBER:      {Name: "NUMBER", Rets: 1},
	DIFFICULTY:  {Name: "DIFFICULTY", Rets: 1},
	GASLIMIT:    {Name: "GASLIMIT", Rets: 1},
	CHAINID:     {Name: "CHAINID", Rets: 1},
	SELFBALANCE: {Name: "SELFBALANCE", Rets: 1},

	POP:      {Name: "POP", Args: 1},
	MLOAD:    {Name: "MLOAD", Args: 1, Rets: 1},
	MSTORE:   {Name: "MSTORE", Args: 2},
	MSTORE8:  {Name: "MSTORE8", Args: 2},
	SLOAD:    {Name: "SLOAD", Args: 1, Rets: 1},
	SSTORE:   {Name: "SSTORE", Args: 2},
	JUMP:     {Name: "JUMP", Args: 1},
	JUMPI:    {Name: "JUMPI", Args: 2},
	PC:       {Name: "PC", Rets: 1},
	MSIZE:    {Name: "MSIZE", Rets: 1},
	GAS:      {Name: "GAS", Rets: 1},
	JUMPDEST: {Name: "JUMPDEST"},

	JUMPTO:    {Name: "JUMPTO"},
	JUMPIF:    {Name: "JUMPIF", Args: 1},
	JUMPSUB:   {Name: "JUMPSUB"},
	BEGINSUB:  {Name: "BEGINSUB"},
	RETURNSUB: {Name: "RETURNSUB"},

	CREATE:       {Name: "CREATE", Args: 3, Rets: 1},
	CALL:         {Name: "CALL", Args: 7, Rets: 1},
	CALLCODE:     {Name: "CALLCODE", Args: 7, Rets: 1},
	RETURN:       {Name: "RETURN", Args: 2},
	DELEGATECALL: {Name: "DELEGATECALL", Args: 6, Rets: 1},
	CREATE2:      {Name: "CREATE2", Args: 4, Rets: 1},
	STATICCALL:   {Name: "STATICCALL", Args: 6, Rets: 1},
	REVERT:       {Name: "REVERT", Args: 2},
	INVALID:      {Name: "INVALID"},
	SELFDESTRUCT: {Name: "SELFDESTRUCT", Args: 1},
}

// InstructionInfo returns the metadata for op. Undefined opcodes yield a
// zero-value Info with an empty name.
func InstructionInfo(op Instruction) Info {
	switch {
	case op >= PUSH1 && op <= PUSH32:
		return Info{Name: fmt.Sprintf("PUSH%d", PushDataSize(op)), Rets: 1}
	case op >= DUP1 && op <= DUP16:
		n := int(op-DUP1) + 1
		return Info{Name: fmt.Sprintf("DUP%d", n), Args: n, Rets: n + 1}
	case op >= SWAP1 && op <= SWAP16:
		n := int(op-SWAP1) + 1
		return Info{Name: fmt.Sprintf("SWAP%d", n), Args: n + 1, Rets: n + 1}
	case op >= LOG0 && op <= LOG4:
		n := int(op - LOG0)
		return Info{Name: fmt.Sprintf("LOG%d", n), Args: n + 2}
	}
	return instructionInfo[op]
}

// PushInstruction returns the push opcode carrying an operand of the given
// byte width. Widths outside 1..MaxPushSize yield INVALID; callers are
// expected to validate the width first.
func PushInstruction(width int) Instruction {
	if width < 1 || width > MaxPushSize {
		return INVALID
	}
	return PUSH1 + Instruction(width-1)
}

// IsPush reports whether op is one of PUSH1..PUSH32.
func IsPush(op Instruction) bool {
	return op >= PUSH1 && op <= PUSH32
}

// PushDataSize returns the operand width in bytes for a push opcode,
// or zero for any other instruction.
func PushDataSize(op Instruction) int {
	if !IsPush(op) {
		return 0
	}
	return int(op-PUSH1) + 1
}

// Valid reports whether op is a defined instruction.
func Valid(op Instruction) bool {
	return InstructionInfo(op).Name != ""
}

// String returns the instruction mnemonic, or a hex rendering for
// undefined opcodes.
func (op Instruction) String() string {
	if info := InstructionInfo(op); info.Name != "" {
		return info.Name
	}
	return fmt.Sprintf("UNDEFINED(0x%02x)", byte(op))
}
