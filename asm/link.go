package asm

import (
	"github.com/wippyai/evm-assembler/errors"
)

// SubID identifies a sub-assembly within its parent.
type SubID uint32

// The external linking surface below is part of the public contract so call
// sites compile against a stable capability set, but none of it is built:
// every call fails immediately with an unimplemented error, which callers
// treat as fatal.

// CreateSubAssembly creates a nested assembly whose bytecode is embedded in
// the parent's data. Not implemented.
func (a *Assembly) CreateSubAssembly() (*Assembly, SubID, error) {
	return nil, 0, errors.Unimplemented("sub-assemblies")
}

// AppendData embeds raw bytes in the data section. Not implemented.
func (a *Assembly) AppendData(data []byte) (SubID, error) {
	return 0, errors.Unimplemented("data sections")
}

// AppendDataOffset pushes the offset of a data item or sub-assembly.
// Not implemented.
func (a *Assembly) AppendDataOffset(sub SubID) error {
	return errors.Unimplemented("data sections")
}

// AppendDataSize pushes the size of a data item or sub-assembly.
// Not implemented.
func (a *Assembly) AppendDataSize(sub SubID) error {
	return errors.Unimplemented("data sections")
}

// AppendLinkerSymbol reserves a field to be filled with an externally linked
// address. Not implemented.
func (a *Assembly) AppendLinkerSymbol(name string) error {
	return errors.Unimplemented("linker symbols")
}
