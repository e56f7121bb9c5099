package asm

import (
	"go.uber.org/zap"

	"github.com/wippyai/evm-assembler/errors"
)

// Object is the finished output of an assembly: the final bytecode image
// plus any placeholders left for an external linker. External linking is not
// implemented, so Unresolved is always empty.
type Object struct {
	Bytecode   []byte
	Unresolved []LinkReference
}

// LinkReference records a reserved field to be filled by an external linker.
type LinkReference struct {
	Symbol string
	Pos    int
	Width  int
}

// Finalize freezes the layout and backpatches every reserved placeholder:
// first the assembly-size fields with the total bytecode length, then each
// label reference with its label's resolved position, big-endian at the
// reserved width. A label that was referenced but never defined is a
// caller-contract violation. Call once, after all emission.
func (a *Assembly) Finalize() (*Object, error) {
	size := a.w.Len()
	if uint64(size)>>(8*sizeReferenceWidth) != 0 {
		return nil, errors.Overflow(errors.PhaseFinalize, size, sizeReferenceWidth)
	}
	for _, pos := range a.sizeRefs {
		if err := a.w.PatchUintBE(pos, sizeReferenceWidth, uint64(size)); err != nil {
			return nil, errors.Wrap(errors.PhaseFinalize, errors.KindInvariant, err, "patch assembly size")
		}
	}

	for _, ref := range a.refs {
		if int(ref.label) >= len(a.labelPositions) {
			return nil, errors.UnknownLabel(errors.PhaseFinalize, uint32(ref.label))
		}
		pos := a.labelPositions[ref.label]
		if pos == unresolved {
			return nil, errors.UnresolvedLabel(uint32(ref.label))
		}
		if err := a.w.PatchUintBE(ref.pos, labelReferenceWidth, uint64(pos)); err != nil {
			return nil, errors.Wrap(errors.PhaseFinalize, errors.KindInvariant, err, "patch label reference")
		}
	}

	Logger().Debug("assembly finalized",
		zap.Int("bytes", size),
		zap.Int("labels", len(a.labelPositions)),
		zap.Int("references", len(a.refs)),
		zap.Int("size_references", len(a.sizeRefs)))

	return &Object{Bytecode: a.w.Bytes()}, nil
}
