package dis

import (
	"fmt"
	"io"
	"strings"

	"github.com/wippyai/evm-assembler/evm"
)

// Disassemble writes an assembly-style listing of code to w.
func Disassemble(code []byte, w io.Writer) error {
	for pc := 0; pc < len(code); {
		op := evm.Instruction(code[pc])
		line := fmt.Sprintf("0x%04x %s", pc, op)
		pc++

		if n := evm.PushDataSize(op); n > 0 {
			end := pc + n
			truncated := false
			if end > len(code) {
				end = len(code)
				truncated = true
			}
			if end > pc {
				line += fmt.Sprintf(" 0x%x", code[pc:end])
			}
			if truncated {
				line += " (truncated)"
			}
			pc = end
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// String returns the listing for code as a string.
func String(code []byte) string {
	var b strings.Builder
	Disassemble(code, &b)
	return b.String()
}
