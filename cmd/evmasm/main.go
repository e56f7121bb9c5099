package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/evm-assembler/asm"
	"github.com/wippyai/evm-assembler/dis"
	"github.com/wippyai/evm-assembler/evm"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to a bytecode file (raw binary or hex text)")
		demo        = flag.Bool("demo", false, "Assemble and print a built-in sample program")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if !*demo && *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: evmasm -in <file.bin> [-i]")
		fmt.Fprintln(os.Stderr, "       evmasm -demo")
		os.Exit(1)
	}

	if err := run(*inFile, *demo, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile string, demo, interactive bool) error {
	var (
		code []byte
		name string
		err  error
	)
	if demo {
		code, err = assembleDemo()
		name = "demo"
	} else {
		code, err = readBytecode(inFile)
		name = inFile
	}
	if err != nil {
		return err
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return runInteractive(name, code)
	}

	fmt.Printf("%s: %d bytes\n", name, len(code))
	return dis.Disassemble(code, os.Stdout)
}

// readBytecode loads a bytecode file, accepting raw binary or hex text with
// an optional 0x prefix.
func readBytecode(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	text := strings.TrimPrefix(strings.TrimSpace(string(data)), "0x")
	if decoded, err := hex.DecodeString(text); err == nil {
		return decoded, nil
	}
	return data, nil
}

// assembleDemo emits a small stack-dialect program: compare two constants
// and jump over a revert when they match.
func assembleDemo() ([]byte, error) {
	a := asm.New(asm.DialectStack)

	ok, err := a.NamedLabel("ok")
	if err != nil {
		return nil, err
	}

	if err := a.AppendConstant(big.NewInt(0x1234)); err != nil {
		return nil, err
	}
	if err := a.AppendConstant(big.NewInt(0x1234)); err != nil {
		return nil, err
	}
	a.AppendInstruction(evm.EQ)
	if err := a.AppendJumpToIf(ok); err != nil {
		return nil, err
	}
	if err := a.AppendConstant(big.NewInt(0)); err != nil {
		return nil, err
	}
	if err := a.AppendConstant(big.NewInt(0)); err != nil {
		return nil, err
	}
	a.AppendInstruction(evm.REVERT)
	if err := a.AppendLabel(ok); err != nil {
		return nil, err
	}
	a.AppendAssemblySize()
	a.AppendInstruction(evm.POP)
	a.AppendInstruction(evm.STOP)

	obj, err := a.Finalize()
	if err != nil {
		return nil, err
	}
	return obj.Bytecode, nil
}
