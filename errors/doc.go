// Package errors provides structured error types for the evm-assembler library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Nearly every error this library produces reports a broken caller
// contract: the code generator driving the assembler referenced an unknown
// label, redefined a resolved one, used an instruction from the wrong dialect,
// and so on. By convention such errors are not recoverable: the violation
// indicates a bug in the generator or in the assembler itself, not bad
// external input, so the caller is expected to abort.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLabel, errors.KindRedefinedLabel).
//		Label(7).
//		Detail("label already resolved at offset 42").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownLabel(errors.PhaseLabel, id)
//	err := errors.WrongDialect("JUMPSUB", "subroutine")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
