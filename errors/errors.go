package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the assembly lifecycle the error occurred
type Phase string

const (
	PhaseEmit     Phase = "emit"     // instruction and constant emission
	PhaseLabel    Phase = "label"    // label allocation and resolution
	PhaseFinalize Phase = "finalize" // backpatching and output assembly
	PhaseLink     Phase = "link"     // external linking surface
)

// Kind categorizes the error
type Kind string

const (
	KindInvariant       Kind = "invariant"        // broken caller contract or internal invariant
	KindUnimplemented   Kind = "unimplemented"    // capability accepted but deliberately unbuilt
	KindOverflow        Kind = "overflow"         // value too wide for its reserved field
	KindOutOfBounds     Kind = "out_of_bounds"    // patch position outside the bytecode buffer
	KindUnknownLabel    Kind = "unknown_label"    // label identifier was never allocated
	KindRedefinedLabel  Kind = "redefined_label"  // label resolved a second time
	KindUnresolvedLabel Kind = "unresolved_label" // label referenced but never defined
	KindWrongDialect    Kind = "wrong_dialect"    // instruction from the other control-flow dialect
	KindInvalidInput    Kind = "invalid_input"    // malformed value passed by the caller
)

// Error is the structured error type used throughout the assembler
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Label records the offending label identifier as the error value
func (b *Builder) Label(id uint32) *Builder {
	b.err.Value = id
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Invariant creates an internal-invariant-violation error
func Invariant(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvariant,
		Detail: detail,
	}
}

// Unimplemented creates an error for a capability that is part of the public
// contract but deliberately not built
func Unimplemented(what string) *Error {
	return &Error{
		Phase:  PhaseLink,
		Kind:   KindUnimplemented,
		Detail: fmt.Sprintf("%s not implemented", what),
	}
}

// Overflow creates an error for a value too wide for its reserved field
func Overflow(phase Phase, value any, width int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("value %v does not fit in %d bytes", value, width),
		Value:  value,
	}
}

// OutOfBounds creates an error for a patch position outside the buffer
func OutOfBounds(phase Phase, pos, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("position %d out of bounds (buffer length %d)", pos, length),
		Value:  pos,
	}
}

// UnknownLabel creates an error for a label identifier that was never allocated
func UnknownLabel(phase Phase, id uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownLabel,
		Detail: fmt.Sprintf("label %d not found", id),
		Value:  id,
	}
}

// RedefinedLabel creates an error for a label resolved a second time
func RedefinedLabel(id uint32, pos int) *Error {
	return &Error{
		Phase:  PhaseLabel,
		Kind:   KindRedefinedLabel,
		Detail: fmt.Sprintf("label %d already resolved at offset %d", id, pos),
		Value:  id,
	}
}

// UnresolvedLabel creates an error for a label referenced but never defined
func UnresolvedLabel(id uint32) *Error {
	return &Error{
		Phase:  PhaseFinalize,
		Kind:   KindUnresolvedLabel,
		Detail: fmt.Sprintf("label %d allocated but never defined", id),
		Value:  id,
	}
}

// WrongDialect creates an error for an instruction used outside its dialect
func WrongDialect(op, need string) *Error {
	return &Error{
		Phase:  PhaseEmit,
		Kind:   KindWrongDialect,
		Detail: fmt.Sprintf("%s requires the %s dialect", op, need),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
