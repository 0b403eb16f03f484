package core

import (
	"errors"
	"fmt"
)

// Translation errors. Every one of them aborts the translation.
var (
	ErrUnmatchedThen         = errors.New("then without a matching if")
	ErrUnmatchedElse         = errors.New("else without a matching if")
	ErrUnclosedConditional   = errors.New("conditional is never closed")
	ErrUnmatchedLoopClose    = errors.New("loop close without a matching opener")
	ErrUnclosedLoop          = errors.New("loop is never closed")
	ErrMissingFunctionName   = errors.New("function name is missing")
	ErrInvalidFunctionName   = errors.New("function name is a reserved word")
	ErrDuplicateFunction     = errors.New("function is already defined")
	ErrUnclosedFunction      = errors.New("function is not closed")
	ErrReturnOutsideFunction = errors.New("return outside of a function")
	ErrMissingVariableName   = errors.New("variable name is missing")
	ErrInvalidVariableName   = errors.New("invalid variable name")
	ErrDuplicateVariable     = errors.New("variable is already declared")
	ErrInvalidArraySize      = errors.New("invalid array size")
	ErrInvalidLiteral        = errors.New("unknown word")
	ErrLint                  = errors.New("emitted program failed verification")
)

// CompileError tells which term broke a rule.
type CompileError struct {
	Err  error
	Pos  int
	Word string
}

func newError(err error, t *Term) *CompileError {
	return &CompileError{Err: err, Pos: t.Pos, Word: t.Text}
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("term %d (%s): %v", e.Pos, e.Word, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
