package cpu

import (
	"errors"

	"github.com/ezrec/u6502/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrNoOperand = errors.New(f("addressing mode has no operand address"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrOrgSyntax       = errors.New(f(".org syntax"))
	ErrByteSyntax      = errors.New(f(".byte syntax"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrMnemonicInvalid = errors.New(f("mnemonic invalid"))
	ErrModeInvalid     = errors.New(f("addressing mode not available"))
	ErrOperandSyntax   = errors.New(f("operand syntax"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandRange    = errors.New(f("operand out of range"))
)

// ErrOpcode reports an opcode byte with no registered instruction.
type ErrOpcode uint8

func (eo ErrOpcode) Error() string {
	return f("unimplemented opcode 0x%02x", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
