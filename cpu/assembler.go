// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Default load address for assembled programs, above page zero and the
// stack page.
const DEFAULT_ORIGIN = uint16(0x0200)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

func init() {
	maps.Copy(sysEquate, _cpu_defines)
}

// mnemonicMap maps source mnemonics to operations.
var mnemonicMap = map[string]Mnemonic{}

func init() {
	for op := OP_NOP; op <= OP_SEI; op++ {
		mnemonicMap[op.String()] = op
	}
}

// Assembler is a single pass assembler for the 6502 instruction subset.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]uint16 // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	origin uint16 // Next assembly address.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word. '$' prefixed words are
// hexadecimal; 0x/0o/0b and decimal words follow Go literal syntax.
// Negative values take their 16-bit two's complement.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	if strings.HasPrefix(word, "$") {
		word = "0x" + word[1:]
	}

	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 0xffff || v64 < -0x8000 {
		err = ErrOperandRange
		return
	}

	value = uint16(v64)
	return
}

// identifierRe matches label and equate names.
var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// symbolValue resolves an operand word through equates and labels before
// falling back to numeric parsing.
func (asm *Assembler) symbolValue(word string) (value uint16, err error) {
	equate, ok := asm.Equate[word]
	if ok {
		word = equate
	}

	address, ok := asm.Label[word]
	if ok {
		value = address
		return
	}

	return asm.valueOf(word)
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value16 uint16
		value16, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(value16))
	}
	for key, address := range asm.Label {
		pred[key] = starlark.MakeInt(int(address))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

// parseLine expands expressions and equates in a single line, consumes
// .equ directives and labels, and returns the remaining words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.origin
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// encode generates the bytes for a mnemonic and its operand text. A forward
// label reference assembles as an absolute form with a placeholder address
// and is patched in the final link pass.
func (asm *Assembler) encode(op Mnemonic, operand string) (bytes []uint8, label string, err error) {
	emit := func(mode AddressingMode, args ...uint8) {
		opcode, ok := opcodeFor(op, mode)
		if !ok {
			err = ErrModeInvalid
			return
		}
		bytes = append([]uint8{opcode}, args...)
	}

	// byteValue resolves an operand word that must fit in a single byte.
	byteValue := func(word string) (value uint8) {
		var v uint16
		v, err = asm.symbolValue(word)
		if err != nil {
			return
		}
		if v > 0xff && v < 0xff80 {
			err = ErrOperandRange
			return
		}
		return uint8(v)
	}

	// addressed selects between the zero-page and absolute form of an
	// operand address.
	addressed := func(word string, zpMode, absMode AddressingMode) {
		_, isEquate := asm.Equate[word]
		_, isLabel := asm.Label[word]
		if identifierRe.MatchString(word) && !isEquate && !isLabel {
			// forward reference: link as absolute
			label = word
			emit(absMode, 0, 0)
			return
		}

		var v uint16
		v, err = asm.symbolValue(word)
		if err != nil {
			return
		}

		if _, ok := opcodeFor(op, zpMode); ok && v <= 0xff {
			emit(zpMode, uint8(v))
			return
		}
		emit(absMode, uint8(v&0xff), uint8(v>>8))
	}

	// Syntax matching is case insensitive; symbol names keep their case.
	lower := strings.ToLower(operand)

	switch {
	case len(operand) == 0:
		// single-byte encodings; shifts on the accumulator may omit the 'a'
		if _, ok := opcodeFor(op, MODE_IMPLIED); ok {
			emit(MODE_IMPLIED)
		} else if _, ok := opcodeFor(op, MODE_ACCUMULATOR); ok {
			emit(MODE_ACCUMULATOR)
		} else {
			err = ErrOperandMissing
		}
	case lower == "a":
		emit(MODE_ACCUMULATOR)
	case strings.HasPrefix(operand, "#"):
		emit(MODE_IMMEDIATE, byteValue(operand[1:]))
	case strings.HasPrefix(operand, "(") && strings.HasSuffix(lower, ",x)"):
		emit(MODE_INDEXED_INDIRECT, byteValue(operand[1:len(operand)-3]))
	case strings.HasPrefix(operand, "(") && strings.HasSuffix(lower, "),y"):
		emit(MODE_INDIRECT_INDEXED, byteValue(operand[1:len(operand)-3]))
	case strings.HasPrefix(operand, "("):
		err = ErrOperandSyntax
	case strings.HasSuffix(lower, ",x"):
		addressed(operand[:len(operand)-2], MODE_ZERO_PAGE_X, MODE_ABSOLUTE_X)
	case strings.HasSuffix(lower, ",y"):
		addressed(operand[:len(operand)-2], MODE_ZERO_PAGE_Y, MODE_ABSOLUTE_Y)
	default:
		addressed(operand, MODE_ZERO_PAGE, MODE_ABSOLUTE)
	}

	if err != nil {
		bytes = nil
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var bytes []uint8
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(bytes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Addr: asm.origin, Words: initial_words, Bytes: bytes, LinkLabel: label}
		asm.Opcode = append(asm.Opcode, opcode)
		asm.origin += uint16(len(bytes))
	}()

	switch words[0] {
	case ".org":
		if len(words) != 2 {
			err = ErrOrgSyntax
			return
		}
		var value uint16
		value, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		asm.origin = value
		return
	case ".byte":
		if len(words) < 2 {
			err = ErrByteSyntax
			return
		}
		for _, word := range words[1:] {
			var value uint16
			value, err = asm.symbolValue(word)
			if err != nil {
				return
			}
			if value > 0xff {
				err = ErrOperandRange
				return
			}
			bytes = append(bytes, uint8(value))
		}
		return
	}

	op, ok := mnemonicMap[strings.ToLower(words[0])]
	if !ok {
		err = ErrMnemonicInvalid
		return
	}

	operand := strings.Join(words[1:], "")

	bytes, label, err = asm.encode(op, operand)
	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if asm.Label == nil {
		asm.Label = make(map[string]uint16, 16)
	}
	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.origin = DEFAULT_ORIGIN
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	// Final linking of forward label references.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		address, ok := asm.Label[op.LinkLabel]
		if !ok {
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		if len(op.Bytes) != 3 {
			log.Fatalf("Unable to link label '%s' to line %d: %v", op.LinkLabel, op.LineNo, op.Words)
		}
		op.Bytes[1] = uint8(address & 0xff)
		op.Bytes[2] = uint8(address >> 8)
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}
