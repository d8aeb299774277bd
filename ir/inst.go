// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

// Inst is a single instruction in the arena.
//
// Instructions are mutated in place by passes (operand and opcode
// replacement) and removed only logically: an invalidated instruction keeps
// its arena slot so operand references elsewhere stay stable, but must not
// be dereferenced afterwards.
type Inst struct {
	op      Opcode
	args    []Value
	flags   uint32
	invalid bool
}

// Opcode returns the instruction opcode.
func (i *Inst) Opcode() Opcode {
	return i.op
}

// SetOpcode replaces the instruction opcode in place.
func (i *Inst) SetOpcode(op Opcode) {
	i.op = op
}

// NumArgs returns the operand count.
func (i *Inst) NumArgs() int {
	return len(i.args)
}

// Arg returns the n-th operand. Reading past the operand list yields an
// invalid Value rather than panicking; patchers probe optional trailing
// operands.
func (i *Inst) Arg(n int) Value {
	if n >= len(i.args) {
		return Value{}
	}
	return i.args[n]
}

// SetArg replaces the n-th operand, growing the operand list if the patch
// targets an opcode-specific slot past the original count.
func (i *Inst) SetArg(n int, v Value) {
	for n >= len(i.args) {
		i.args = append(i.args, Value{})
	}
	i.args[n] = v
}

// Flags returns the packed opcode-family flag word.
func (i *Inst) Flags() uint32 {
	return i.flags
}

// SetFlags replaces the packed flag word.
func (i *Inst) SetFlags(flags uint32) {
	i.flags = flags
}

// Invalidate logically removes the instruction. Its slot is retained.
func (i *Inst) Invalidate() {
	i.op = OpInvalid
	i.args = nil
	i.invalid = true
}

// IsInvalidated reports whether the instruction was logically removed.
func (i *Inst) IsInvalidated() bool {
	return i.invalid
}
