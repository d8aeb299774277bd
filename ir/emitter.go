// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

// Emitter creates instructions immediately before a fixed position in a
// block, preserving the order of consecutive emissions. It is the patching
// counterpart of the front end's instruction builder: passes use it to
// materialize address arithmetic and reconstructed composites next to the
// instruction being rewritten.
type Emitter struct {
	prog  *Program
	block *Block
	pos   int
}

// NewEmitter returns an emitter inserting before the instruction at pos.
func NewEmitter(p *Program, b *Block, pos int) *Emitter {
	return &Emitter{prog: p, block: b, pos: pos}
}

// Pos returns the current position of the patched instruction, which moves
// forward as instructions are inserted before it.
func (e *Emitter) Pos() int {
	return e.pos
}

func (e *Emitter) emit(op Opcode, args ...Value) Value {
	id := e.prog.NewInst(op, args...)
	e.block.insertAt(e.pos, id)
	e.pos++
	return InstRef(id)
}

// IAdd emits a 32-bit integer addition.
func (e *Emitter) IAdd(a, b Value) Value {
	return e.emit(OpIAdd32, a, b)
}

// IMul emits a 32-bit integer multiplication.
func (e *Emitter) IMul(a, b Value) Value {
	return e.emit(OpIMul32, a, b)
}

// ShiftRightLogical emits a 32-bit logical right shift.
func (e *Emitter) ShiftRightLogical(a, shift Value) Value {
	return e.emit(OpShiftRightLogical32, a, shift)
}

// FPSub emits a 32-bit float subtraction.
func (e *Emitter) FPSub(a, b Value) Value {
	return e.emit(OpFPSub32, a, b)
}

// CompositeExtract emits extraction of one component from a composite.
func (e *Emitter) CompositeExtract(composite Value, index uint32) Value {
	return e.emit(OpCompositeExtract, composite, Imm32(index))
}

// CompositeConstruct emits construction of a composite with the given
// opcode. The component count must match the opcode width.
func (e *Emitter) CompositeConstruct(op Opcode, components ...Value) Value {
	return e.emit(op, components...)
}
