// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"github.com/gogpu/gcn/shader"
)

// Block is an ordered sequence of instructions, referenced by handle into
// the owning Program's arena.
type Block struct {
	insts []InstID
}

// Instructions returns the block's instruction handles in program order.
// The returned slice is the live list; passes that insert while iterating
// must iterate over a snapshot.
func (b *Block) Instructions() []InstID {
	return b.insts
}

// Len returns the instruction count.
func (b *Block) Len() int {
	return len(b.insts)
}

// Push appends an instruction handle to the block.
func (b *Block) Push(id InstID) {
	b.insts = append(b.insts, id)
}

// insertAt places an instruction handle at position pos, shifting the tail.
func (b *Block) insertAt(pos int, id InstID) {
	b.insts = append(b.insts, InvalidInst)
	copy(b.insts[pos+1:], b.insts[pos:])
	b.insts[pos] = id
}

// Program is one translated shader: the instruction arena, the blocks in
// pass traversal order, and the shared per-stage Info record.
type Program struct {
	arena []Inst

	// Blocks holds the blocks in the fixed traversal order used by
	// passes (post order of the control flow graph).
	Blocks []*Block

	// Info is the shared per-stage metadata record, populated by the
	// resource tracking pass and read by the code generator.
	Info *shader.Info
}

// NewProgram creates an empty program bound to the given Info record.
func NewProgram(info *shader.Info) *Program {
	return &Program{Info: info}
}

// NewBlock appends a new empty block in traversal order.
func (p *Program) NewBlock() *Block {
	b := &Block{}
	p.Blocks = append(p.Blocks, b)
	return b
}

// NewInst allocates an instruction in the arena. The instruction is not
// placed into any block; use Block.Push or an Emitter.
func (p *Program) NewInst(op Opcode, args ...Value) InstID {
	id := InstID(len(p.arena))
	p.arena = append(p.arena, Inst{op: op, args: args})
	return id
}

// Inst resolves an instruction handle. Handles are never compacted, so a
// handle obtained during the pass stays valid for the program's lifetime.
func (p *Program) Inst(id InstID) *Inst {
	return &p.arena[id]
}

// ArgInst resolves an operand to its producing instruction, or nil when the
// operand is an immediate.
func (p *Program) ArgInst(v Value) *Inst {
	id, ok := v.TryInst()
	if !ok {
		return nil
	}
	return &p.arena[id]
}
