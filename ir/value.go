// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import (
	"fmt"
	"math"
)

// InstID is a handle into a Program's instruction arena.
type InstID int32

// InvalidInst is the zero-value handle of no instruction.
const InvalidInst InstID = -1

// ScalarReg is a scalar general purpose register index.
type ScalarReg uint32

// ValueKind discriminates the payload of a Value.
type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueInst
	ValueImm32
	ValueImm64
	ValueImmF32
	ValueScalarReg
)

// Value is a single operand: either an immediate constant, a scalar
// register name, or a reference to the producing instruction.
type Value struct {
	kind ValueKind
	inst InstID
	imm  uint64
}

// InstRef returns a Value referencing the given producing instruction.
func InstRef(id InstID) Value {
	return Value{kind: ValueInst, inst: id}
}

// Imm32 returns a 32-bit immediate Value.
func Imm32(v uint32) Value {
	return Value{kind: ValueImm32, imm: uint64(v)}
}

// Imm64 returns a 64-bit immediate Value.
func Imm64(v uint64) Value {
	return Value{kind: ValueImm64, imm: v}
}

// ImmF32 returns a 32-bit float immediate Value.
func ImmF32(v float32) Value {
	return Value{kind: ValueImmF32, imm: uint64(math.Float32bits(v))}
}

// Reg returns a scalar register Value.
func Reg(r ScalarReg) Value {
	return Value{kind: ValueScalarReg, imm: uint64(r)}
}

// Kind returns the value kind.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsImmediate reports whether the value is a constant (immediate or
// register name) rather than an instruction reference.
func (v Value) IsImmediate() bool {
	return v.kind != ValueInst && v.kind != ValueInvalid
}

// TryInst returns the producing instruction handle, if any.
func (v Value) TryInst() (InstID, bool) {
	if v.kind != ValueInst {
		return InvalidInst, false
	}
	return v.inst, true
}

// Inst returns the producing instruction handle. It is only valid when
// Kind is ValueInst.
func (v Value) Inst() InstID {
	return v.inst
}

// U32 returns the immediate as a 32-bit unsigned value.
func (v Value) U32() uint32 {
	return uint32(v.imm)
}

// U64 returns the immediate as a 64-bit unsigned value.
func (v Value) U64() uint64 {
	return v.imm
}

// F32 returns the immediate as a 32-bit float.
func (v Value) F32() float32 {
	return math.Float32frombits(uint32(v.imm))
}

// ScalarReg returns the register name held by a ValueScalarReg value.
func (v Value) ScalarReg() ScalarReg {
	return ScalarReg(v.imm)
}

// String formats the value for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case ValueInst:
		return fmt.Sprintf("%%%d", v.inst)
	case ValueImm32:
		return fmt.Sprintf("#0x%x", uint32(v.imm))
	case ValueImm64:
		return fmt.Sprintf("#0x%x", v.imm)
	case ValueImmF32:
		return fmt.Sprintf("#%g", v.F32())
	case ValueScalarReg:
		return fmt.Sprintf("s%d", v.imm)
	default:
		return "<invalid>"
	}
}
