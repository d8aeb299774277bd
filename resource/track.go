// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"github.com/gogpu/gcn/amdgpu"
	"github.com/gogpu/gcn/ir"
)

// SharpLocation identifies where a hardware descriptor resides: directly in
// user-data register DwordOffset when SgprBase is amdgpu.NumScalarRegs, or
// DwordOffset dwords past the 64-bit pointer held in the user-data register
// pair (SgprBase, SgprBase+1).
type SharpLocation struct {
	SgprBase    uint32
	DwordOffset uint32
}

// unwrapPhi resolves through chains of merge instructions by following
// their first predecessor. Merge structures may be cyclic through loops,
// so visited handles are tracked; revisiting one means the handle never
// resolves to a concrete producer.
func unwrapPhi(p *ir.Program, id ir.InstID) (ir.InstID, error) {
	var seen map[ir.InstID]struct{}
	for p.Inst(id).Opcode() == ir.OpPhi {
		if _, ok := seen[id]; ok {
			return ir.InvalidInst, unsupportedf(ir.OpPhi, "cyclic merge chain never reaches a producer")
		}
		if seen == nil {
			seen = make(map[ir.InstID]struct{})
		}
		seen[id] = struct{}{}

		next, ok := p.Inst(id).Arg(0).TryInst()
		if !ok {
			return ir.InvalidInst, unsupportedf(ir.OpPhi, "merge predecessor is not an instruction")
		}
		id = next
	}
	return id, nil
}

// trackSharp walks backwards from a descriptor handle producer to the
// location the descriptor is loaded from. Exactly two producer shapes are
// supported: a direct user-data register read, and a constant-memory read
// whose address is a user-data register pair. Anything else, in particular
// a descriptor address itself loaded from memory, is not a hardware idiom
// this recompiler accepts.
func trackSharp(p *ir.Program, id ir.InstID) (SharpLocation, error) {
	id, err := unwrapPhi(p, id)
	if err != nil {
		return SharpLocation{}, err
	}
	inst := p.Inst(id)

	if inst.Opcode() == ir.OpGetUserData {
		return SharpLocation{
			SgprBase:    amdgpu.NumScalarRegs,
			DwordOffset: uint32(inst.Arg(0).ScalarReg()),
		}, nil
	}
	if inst.Opcode() != ir.OpReadConst {
		return SharpLocation{}, unsupportedf(inst.Opcode(), "descriptor not loaded from user data or constant memory")
	}

	// Byte offset of the read, as a dword index.
	if !inst.Arg(1).IsImmediate() {
		return SharpLocation{}, unsupportedf(inst.Opcode(), "constant read with non-constant offset")
	}
	dwordOffset := inst.Arg(1).U32() / 4

	// The address operand is a composite of the two halves of a scalar
	// register pair.
	base := p.ArgInst(inst.Arg(0))
	if base == nil || base.NumArgs() < 2 {
		return SharpLocation{}, unsupportedf(inst.Opcode(), "constant read address is not a register pair composite")
	}
	half0, ok := base.Arg(0).TryInst()
	if !ok {
		return SharpLocation{}, unsupportedf(base.Opcode(), "register pair low half is not an instruction")
	}
	half1, ok := base.Arg(1).TryInst()
	if !ok {
		return SharpLocation{}, unsupportedf(base.Opcode(), "register pair high half is not an instruction")
	}
	if half0, err = unwrapPhi(p, half0); err != nil {
		return SharpLocation{}, err
	}
	if half1, err = unwrapPhi(p, half1); err != nil {
		return SharpLocation{}, err
	}
	sbase0, sbase1 := p.Inst(half0), p.Inst(half1)
	if sbase0.Opcode() != ir.OpGetUserData || sbase1.Opcode() != ir.OpGetUserData {
		return SharpLocation{}, unsupportedf(inst.Opcode(), "nested resource loads not supported")
	}

	return SharpLocation{
		SgprBase:    uint32(sbase0.Arg(0).ScalarReg()),
		DwordOffset: dwordOffset,
	}, nil
}
