// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"math"

	"github.com/gogpu/gcn/amdgpu"
	"github.com/gogpu/gcn/ir"
	"github.com/gogpu/gcn/shader"
)

// tryInlineCbuf recognizes the idiom constructing a buffer descriptor from
// compile-time constants instead of loading it from memory:
//
//	s_getpc_b64     s[32:33]
//	s_add_u32       s32, <const>, s32
//	s_addc_u32      s33, 0, s33
//	s_mov_b32       s35, <const>
//	s_movk_i32      s34, <const>
//	buffer_load_format_xyz v[8:10], v1, s[32:35], 0 ...
//
// The handle's first half is a sum of two immediates relative to the
// program base, and its two trailing words directly supply the upper 64
// descriptor bits. On a match the synthesized descriptor is registered and
// its binding returned.
func tryInlineCbuf(p *ir.Program, inst *ir.Inst, info *shader.Info, descs *descriptors) (uint32, amdgpu.Buffer, bool, error) {
	handle := p.ArgInst(inst.Arg(0))
	if handle == nil {
		return 0, amdgpu.Buffer{}, false, nil
	}
	p0 := p.ArgInst(handle.Arg(0))
	if p0 == nil || p0.Opcode() != ir.OpIAdd32 ||
		!p0.Arg(0).IsImmediate() || !p0.Arg(1).IsImmediate() {
		return 0, amdgpu.Buffer{}, false, nil
	}
	p1 := p.ArgInst(handle.Arg(1))
	if p1 == nil || p1.Opcode() != ir.OpIAdd32 {
		return 0, amdgpu.Buffer{}, false, nil
	}
	if !handle.Arg(2).IsImmediate() || !handle.Arg(3).IsImmediate() {
		return 0, amdgpu.Buffer{}, false, nil
	}

	cbuf := amdgpu.Buffer{Raw: [2]uint64{
		info.PgmBase + uint64(p0.Arg(0).U32()) + uint64(p0.Arg(1).U32()),
		uint64(handle.Arg(2).U32()) | handle.Arg(3).U64()<<32,
	}}
	binding, err := descs.addBuffer(shader.BufferResource{
		SgprBase:    math.MaxUint32,
		DwordOffset: 0,
		Stride:      cbuf.Stride(),
		NumRecords:  cbuf.NumRecords(),
		UsedTypes:   bufferDataType(inst.Opcode()),
		InlineCbuf:  cbuf,
		IsStorage:   isBufferStore(inst.Opcode()) || cbuf.Size() > shader.MaxUboSize,
	})
	if err != nil {
		return 0, amdgpu.Buffer{}, false, err
	}
	return binding, cbuf, true, nil
}

// patchBufferInstruction resolves and registers the descriptor behind one
// buffer access, replaces the handle operand with the binding index, and
// rewrites the address operand into a dword-granular linear address.
func patchBufferInstruction(p *ir.Program, block *ir.Block, pos int, id ir.InstID, info *shader.Info, descs *descriptors) error {
	inst := p.Inst(id)

	binding, buffer, ok, err := tryInlineCbuf(p, inst, info, descs)
	if err != nil {
		return err
	}
	if !ok {
		handle := p.ArgInst(inst.Arg(0))
		if handle == nil {
			return unsupportedf(inst.Opcode(), "buffer handle is not an instruction")
		}
		producer, okProd := handle.Arg(0).TryInst()
		if !okProd {
			return unsupportedf(handle.Opcode(), "buffer handle producer is not an instruction")
		}
		sharp, err := trackSharp(p, producer)
		if err != nil {
			return err
		}
		buffer, err = info.ReadUdBuffer(sharp.SgprBase, sharp.DwordOffset)
		if err != nil {
			return err
		}
		binding, err = descs.addBuffer(shader.BufferResource{
			SgprBase:    sharp.SgprBase,
			DwordOffset: sharp.DwordOffset,
			Stride:      buffer.Stride(),
			NumRecords:  buffer.NumRecords(),
			UsedTypes:   bufferDataType(inst.Opcode()),
			IsStorage:   isBufferStore(inst.Opcode()) || buffer.Size() > shader.MaxUboSize,
		})
		if err != nil {
			return err
		}
	}

	instInfo := ir.BufferInstInfo(inst.Flags())
	e := ir.NewEmitter(p, block, pos)

	// Replace handle with binding index in the buffer resource list.
	inst.SetArg(0, ir.Imm32(binding))

	if buffer.SwizzleEnable() || buffer.AddTidEnable() {
		return unsupportedf(inst.Opcode(), "swizzled or thread-id-relative buffer addressing")
	}
	if instInfo.IsTyped() {
		if instInfo.NumberFormat() != amdgpu.NumberFloat {
			return unsupportedf(inst.Opcode(), "typed buffer access with number format %v", instInfo.NumberFormat())
		}
		switch instInfo.DataFormat() {
		case amdgpu.Format32, amdgpu.Format32_32, amdgpu.Format32_32_32, amdgpu.Format32_32_32_32:
		default:
			return unsupportedf(inst.Opcode(), "typed buffer access with data format %v", instInfo.DataFormat())
		}
	}
	if inst.Opcode() == ir.OpReadConstBuffer || inst.Opcode() == ir.OpReadConstBufferU32 {
		// Whole-descriptor reads carry no per-element address.
		return nil
	}

	// Calculate the dword-granular buffer address.
	dwordStride := buffer.StrideElements(4)
	dwordOffset := instInfo.InstOffset() / 4
	address := ir.Imm32(dwordOffset)
	switch {
	case instInfo.IndexEnable() && instInfo.OffsetEnable():
		offset := e.CompositeExtract(inst.Arg(1), 1)
		index := e.CompositeExtract(inst.Arg(1), 0)
		address = e.IAdd(e.IMul(index, ir.Imm32(dwordStride)), address)
		address = e.IAdd(address, e.ShiftRightLogical(offset, ir.Imm32(2)))
	case instInfo.IndexEnable():
		index := inst.Arg(1)
		address = e.IAdd(e.IMul(index, ir.Imm32(dwordStride)), address)
	case instInfo.OffsetEnable():
		// TODO: the dynamic byte offset is consumed but not folded into
		// the address; confirm with captures whether offset-only
		// accesses ever carry a nonzero offset.
		_ = inst.Arg(1)
	}
	inst.SetArg(1, address)

	return nil
}
