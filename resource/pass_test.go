// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gcn/amdgpu"
	"github.com/gogpu/gcn/ir"
	"github.com/gogpu/gcn/shader"
)

func TestRetypeUntypedLoadRewritesBitcast(t *testing.T) {
	p, b, info := newTestProgram()
	setUserData(info, 2, vsharpDwords(0x1_0000, 4, 64)[:])

	handle := emitSharpFromUserData(p, b, 2)
	load := emit(p, b, ir.OpLoadBufferF32, ir.InstRef(handle), ir.Imm32(7))
	p.Inst(load).SetFlags(uint32(ir.BufferInstInfo(0).WithIndexEnable()))
	cast := emit(p, b, ir.OpBitCastU32F32, ir.InstRef(load))

	opts := Options{RetypeUntypedLoads: true}
	require.NoError(t, TrackWithOptions(context.Background(), p, opts))

	// The cast absorbed the load: same operands and flags, integer opcode.
	inst := p.Inst(cast)
	assert.Equal(t, ir.OpLoadBufferU32, inst.Opcode())
	assert.True(t, ir.BufferInstInfo(inst.Flags()).IndexEnable())
	assert.True(t, p.Inst(load).IsInvalidated())

	// Only the retyped access reached the descriptor registry.
	require.Len(t, info.Buffers, 1)
	assert.Equal(t, shader.UsedU32, info.Buffers[0].UsedTypes)
	assert.Equal(t, uint32(0), inst.Arg(0).U32())

	// The address was rebuilt from the original index operand.
	addr := p.ArgInst(inst.Arg(1))
	require.NotNil(t, addr)
	require.Equal(t, ir.OpIAdd32, addr.Opcode())
	mul := p.ArgInst(addr.Arg(0))
	require.NotNil(t, mul)
	assert.Equal(t, uint32(7), mul.Arg(0).U32())
}

func TestRetypeUntypedLoadRewritesConstBufferRead(t *testing.T) {
	p, b, info := newTestProgram()
	setUserData(info, 2, vsharpDwords(0x1_0000, 4, 64)[:])

	handle := emitSharpFromUserData(p, b, 2)
	read := emit(p, b, ir.OpReadConstBuffer, ir.InstRef(handle), ir.Imm32(3))
	cast := emit(p, b, ir.OpBitCastU32F32, ir.InstRef(read))

	opts := Options{RetypeUntypedLoads: true}
	require.NoError(t, TrackWithOptions(context.Background(), p, opts))

	inst := p.Inst(cast)
	assert.Equal(t, ir.OpReadConstBufferU32, inst.Opcode())
	assert.Equal(t, uint32(3), inst.Arg(1).U32())
	require.Len(t, info.Buffers, 1)
	assert.Equal(t, shader.UsedU32, info.Buffers[0].UsedTypes)
}

func TestRetypeOffByDefault(t *testing.T) {
	p, b, info := newTestProgram()
	setUserData(info, 2, vsharpDwords(0x1_0000, 4, 64)[:])

	handle := emitSharpFromUserData(p, b, 2)
	load := emit(p, b, ir.OpLoadBufferF32, ir.InstRef(handle), ir.Imm32(0))
	cast := emit(p, b, ir.OpBitCastU32F32, ir.InstRef(load))

	require.NoError(t, Track(context.Background(), p))

	assert.Equal(t, ir.OpBitCastU32F32, p.Inst(cast).Opcode())
	assert.False(t, p.Inst(load).IsInvalidated())
	require.Len(t, info.Buffers, 1)
	assert.Equal(t, shader.UsedF32, info.Buffers[0].UsedTypes)
}

func TestRetypeLeavesUnrelatedCasts(t *testing.T) {
	p, b, _ := newTestProgram()
	add := emit(p, b, ir.OpIAdd32, ir.Imm32(1), ir.Imm32(2))
	cast := emit(p, b, ir.OpBitCastU32F32, ir.InstRef(add))

	opts := Options{RetypeUntypedLoads: true}
	require.NoError(t, TrackWithOptions(context.Background(), p, opts))

	assert.Equal(t, ir.OpBitCastU32F32, p.Inst(cast).Opcode())
	assert.False(t, p.Inst(add).IsInvalidated())
}

func TestTrackMultipleBlocks(t *testing.T) {
	p, b0, info := newTestProgram()
	b1 := p.NewBlock()
	setUserData(info, 2, vsharpDwords(0x1_0000, 16, 64)[:])
	setUserData(info, 8, tsharpDwords(amdgpu.ImageTypeColor2D, amdgpu.Format8_8_8_8, amdgpu.NumberUnorm)[:])

	handle := emitSharpFromUserData(p, b0, 2)
	emit(p, b0, ir.OpLoadBufferF32, ir.InstRef(handle), ir.Imm32(0))

	body := emit(p, b1, ir.OpCompositeConstructF32x4,
		ir.ImmF32(0), ir.ImmF32(0), ir.ImmF32(0), ir.ImmF32(0))
	emitSampledImage(p, b1, 8, 12, ir.OpImageSampleImplicitLod, body)

	require.NoError(t, Track(context.Background(), p))

	assert.Len(t, info.Buffers, 1)
	assert.Len(t, info.Images, 1)
	assert.Len(t, info.Samplers, 1)
}

func TestTrackErrorNamesBlockAndInstruction(t *testing.T) {
	p, b, info := newTestProgram()
	dw := vsharpDwords(0x1_0000, 16, 64)
	dw[1] |= 1 << 31 // swizzle enable
	setUserData(info, 2, dw[:])

	handle := emitSharpFromUserData(p, b, 2)
	emit(p, b, ir.OpLoadBufferF32, ir.InstRef(handle), ir.Imm32(0))

	err := Track(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block 0 inst")

	var terr *Error
	assert.ErrorAs(t, err, &terr, "kind survives wrapping")
}

func TestTrackEmptyProgram(t *testing.T) {
	p, _, info := newTestProgram()
	require.NoError(t, Track(context.Background(), p))
	assert.Empty(t, info.Buffers)
	assert.Empty(t, info.Images)
	assert.Empty(t, info.Samplers)
}
