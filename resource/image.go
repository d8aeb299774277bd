// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"github.com/gogpu/gcn/amdgpu"
	"github.com/gogpu/gcn/ir"
	"github.com/gogpu/gcn/shader"
)

// anisoLodFieldSpec selects bits [19:12] of the sampler's first dword, the
// lod range fields, as packed for the bit-field extract instruction.
const anisoLodFieldSpec = 0x0008000C

// anisoDisableMask clears the anisotropy ratio bits of the sampler's first
// dword.
const anisoDisableMask = 0xFFFFF1FF

// tryDisableAnisoLod0 recognizes the four-instruction idiom that zeroes a
// sampler's anisotropic-filtering field when the bound texture has a single
// mip level:
//
//	s_bfe_u32     s0, s7,  $0x0008000c
//	s_and_b32     s1, s12, $0xfffff1ff
//	s_cmp_eq_u32  s0, 0
//	s_cselect_b32 s0, s1, s12
//
// On a match it returns the untouched sampler dword producer so the sharp
// can still be tracked, and flags the binding so codegen emits the
// equivalent logic explicitly.
func tryDisableAnisoLod0(p *ir.Program, id ir.InstID) (ir.InstID, bool) {
	inst := p.Inst(id)
	if inst.Opcode() != ir.OpSelectU32 {
		return id, false
	}

	// Select must be based on a zero check.
	prod0 := p.ArgInst(inst.Arg(0))
	if prod0 == nil || prod0.Opcode() != ir.OpIEqual ||
		!(prod0.Arg(1).IsImmediate() && prod0.Arg(1).U32() == 0) {
		return id, false
	}

	// The extracted bit range must be the lod fields.
	extract := p.ArgInst(prod0.Arg(0))
	if extract == nil || extract.Opcode() != ir.OpBitFieldUExtract {
		return id, false
	}
	field := extract.Arg(1)
	if fieldInst := p.ArgInst(field); fieldInst != nil {
		field = fieldInst.Arg(0)
	}
	if !field.IsImmediate() || field.U32() != anisoLodFieldSpec {
		return id, false
	}

	// The mask must clear exactly the anisotropy bits.
	prod1 := p.ArgInst(inst.Arg(1))
	if prod1 == nil || prod1.Opcode() != ir.OpBitwiseAnd32 || prod1.Arg(1).U32() != anisoDisableMask {
		return id, false
	}

	// The untouched operand is the first dword of the sampler sharp.
	prod2, ok := inst.Arg(2).TryInst()
	if !ok {
		return id, false
	}
	switch p.Inst(prod2).Opcode() {
	case ir.OpGetUserData, ir.OpReadConst:
		return prod2, true
	default:
		return id, false
	}
}

// DecodeTexelOffset unpacks the three signed 6-bit texel offsets carried in
// one immediate word: X at [5:0], Y at [13:8], Z at [21:16].
func DecodeTexelOffset(word uint32) (x, y, z int32) {
	signExt6 := func(v uint32) int32 {
		return int32(v<<26) >> 26
	}
	return signExt6(word & 0x3F), signExt6(word >> 8 & 0x3F), signExt6(word >> 16 & 0x3F)
}

// EncodeTexelOffset packs three signed 6-bit texel offsets into the
// immediate word layout decoded by DecodeTexelOffset.
func EncodeTexelOffset(x, y, z int32) uint32 {
	return uint32(x)&0x3F | uint32(y)&0x3F<<8 | uint32(z)&0x3F<<16
}

// patchCubeCoord rebuilds a cube coordinate vector. The face coordinates
// arrive scaled and biased by 1.5 from the cube addressing idiom; the scale
// is already forced to 1.0 upstream, so subtracting 1.5 recovers the
// original values.
func patchCubeCoord(e *ir.Emitter, s, t, z ir.Value) ir.Value {
	x := e.FPSub(s, ir.ImmF32(1.5))
	y := e.FPSub(t, ir.ImmF32(1.5))
	return e.CompositeConstruct(ir.OpCompositeConstructF32x3, x, y, z)
}

// findImageProducer searches the operand graph backwards from an image
// instruction for the node producing its descriptor handle: a combined
// image+sampler pair construction, a constant-memory read, or a direct
// user-data read. The search is breadth first, visits each node at most
// once, and therefore terminates on cyclic merge structures.
func findImageProducer(p *ir.Program, id ir.InstID) (ir.InstID, error) {
	matches := func(op ir.Opcode) bool {
		return op == ir.OpCompositeConstructU32x2 || // image+sampler handle
			op == ir.OpReadConst || // image handle only
			op == ir.OpGetUserData
	}

	queue := []ir.InstID{id}
	seen := map[ir.InstID]struct{}{id: {}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if matches(p.Inst(cur).Opcode()) {
			return cur, nil
		}
		inst := p.Inst(cur)
		for i := 0; i < inst.NumArgs(); i++ {
			argID, ok := inst.Arg(i).TryInst()
			if !ok {
				continue
			}
			if _, dup := seen[argID]; dup {
				continue
			}
			seen[argID] = struct{}{}
			queue = append(queue, argID)
		}
	}
	return ir.InvalidInst, unsupportedf(p.Inst(id).Opcode(), "no descriptor producer reachable from image instruction")
}

// patchImageInstruction resolves and registers the image (and, for sampled
// operations, sampler) descriptors behind one image instruction, replaces
// the handle operand with the packed binding, and rewrites coordinate,
// texel-offset and lod operands into the forms codegen expects.
func patchImageInstruction(p *ir.Program, block *ir.Block, pos int, id ir.InstID, info *shader.Info, descs *descriptors) error {
	inst := p.Inst(id)

	producerID, err := findImageProducer(p, id)
	if err != nil {
		return err
	}
	producer := p.Inst(producerID)

	// Split the producer into image and optional sampler sub-handles.
	tsharpID := producerID
	ssharpID := ir.InvalidInst
	if producer.Opcode() == ir.OpCompositeConstructU32x2 {
		img, okImg := producer.Arg(0).TryInst()
		smp, okSmp := producer.Arg(1).TryInst()
		if !okImg || !okSmp {
			return unsupportedf(producer.Opcode(), "combined handle halves are not instructions")
		}
		tsharpID, ssharpID = img, smp
	}

	// Read the image sharp.
	tsharp, err := trackSharp(p, tsharpID)
	if err != nil {
		return err
	}
	image, err := info.ReadUdImage(tsharp.SgprBase, tsharp.DwordOffset)
	if err != nil {
		return err
	}
	instInfo := ir.TextureInstInfo(inst.Flags())
	imageBinding, err := descs.addImage(shader.ImageResource{
		SgprBase:    tsharp.SgprBase,
		DwordOffset: tsharp.DwordOffset,
		Type:        image.Type(),
		Nfmt:        image.NumberFormat(),
		IsStorage:   isImageStorageInstruction(inst.Opcode()),
		IsDepth:     instInfo.IsDepth(),
	})
	if err != nil {
		return err
	}

	// Read the sampler sharp. Load/store style operations carry none.
	handle := imageBinding
	if ssharpID != ir.InvalidInst {
		ssharpUd, disableAniso := tryDisableAnisoLod0(p, ssharpID)
		ssharp, err := trackSharp(p, ssharpUd)
		if err != nil {
			return err
		}
		samplerBinding, err := descs.addSampler(shader.SamplerResource{
			SgprBase:        ssharp.SgprBase,
			DwordOffset:     ssharp.DwordOffset,
			AssociatedImage: imageBinding,
			DisableAniso:    disableAniso,
		})
		if err != nil {
			return err
		}
		handle |= samplerBinding << 16
	}

	e := ir.NewEmitter(p, block, pos)
	inst.SetArg(0, ir.Imm32(handle))

	// Dimension queries carry no coordinates to rebuild.
	if inst.Opcode() == ir.OpImageQueryDimensions {
		return nil
	}

	// Now that the dimensionality is known, rebuild the coordinate
	// vector from the flat operand tuple.
	body := p.ArgInst(inst.Arg(1))
	if body == nil {
		return unsupportedf(inst.Opcode(), "image coordinate operand is not an instruction")
	}
	var coords, arg ir.Value
	switch image.Type() {
	case amdgpu.ImageTypeColor1D: // x
		coords, arg = body.Arg(0), body.Arg(1)
	case amdgpu.ImageTypeColor1DArr, // x, slice
		amdgpu.ImageTypeColor2D: // x, y
		coords = e.CompositeConstruct(ir.OpCompositeConstructF32x2, body.Arg(0), body.Arg(1))
		arg = body.Arg(2)
	case amdgpu.ImageTypeColor2DArr, // x, y, slice
		amdgpu.ImageTypeColor2DMsaa, // x, y, frag
		amdgpu.ImageTypeColor3D: // x, y, z
		coords = e.CompositeConstruct(ir.OpCompositeConstructF32x3, body.Arg(0), body.Arg(1), body.Arg(2))
		arg = body.Arg(3)
	case amdgpu.ImageTypeCube: // x, y, face
		coords = patchCubeCoord(e, body.Arg(0), body.Arg(1), body.Arg(2))
		arg = body.Arg(3)
	default:
		return unsupportedf(inst.Opcode(), "unknown image type %v", image.Type())
	}
	inst.SetArg(1, coords)

	if instInfo.HasOffset() {
		argPos := 3
		if instInfo.IsDepth() {
			argPos = 4
		}
		packed := inst.Arg(argPos)
		if packed.Kind() != ir.ValueImm32 {
			return unsupportedf(inst.Opcode(), "texel offset operand is not a 32-bit immediate")
		}
		x, y, _ := DecodeTexelOffset(packed.U32())
		value := e.CompositeConstruct(ir.OpCompositeConstructU32x2,
			ir.Imm32(uint32(x)), ir.Imm32(uint32(y)))
		inst.SetArg(argPos, value)
	}

	if instInfo.HasLodClamp() {
		// The trailing coordinate-tuple argument carries the clamp.
		argPos := 4
		if instInfo.IsDepth() {
			argPos = 5
		}
		inst.SetArg(argPos, arg)
	}
	if instInfo.ExplicitLod() {
		switch inst.Opcode() {
		case ir.OpImageFetch, ir.OpImageSampleExplicitLod, ir.OpImageSampleDrefExplicitLod:
		default:
			return unsupportedf(inst.Opcode(), "explicit lod flag on non explicit-lod opcode")
		}
		argPos := 3
		if inst.Opcode() == ir.OpImageSampleExplicitLod {
			argPos = 2
		}
		inst.SetArg(argPos, arg)
	}

	return nil
}
