// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"fmt"

	"github.com/gogpu/gcn/amdgpu"
	"github.com/gogpu/gcn/ir"
	"github.com/gogpu/gcn/shader"
)

// fakeMemory maps byte addresses to dwords for constant-memory reads.
type fakeMemory map[uint64]uint32

func (m fakeMemory) ReadDwords(addr uint64, dst []uint32) error {
	for i := range dst {
		v, ok := m[addr+uint64(4*i)]
		if !ok {
			return fmt.Errorf("unmapped address %#x", addr+uint64(4*i))
		}
		dst[i] = v
	}
	return nil
}

// vsharpDwords assembles the four dwords of a buffer descriptor.
func vsharpDwords(base uint64, stride, numRecords uint32) []uint32 {
	raw0 := base&(1<<44-1) | uint64(stride&0x3FFF)<<48
	return []uint32{uint32(raw0), uint32(raw0 >> 32), numRecords, 0}
}

// tsharpDwords assembles the eight dwords of an image descriptor.
func tsharpDwords(typ amdgpu.ImageType, dfmt amdgpu.DataFormat, nfmt amdgpu.NumberFormat) []uint32 {
	raw0 := uint64(dfmt&0x3F)<<52 | uint64(nfmt&0xF)<<58
	raw1 := uint64(typ) << 60
	return []uint32{
		uint32(raw0), uint32(raw0 >> 32),
		uint32(raw1), uint32(raw1 >> 32),
		0, 0, 0, 0,
	}
}

// setUserData copies descriptor dwords into the user-data table at reg.
func setUserData(info *shader.Info, reg uint32, dwords []uint32) {
	copy(info.UserData[reg:], dwords)
}

func emit(p *ir.Program, b *ir.Block, op ir.Opcode, args ...ir.Value) ir.InstID {
	id := p.NewInst(op, args...)
	b.Push(id)
	return id
}

// emitSharpFromConst builds the constant-memory descriptor load idiom: the
// user-data pair at base holds a pointer, and the descriptor lives
// byteOffset past it. Returns the handle composite the access references.
func emitSharpFromConst(p *ir.Program, b *ir.Block, base ir.ScalarReg, byteOffset uint32) ir.InstID {
	lo := emit(p, b, ir.OpGetUserData, ir.Reg(base))
	hi := emit(p, b, ir.OpGetUserData, ir.Reg(base+1))
	addr := emit(p, b, ir.OpCompositeConstructU32x2, ir.InstRef(lo), ir.InstRef(hi))
	rc := emit(p, b, ir.OpReadConst, ir.InstRef(addr), ir.Imm32(byteOffset))
	return emit(p, b, ir.OpCompositeConstructU32x4,
		ir.InstRef(rc), ir.InstRef(rc), ir.InstRef(rc), ir.InstRef(rc))
}

// emitSharpFromUserData builds the direct-register descriptor idiom.
func emitSharpFromUserData(p *ir.Program, b *ir.Block, reg ir.ScalarReg) ir.InstID {
	ud := emit(p, b, ir.OpGetUserData, ir.Reg(reg))
	return emit(p, b, ir.OpCompositeConstructU32x4,
		ir.InstRef(ud), ir.InstRef(ud), ir.InstRef(ud), ir.InstRef(ud))
}

func newTestProgram() (*ir.Program, *ir.Block, *shader.Info) {
	info := &shader.Info{Stage: shader.StageFragment}
	p := ir.NewProgram(info)
	return p, p.NewBlock(), info
}
