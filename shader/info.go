// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shader holds the per-stage metadata record shared between
// recompiler passes and the code generator.
package shader

import (
	"fmt"

	"github.com/gogpu/gcn/amdgpu"
)

// Stage is the shader pipeline stage being compiled.
type Stage uint32

const (
	StageVertex Stage = iota
	StageTessellationControl
	StageTessellationEval
	StageGeometry
	StageFragment
	StageCompute
)

// String returns the short stage mnemonic.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vs"
	case StageTessellationControl:
		return "tc"
	case StageTessellationEval:
		return "te"
	case StageGeometry:
		return "gs"
	case StageFragment:
		return "fs"
	case StageCompute:
		return "cs"
	default:
		return "??"
	}
}

// MaxResourceCount bounds each per-stage resource list. It mirrors the
// descriptor-set capacity the target API guarantees per stage; growth past
// it is a hard compilation failure, never silent truncation.
const MaxResourceCount = 16

// MaxUboSize is the largest buffer, in bytes, that can be bound read-only
// as a uniform buffer. Larger buffers need a read/write-capable binding.
const MaxUboSize = 65536

// UsedTypes accumulates the element types observed on a buffer binding.
type UsedTypes uint8

const (
	UsedF32 UsedTypes = 1 << iota
	UsedU32
)

// BufferResource is one buffer binding discovered by resource tracking.
// Identity is (SgprBase, DwordOffset, InlineCbuf); Stride and NumRecords
// are fixed at first registration, IsStorage and UsedTypes widen
// monotonically.
type BufferResource struct {
	SgprBase    uint32
	DwordOffset uint32
	Stride      uint32
	NumRecords  uint32
	UsedTypes   UsedTypes
	InlineCbuf  amdgpu.Buffer
	IsStorage   bool
}

// Vsharp returns the hardware descriptor backing this binding: the inline
// value when the binding was synthesized at compile time, otherwise the
// descriptor re-read from the user-data table.
func (b *BufferResource) Vsharp(info *Info) (amdgpu.Buffer, error) {
	if b.InlineCbuf.Valid() {
		return b.InlineCbuf, nil
	}
	return info.ReadUdBuffer(b.SgprBase, b.DwordOffset)
}

// ImageResource is one image binding discovered by resource tracking.
// Identity is (SgprBase, DwordOffset, Type, IsStorage).
type ImageResource struct {
	SgprBase    uint32
	DwordOffset uint32
	Type        amdgpu.ImageType
	Nfmt        amdgpu.NumberFormat
	IsStorage   bool
	IsDepth     bool
}

// SamplerResource is one sampler binding discovered by resource tracking.
// Identity is (SgprBase, DwordOffset).
type SamplerResource struct {
	SgprBase    uint32
	DwordOffset uint32

	// AssociatedImage is the image binding this sampler was first seen
	// with, used by codegen to pair the two.
	AssociatedImage uint32

	// DisableAniso records that the shader carried the idiom zeroing the
	// sampler's anisotropy field for single-mip textures; codegen emits
	// the equivalent logic explicitly.
	DisableAniso bool
}

// ConstMemory reads shader-visible constant memory. Descriptors whose
// location is a pointer held in a user-data register pair are fetched
// through it.
type ConstMemory interface {
	// ReadDwords fills dst with consecutive dwords starting at the given
	// byte address.
	ReadDwords(addr uint64, dst []uint32) error
}

// Info is the per-stage metadata record for one compiled shader. It is
// created once per shader, populated by the resource tracking pass, and
// read-only afterwards. It is never shared between concurrently compiled
// programs.
type Info struct {
	Stage Stage

	// UserData is the initial scalar register file snapshot supplied at
	// shader launch.
	UserData [amdgpu.NumUserDataRegs]uint32

	// Memory resolves constant-memory reads for descriptors addressed
	// through a pointer register pair.
	Memory ConstMemory

	// PgmBase is the shader program's load address; inline constant
	// buffers are synthesized relative to it.
	PgmBase uint64

	// PgmHash identifies the shader binary. Together with the
	// deterministic binding assignment it forms the artifact cache key.
	PgmHash uint64

	WorkgroupSize [3]uint32

	Buffers  []BufferResource
	Images   []ImageResource
	Samplers []SamplerResource
}

// ReadUd reads n consecutive dwords of descriptor data. When ptrIndex is
// the direct sentinel (amdgpu.NumScalarRegs) the read comes straight from
// the user-data table at dwordOffset; otherwise the register pair
// (ptrIndex, ptrIndex+1) holds a 64-bit constant-memory address and the
// read goes through the Memory reader at dwordOffset dwords past it.
func (i *Info) ReadUd(ptrIndex, dwordOffset uint32, n int) ([]uint32, error) {
	dst := make([]uint32, n)
	if ptrIndex == amdgpu.NumScalarRegs {
		if int(dwordOffset)+n > len(i.UserData) {
			return nil, fmt.Errorf("user data read out of range: dword %d count %d", dwordOffset, n)
		}
		copy(dst, i.UserData[dwordOffset:])
		return dst, nil
	}
	if int(ptrIndex)+1 >= len(i.UserData) {
		return nil, fmt.Errorf("user data pointer pair out of range: s%d", ptrIndex)
	}
	if i.Memory == nil {
		return nil, fmt.Errorf("no constant memory reader bound for pointer in s[%d:%d]", ptrIndex, ptrIndex+1)
	}
	addr := uint64(i.UserData[ptrIndex]) | uint64(i.UserData[ptrIndex+1])<<32
	addr += uint64(dwordOffset) * 4
	if err := i.Memory.ReadDwords(addr, dst); err != nil {
		return nil, fmt.Errorf("constant memory read at %#x: %w", addr, err)
	}
	return dst, nil
}

// ReadUdBuffer reads a 128-bit buffer descriptor.
func (i *Info) ReadUdBuffer(ptrIndex, dwordOffset uint32) (amdgpu.Buffer, error) {
	dw, err := i.ReadUd(ptrIndex, dwordOffset, 4)
	if err != nil {
		return amdgpu.Buffer{}, err
	}
	return amdgpu.BufferFromDwords([4]uint32(dw)), nil
}

// ReadUdImage reads a 256-bit image descriptor.
func (i *Info) ReadUdImage(ptrIndex, dwordOffset uint32) (amdgpu.Image, error) {
	dw, err := i.ReadUd(ptrIndex, dwordOffset, 8)
	if err != nil {
		return amdgpu.Image{}, err
	}
	return amdgpu.ImageFromDwords([8]uint32(dw)), nil
}
