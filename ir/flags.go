// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

import "github.com/gogpu/gcn/amdgpu"

// BufferInstInfo is the packed flag word carried by buffer instructions.
//
// Layout:
//
//	[0]     index enable
//	[1]     offset enable
//	[13:2]  instruction byte offset
//	[14]    typed
//	[20:15] data format (typed accesses)
//	[24:21] number format (typed accesses)
type BufferInstInfo uint32

// IndexEnable reports whether the address operand carries an element index.
func (f BufferInstInfo) IndexEnable() bool {
	return f&1 != 0
}

// OffsetEnable reports whether the address operand carries a dynamic byte
// offset.
func (f BufferInstInfo) OffsetEnable() bool {
	return f>>1&1 != 0
}

// InstOffset returns the constant byte offset embedded in the instruction.
func (f BufferInstInfo) InstOffset() uint32 {
	return uint32(f) >> 2 & (1<<12 - 1)
}

// IsTyped reports whether the access declares an element format.
func (f BufferInstInfo) IsTyped() bool {
	return f>>14&1 != 0
}

// DataFormat returns the declared element data format of a typed access.
func (f BufferInstInfo) DataFormat() amdgpu.DataFormat {
	return amdgpu.DataFormat(f >> 15 & 0x3F)
}

// NumberFormat returns the declared element number format of a typed access.
func (f BufferInstInfo) NumberFormat() amdgpu.NumberFormat {
	return amdgpu.NumberFormat(f >> 21 & 0xF)
}

// WithIndexEnable returns a copy with the index-enable bit set.
func (f BufferInstInfo) WithIndexEnable() BufferInstInfo {
	return f | 1
}

// WithOffsetEnable returns a copy with the offset-enable bit set.
func (f BufferInstInfo) WithOffsetEnable() BufferInstInfo {
	return f | 1<<1
}

// WithInstOffset returns a copy with the constant byte offset field set.
func (f BufferInstInfo) WithInstOffset(off uint32) BufferInstInfo {
	return f&^(BufferInstInfo(1<<12-1)<<2) | BufferInstInfo(off&(1<<12-1))<<2
}

// WithTyped returns a copy declaring the given element format.
func (f BufferInstInfo) WithTyped(dfmt amdgpu.DataFormat, nfmt amdgpu.NumberFormat) BufferInstInfo {
	f |= 1 << 14
	f = f&^(BufferInstInfo(0x3F)<<15) | BufferInstInfo(dfmt&0x3F)<<15
	return f&^(BufferInstInfo(0xF)<<21) | BufferInstInfo(nfmt&0xF)<<21
}

// TextureInstInfo is the packed flag word carried by image instructions.
//
// Layout:
//
//	[0] depth comparison
//	[1] has texel offset operand
//	[2] has lod clamp operand
//	[3] explicit lod
type TextureInstInfo uint32

// IsDepth reports whether the instruction performs a depth comparison.
func (f TextureInstInfo) IsDepth() bool {
	return f&1 != 0
}

// HasOffset reports whether a packed texel offset operand is present.
func (f TextureInstInfo) HasOffset() bool {
	return f>>1&1 != 0
}

// HasLodClamp reports whether a lod clamp operand is present.
func (f TextureInstInfo) HasLodClamp() bool {
	return f>>2&1 != 0
}

// ExplicitLod reports whether the lod is supplied explicitly.
func (f TextureInstInfo) ExplicitLod() bool {
	return f>>3&1 != 0
}

// WithDepth returns a copy with the depth-comparison bit set.
func (f TextureInstInfo) WithDepth() TextureInstInfo {
	return f | 1
}

// WithOffset returns a copy with the texel-offset bit set.
func (f TextureInstInfo) WithOffset() TextureInstInfo {
	return f | 1<<1
}

// WithLodClamp returns a copy with the lod-clamp bit set.
func (f TextureInstInfo) WithLodClamp() TextureInstInfo {
	return f | 1<<2
}

// WithExplicitLod returns a copy with the explicit-lod bit set.
func (f TextureInstInfo) WithExplicitLod() TextureInstInfo {
	return f | 1<<3
}
