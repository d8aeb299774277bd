// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package amdgpu

// Buffer is a decoded view over a 128-bit buffer descriptor (V#).
//
// Layout, low qword first:
//
//	[43:0]    base address
//	[47:44]   reserved
//	[61:48]   stride in bytes
//	[62]      cache swizzle
//	[63]      swizzle enable
//	[95:64]   num_records
//	[107:96]  dst_sel_x/y/z/w
//	[110:108] number format
//	[114:111] data format
//	[116:115] element size
//	[118:117] index stride
//	[119]     add_tid_enable
//
// The zero value is the null descriptor.
type Buffer struct {
	Raw [2]uint64
}

// BufferFromDwords assembles a Buffer from the four dwords of a V# as they
// appear in the user-data table or constant memory.
func BufferFromDwords(dw [4]uint32) Buffer {
	return Buffer{Raw: [2]uint64{
		uint64(dw[0]) | uint64(dw[1])<<32,
		uint64(dw[2]) | uint64(dw[3])<<32,
	}}
}

// Valid reports whether the descriptor is non-null.
func (b Buffer) Valid() bool {
	return b.Raw != [2]uint64{}
}

// BaseAddress returns the 44-bit buffer base address.
func (b Buffer) BaseAddress() uint64 {
	return b.Raw[0] & (1<<44 - 1)
}

// Stride returns the raw stride field in bytes. A zero stride marks a raw
// (tightly packed dword) buffer.
func (b Buffer) Stride() uint32 {
	return uint32(b.Raw[0] >> 48 & (1<<14 - 1))
}

// StrideElements returns the stride expressed in elements of the given byte
// size. Raw buffers report a stride of one element.
func (b Buffer) StrideElements(elemSize uint32) uint32 {
	stride := b.Stride()
	if stride == 0 {
		return 1
	}
	return stride / elemSize
}

// NumRecords returns the record count field.
func (b Buffer) NumRecords() uint32 {
	return uint32(b.Raw[1])
}

// Size returns the addressable byte size of the buffer.
func (b Buffer) Size() uint64 {
	stride := uint64(b.Stride())
	if stride == 0 {
		stride = 1
	}
	return stride * uint64(b.NumRecords())
}

// CacheSwizzle reports whether the cache swizzle bit is set.
func (b Buffer) CacheSwizzle() bool {
	return b.Raw[0]>>62&1 != 0
}

// SwizzleEnable reports whether swizzled element addressing is enabled.
func (b Buffer) SwizzleEnable() bool {
	return b.Raw[0]>>63 != 0
}

// NumberFormat returns the element number format.
func (b Buffer) NumberFormat() NumberFormat {
	return NumberFormat(b.Raw[1] >> 44 & 0x7)
}

// DataFormat returns the element data format.
func (b Buffer) DataFormat() DataFormat {
	return DataFormat(b.Raw[1] >> 47 & 0xF)
}

// AddTidEnable reports whether thread-id-relative addressing is enabled.
func (b Buffer) AddTidEnable() bool {
	return b.Raw[1]>>55&1 != 0
}
