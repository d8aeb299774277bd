// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package amdgpu

import "testing"

func TestBufferDecode(t *testing.T) {
	b := Buffer{Raw: [2]uint64{
		0xEDC_BA98_7654 | 16<<48 | 1<<62 | 1<<63,
		256 | 7<<44 | 14<<47 | 1<<55,
	}}

	if got := b.BaseAddress(); got != 0xEDC_BA98_7654 {
		t.Errorf("BaseAddress() = %#x", got)
	}
	if got := b.Stride(); got != 16 {
		t.Errorf("Stride() = %d, want 16", got)
	}
	if got := b.NumRecords(); got != 256 {
		t.Errorf("NumRecords() = %d, want 256", got)
	}
	if got := b.Size(); got != 4096 {
		t.Errorf("Size() = %d, want 4096", got)
	}
	if !b.CacheSwizzle() {
		t.Error("CacheSwizzle() = false")
	}
	if !b.SwizzleEnable() {
		t.Error("SwizzleEnable() = false")
	}
	if got := b.NumberFormat(); got != NumberFloat {
		t.Errorf("NumberFormat() = %v, want Float", got)
	}
	if got := b.DataFormat(); got != Format32_32_32_32 {
		t.Errorf("DataFormat() = %v, want 32_32_32_32", got)
	}
	if !b.AddTidEnable() {
		t.Error("AddTidEnable() = false")
	}
}

func TestBufferFromDwords(t *testing.T) {
	b := BufferFromDwords([4]uint32{0x1111_2222, 0x3333_4444, 0x5555_6666, 0x7777_8888})
	want := Buffer{Raw: [2]uint64{0x3333_4444_1111_2222, 0x7777_8888_5555_6666}}
	if b != want {
		t.Errorf("BufferFromDwords() = %+v, want %+v", b, want)
	}
}

func TestBufferValid(t *testing.T) {
	if (Buffer{}).Valid() {
		t.Error("zero descriptor reports valid")
	}
	if !(Buffer{Raw: [2]uint64{1, 0}}).Valid() {
		t.Error("non-zero descriptor reports invalid")
	}
}

func TestBufferStrideElements(t *testing.T) {
	tests := []struct {
		stride   uint32
		elemSize uint32
		want     uint32
	}{
		{0, 4, 1}, // raw buffer
		{4, 4, 1},
		{16, 4, 4},
		{64, 16, 4},
	}
	for _, tt := range tests {
		b := Buffer{Raw: [2]uint64{uint64(tt.stride) << 48, 0}}
		if got := b.StrideElements(tt.elemSize); got != tt.want {
			t.Errorf("stride %d / elem %d: got %d, want %d", tt.stride, tt.elemSize, got, tt.want)
		}
	}
}

func TestBufferSizeRawStride(t *testing.T) {
	b := Buffer{Raw: [2]uint64{0, 1024}}
	if got := b.Size(); got != 1024 {
		t.Errorf("Size() = %d, want 1024 for raw buffer", got)
	}
}

func TestImageDecode(t *testing.T) {
	img := Image{Raw: [4]uint64{
		0x1_0000 | uint64(Format8_8_8_8)<<52 | uint64(NumberSrgb)<<58,
		1919 | 1079<<14 | 2<<44 | 9<<48 | uint64(ImageTypeCube)<<60,
		0, 0,
	}}

	if got := img.BaseAddress(); got != 0x1_0000 {
		t.Errorf("BaseAddress() = %#x", got)
	}
	if got := img.DataFormat(); got != Format8_8_8_8 {
		t.Errorf("DataFormat() = %v", got)
	}
	if got := img.NumberFormat(); got != NumberSrgb {
		t.Errorf("NumberFormat() = %v", got)
	}
	if got := img.Width(); got != 1920 {
		t.Errorf("Width() = %d, want 1920", got)
	}
	if got := img.Height(); got != 1080 {
		t.Errorf("Height() = %d, want 1080", got)
	}
	if got := img.BaseLevel(); got != 2 {
		t.Errorf("BaseLevel() = %d, want 2", got)
	}
	if got := img.LastLevel(); got != 9 {
		t.Errorf("LastLevel() = %d, want 9", got)
	}
	if got := img.Type(); got != ImageTypeCube {
		t.Errorf("Type() = %v, want Cube", got)
	}
}

func TestImageFromDwords(t *testing.T) {
	img := ImageFromDwords([8]uint32{1, 2, 3, 4, 5, 6, 7, 8})
	want := Image{Raw: [4]uint64{2<<32 | 1, 4<<32 | 3, 6<<32 | 5, 8<<32 | 7}}
	if img != want {
		t.Errorf("ImageFromDwords() = %+v, want %+v", img, want)
	}
}

func TestImageTypeString(t *testing.T) {
	tests := []struct {
		typ  ImageType
		want string
	}{
		{ImageTypeColor1D, "Color1D"},
		{ImageTypeColor2D, "Color2D"},
		{ImageTypeCube, "Cube"},
		{ImageTypeColor2DMsaa, "Color2DMsaa"},
		{ImageTypeInvalid, "Invalid"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("ImageType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
