// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package amdgpu

// ImageType is the dimensionality field of an image descriptor.
type ImageType uint32

const (
	ImageTypeInvalid     ImageType = 0
	ImageTypeColor1D     ImageType = 8
	ImageTypeColor2D     ImageType = 9
	ImageTypeColor3D     ImageType = 10
	ImageTypeCube        ImageType = 11
	ImageTypeColor1DArr  ImageType = 12
	ImageTypeColor2DArr  ImageType = 13
	ImageTypeColor2DMsaa ImageType = 14
	imageTypeMsaaArray   ImageType = 15
)

// String returns a human-readable image type name.
func (t ImageType) String() string {
	switch t {
	case ImageTypeColor1D:
		return "Color1D"
	case ImageTypeColor2D:
		return "Color2D"
	case ImageTypeColor3D:
		return "Color3D"
	case ImageTypeCube:
		return "Cube"
	case ImageTypeColor1DArr:
		return "Color1DArray"
	case ImageTypeColor2DArr:
		return "Color2DArray"
	case ImageTypeColor2DMsaa:
		return "Color2DMsaa"
	case imageTypeMsaaArray:
		return "Color2DMsaaArray"
	default:
		return "Invalid"
	}
}

// Image is a decoded view over a 256-bit image descriptor (T#).
//
// Layout of the low 128 bits, which carry everything the recompiler reads:
//
//	[37:0]    base address (256-byte aligned)
//	[39:38]   mtype_l2
//	[51:40]   min_lod
//	[57:52]   data format
//	[61:58]   number format
//	[63:62]   mtype
//	[77:64]   width-1
//	[91:78]   height-1
//	[94:92]   perf modulation
//	[95]      interlaced
//	[107:96]  dst_sel_x/y/z/w
//	[111:108] base mip level
//	[115:112] last mip level
//	[120:116] tiling index
//	[121]     pow2pad
//	[123:122] reserved
//	[127:124] type
type Image struct {
	Raw [4]uint64
}

// ImageFromDwords assembles an Image from the eight dwords of a T#.
func ImageFromDwords(dw [8]uint32) Image {
	var img Image
	for i := range img.Raw {
		img.Raw[i] = uint64(dw[2*i]) | uint64(dw[2*i+1])<<32
	}
	return img
}

// BaseAddress returns the 38-bit (256-byte granular) base address field.
func (i Image) BaseAddress() uint64 {
	return i.Raw[0] & (1<<38 - 1)
}

// DataFormat returns the texel data format.
func (i Image) DataFormat() DataFormat {
	return DataFormat(i.Raw[0] >> 52 & 0x3F)
}

// NumberFormat returns the texel number format.
func (i Image) NumberFormat() NumberFormat {
	return NumberFormat(i.Raw[0] >> 58 & 0xF)
}

// Width returns the image width in texels.
func (i Image) Width() uint32 {
	return uint32(i.Raw[1]&(1<<14-1)) + 1
}

// Height returns the image height in texels.
func (i Image) Height() uint32 {
	return uint32(i.Raw[1]>>14&(1<<14-1)) + 1
}

// BaseLevel returns the first mip level.
func (i Image) BaseLevel() uint32 {
	return uint32(i.Raw[1] >> 44 & 0xF)
}

// LastLevel returns the last mip level.
func (i Image) LastLevel() uint32 {
	return uint32(i.Raw[1] >> 48 & 0xF)
}

// Type returns the dimensionality field.
func (i Image) Type() ImageType {
	return ImageType(i.Raw[1] >> 60)
}
