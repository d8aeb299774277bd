// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package amdgpu

// NumberFormat is the numeric interpretation of a buffer or image element.
type NumberFormat uint32

const (
	NumberUnorm NumberFormat = iota
	NumberSnorm
	NumberUscaled
	NumberSscaled
	NumberUint
	NumberSint
	NumberSnormNz
	NumberFloat
	numberReserved8
	NumberSrgb
	NumberUbnorm
	NumberUbnormNz
	NumberUbint
	NumberUbscaled
)

// String returns a human-readable format name.
func (f NumberFormat) String() string {
	switch f {
	case NumberUnorm:
		return "Unorm"
	case NumberSnorm:
		return "Snorm"
	case NumberUscaled:
		return "Uscaled"
	case NumberSscaled:
		return "Sscaled"
	case NumberUint:
		return "Uint"
	case NumberSint:
		return "Sint"
	case NumberSnormNz:
		return "SnormNz"
	case NumberFloat:
		return "Float"
	case NumberSrgb:
		return "Srgb"
	case NumberUbnorm:
		return "Ubnorm"
	case NumberUbnormNz:
		return "UbnormNz"
	case NumberUbint:
		return "Ubint"
	case NumberUbscaled:
		return "Ubscaled"
	default:
		return "Unknown"
	}
}

// DataFormat is the component layout of a buffer or image element.
type DataFormat uint32

const (
	FormatInvalid DataFormat = iota
	Format8
	Format16
	Format8_8
	Format32
	Format16_16
	Format10_11_11
	Format11_11_10
	Format10_10_10_2
	Format2_10_10_10
	Format8_8_8_8
	Format32_32
	Format16_16_16_16
	Format32_32_32
	Format32_32_32_32
)

// String returns a human-readable format name.
func (f DataFormat) String() string {
	switch f {
	case FormatInvalid:
		return "Invalid"
	case Format8:
		return "8"
	case Format16:
		return "16"
	case Format8_8:
		return "8_8"
	case Format32:
		return "32"
	case Format16_16:
		return "16_16"
	case Format10_11_11:
		return "10_11_11"
	case Format11_11_10:
		return "11_11_10"
	case Format10_10_10_2:
		return "10_10_10_2"
	case Format2_10_10_10:
		return "2_10_10_10"
	case Format8_8_8_8:
		return "8_8_8_8"
	case Format32_32:
		return "32_32"
	case Format16_16_16_16:
		return "16_16_16_16"
	case Format32_32_32:
		return "32_32_32"
	case Format32_32_32_32:
		return "32_32_32_32"
	default:
		return "Unknown"
	}
}
