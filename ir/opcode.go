// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ir

// Opcode identifies an instruction kind.
//
// The set is closed: classification predicates switch over it exhaustively,
// which is why opcode families are kept contiguous.
type Opcode uint16

const (
	OpInvalid Opcode = iota

	// Control/data merge
	OpPhi

	// Scalar sources
	OpGetUserData // arg0: scalar register index
	OpReadConst   // arg0: 64-bit address pair, arg1: byte offset

	// Untyped constant-buffer reads
	OpReadConstBuffer
	OpReadConstBufferU32

	// Buffer loads
	OpLoadBufferF32
	OpLoadBufferF32x2
	OpLoadBufferF32x3
	OpLoadBufferF32x4
	OpLoadBufferU32

	// Buffer stores
	OpStoreBufferF32
	OpStoreBufferF32x2
	OpStoreBufferF32x3
	OpStoreBufferF32x4
	OpStoreBufferU32

	// Image sampling
	OpImageSampleImplicitLod
	OpImageSampleExplicitLod
	OpImageSampleDrefImplicitLod
	OpImageSampleDrefExplicitLod
	OpImageFetch
	OpImageGather
	OpImageGatherDref
	OpImageQueryDimensions
	OpImageQueryLod
	OpImageGradient
	OpImageRead
	OpImageWrite

	// Image atomics
	OpImageAtomicIAdd32
	OpImageAtomicSMin32
	OpImageAtomicUMin32
	OpImageAtomicSMax32
	OpImageAtomicUMax32
	OpImageAtomicInc32
	OpImageAtomicDec32
	OpImageAtomicAnd32
	OpImageAtomicOr32
	OpImageAtomicXor32
	OpImageAtomicExchange32

	// Composites
	OpCompositeConstructU32x2
	OpCompositeConstructU32x4
	OpCompositeConstructF32x2
	OpCompositeConstructF32x3
	OpCompositeConstructF32x4
	OpCompositeExtract // arg0: composite, arg1: component index

	// Scalar ALU
	OpIAdd32
	OpIMul32
	OpShiftRightLogical32
	OpBitFieldUExtract
	OpBitwiseAnd32
	OpIEqual
	OpSelectU32
	OpFPSub32
	OpBitCastU32F32

	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	OpInvalid:                    "Invalid",
	OpPhi:                        "Phi",
	OpGetUserData:                "GetUserData",
	OpReadConst:                  "ReadConst",
	OpReadConstBuffer:            "ReadConstBuffer",
	OpReadConstBufferU32:         "ReadConstBufferU32",
	OpLoadBufferF32:              "LoadBufferF32",
	OpLoadBufferF32x2:            "LoadBufferF32x2",
	OpLoadBufferF32x3:            "LoadBufferF32x3",
	OpLoadBufferF32x4:            "LoadBufferF32x4",
	OpLoadBufferU32:              "LoadBufferU32",
	OpStoreBufferF32:             "StoreBufferF32",
	OpStoreBufferF32x2:           "StoreBufferF32x2",
	OpStoreBufferF32x3:           "StoreBufferF32x3",
	OpStoreBufferF32x4:           "StoreBufferF32x4",
	OpStoreBufferU32:             "StoreBufferU32",
	OpImageSampleImplicitLod:     "ImageSampleImplicitLod",
	OpImageSampleExplicitLod:     "ImageSampleExplicitLod",
	OpImageSampleDrefImplicitLod: "ImageSampleDrefImplicitLod",
	OpImageSampleDrefExplicitLod: "ImageSampleDrefExplicitLod",
	OpImageFetch:                 "ImageFetch",
	OpImageGather:                "ImageGather",
	OpImageGatherDref:            "ImageGatherDref",
	OpImageQueryDimensions:       "ImageQueryDimensions",
	OpImageQueryLod:              "ImageQueryLod",
	OpImageGradient:              "ImageGradient",
	OpImageRead:                  "ImageRead",
	OpImageWrite:                 "ImageWrite",
	OpImageAtomicIAdd32:          "ImageAtomicIAdd32",
	OpImageAtomicSMin32:          "ImageAtomicSMin32",
	OpImageAtomicUMin32:          "ImageAtomicUMin32",
	OpImageAtomicSMax32:          "ImageAtomicSMax32",
	OpImageAtomicUMax32:          "ImageAtomicUMax32",
	OpImageAtomicInc32:           "ImageAtomicInc32",
	OpImageAtomicDec32:           "ImageAtomicDec32",
	OpImageAtomicAnd32:           "ImageAtomicAnd32",
	OpImageAtomicOr32:            "ImageAtomicOr32",
	OpImageAtomicXor32:           "ImageAtomicXor32",
	OpImageAtomicExchange32:      "ImageAtomicExchange32",
	OpCompositeConstructU32x2:    "CompositeConstructU32x2",
	OpCompositeConstructU32x4:    "CompositeConstructU32x4",
	OpCompositeConstructF32x2:    "CompositeConstructF32x2",
	OpCompositeConstructF32x3:    "CompositeConstructF32x3",
	OpCompositeConstructF32x4:    "CompositeConstructF32x4",
	OpCompositeExtract:           "CompositeExtract",
	OpIAdd32:                     "IAdd32",
	OpIMul32:                     "IMul32",
	OpShiftRightLogical32:        "ShiftRightLogical32",
	OpBitFieldUExtract:           "BitFieldUExtract",
	OpBitwiseAnd32:               "BitwiseAnd32",
	OpIEqual:                     "IEqual",
	OpSelectU32:                  "SelectU32",
	OpFPSub32:                    "FPSub32",
	OpBitCastU32F32:              "BitCastU32F32",
}

// String returns the opcode mnemonic.
func (op Opcode) String() string {
	if op >= numOpcodes {
		return "Unknown"
	}
	return opcodeNames[op]
}
