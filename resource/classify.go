// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"github.com/gogpu/gcn/ir"
	"github.com/gogpu/gcn/shader"
)

func isBufferInstruction(op ir.Opcode) bool {
	switch op {
	case ir.OpLoadBufferF32,
		ir.OpLoadBufferF32x2,
		ir.OpLoadBufferF32x3,
		ir.OpLoadBufferF32x4,
		ir.OpLoadBufferU32,
		ir.OpReadConstBuffer,
		ir.OpReadConstBufferU32,
		ir.OpStoreBufferF32,
		ir.OpStoreBufferF32x2,
		ir.OpStoreBufferF32x3,
		ir.OpStoreBufferF32x4,
		ir.OpStoreBufferU32:
		return true
	default:
		return false
	}
}

func isBufferStore(op ir.Opcode) bool {
	switch op {
	case ir.OpStoreBufferF32,
		ir.OpStoreBufferF32x2,
		ir.OpStoreBufferF32x3,
		ir.OpStoreBufferF32x4,
		ir.OpStoreBufferU32:
		return true
	default:
		return false
	}
}

func bufferDataType(op ir.Opcode) shader.UsedTypes {
	switch op {
	case ir.OpLoadBufferU32, ir.OpReadConstBufferU32, ir.OpStoreBufferU32:
		return shader.UsedU32
	default:
		return shader.UsedF32
	}
}

func isImageInstruction(op ir.Opcode) bool {
	switch op {
	case ir.OpImageSampleExplicitLod,
		ir.OpImageSampleImplicitLod,
		ir.OpImageSampleDrefExplicitLod,
		ir.OpImageSampleDrefImplicitLod,
		ir.OpImageFetch,
		ir.OpImageGather,
		ir.OpImageGatherDref,
		ir.OpImageQueryDimensions,
		ir.OpImageQueryLod,
		ir.OpImageGradient,
		ir.OpImageRead,
		ir.OpImageWrite:
		return true
	default:
		return isImageAtomic(op)
	}
}

// Storage image accesses require a read/write-capable binding kind.
func isImageStorageInstruction(op ir.Opcode) bool {
	switch op {
	case ir.OpImageRead, ir.OpImageWrite:
		return true
	default:
		return isImageAtomic(op)
	}
}

func isImageAtomic(op ir.Opcode) bool {
	switch op {
	case ir.OpImageAtomicIAdd32,
		ir.OpImageAtomicSMin32,
		ir.OpImageAtomicUMin32,
		ir.OpImageAtomicSMax32,
		ir.OpImageAtomicUMax32,
		ir.OpImageAtomicInc32,
		ir.OpImageAtomicDec32,
		ir.OpImageAtomicAnd32,
		ir.OpImageAtomicOr32,
		ir.OpImageAtomicXor32,
		ir.OpImageAtomicExchange32:
		return true
	default:
		return false
	}
}
