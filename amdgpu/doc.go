// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package amdgpu decodes the fixed-layout hardware descriptors ("sharps")
// used by AMD GCN shaders.
//
// A sharp is a bit-packed structure normally held in scalar registers or
// constant memory: a buffer descriptor (V#, 128 bits), an image descriptor
// (T#, 256 bits) or a sampler descriptor (S#, 128 bits). The decoders here
// take the raw dwords as read from the shader's user-data table or constant
// memory and expose the fields the recompiler needs.
package amdgpu

// NumScalarRegs is the number of scalar general purpose registers on GCN.
// It doubles as the sentinel base for descriptors addressed directly in the
// user-data table rather than through a register pair holding a pointer.
const NumScalarRegs = 104

// NumUserDataRegs is the size of the user-data table: the initial scalar
// register file snapshot supplied to a shader at launch.
const NumUserDataRegs = 16
