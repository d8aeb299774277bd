// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package ir defines the instruction graph produced by translating GCN
// shaders.
//
// The IR is designed to be:
//   - Stable: instructions live in a per-program arena addressed by InstID
//     handles; operand edges are non-owning references into the arena and
//     never dangle, even across in-place patching.
//   - Mutable in place: passes replace operands and opcodes without moving
//     instructions; removal is logical (Invalidate), never physical.
//   - Cyclic-safe: Phi merge instructions may form cycles through loops, so
//     traversal code tracks visited handles instead of assuming acyclicity.
//
// # Structure
//
// A Program owns the instruction arena, the blocks (kept in the traversal
// order used by passes) and the shared per-stage shader.Info record that
// passes populate for the code generator.
package ir
