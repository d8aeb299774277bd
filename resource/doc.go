// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package resource recovers the hardware descriptors a translated GCN
// shader references and rewrites its instruction graph to use explicit
// binding slots.
//
// GCN programs carry no "this is buffer N" annotation: descriptors are
// loaded implicitly from scalar registers or constant memory through a
// small set of address-computation idioms. The pass walks the def-use
// graph backwards from every buffer and image instruction, matches those
// idioms, interns each discovered descriptor into the per-stage resource
// lists on shader.Info, and patches handle, address, coordinate and
// offset operands into the explicit forms the code generator expects.
//
// The pass runs once per program, visits every instruction exactly once,
// and is fully deterministic: binding indices depend only on traversal
// order over the input graph, so identical inputs produce identical
// resource lists. Unsupported idioms, conflicting descriptor reuse and
// resource-list overflow abort the compilation; there is no fallback for
// a miscomputed binding.
package resource
