// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package gcn provides the resource-binding core of a Pure Go recompiler
// for AMD GCN shaders.
//
// GCN programs address buffers, images and samplers through hardware
// descriptors held implicitly in scalar registers or constant memory.
// Modern graphics APIs instead expect every resource in an explicit,
// numbered binding slot. This package bridges the two models: given a
// translated instruction graph (ir.Program), it recovers each descriptor
// the program references, assigns it a stable binding index, and rewrites
// the instruction stream to explicit linear addressing.
//
// Example usage:
//
//	info := &shader.Info{Stage: shader.StageFragment, ...}
//	program := buildProgram(info) // from the instruction-graph builder
//	if err := gcn.TrackResources(ctx, program); err != nil {
//	    return err
//	}
//	// info.Buffers, info.Images and info.Samplers are now populated and
//	// the graph is patched; hand both to the code generator.
//
// Binding assignment is deterministic for identical inputs, which makes
// the populated lists usable as part of a compiled-artifact cache key.
package gcn

import (
	"context"

	"github.com/gogpu/gcn/ir"
	"github.com/gogpu/gcn/resource"
)

// TrackResources runs the resource tracking pass on a translated program
// with default options. See the resource package for details and failure
// semantics.
func TrackResources(ctx context.Context, program *ir.Program) error {
	return resource.Track(ctx, program)
}

// TrackResourcesWithOptions runs the resource tracking pass with explicit
// options.
func TrackResourcesWithOptions(ctx context.Context, program *ir.Program, opts resource.Options) error {
	return resource.TrackWithOptions(ctx, program, opts)
}
