// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"context"
	"slices"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/gogpu/gcn/ir"
)

// Options configures the resource tracking pass.
type Options struct {
	// RetypeUntypedLoads enables the transitional step that rewrites
	// float buffer loads feeding integer bitcasts into typed integer
	// loads before tracking runs. Off by default: tracking does not
	// depend on its output.
	RetypeUntypedLoads bool
}

// DefaultOptions returns the options used by Track.
func DefaultOptions() Options {
	return Options{}
}

// Track discovers every buffer, image and sampler descriptor the program
// references, populates the resource lists on its Info record, and patches
// the instruction stream to address resources by binding index.
//
// It must run after load typing is final and before codegen reads the
// Info lists. Each block and instruction is visited exactly once, in the
// program's fixed traversal order, so binding assignment is deterministic
// for identical inputs.
func Track(ctx context.Context, program *ir.Program) error {
	return TrackWithOptions(ctx, program, DefaultOptions())
}

// TrackWithOptions is Track with explicit options.
func TrackWithOptions(ctx context.Context, program *ir.Program, opts Options) error {
	tr := tlog.SpanFromContext(ctx)

	if opts.RetypeUntypedLoads {
		retypeUntypedLoads(program)
	}

	info := program.Info
	descs := &descriptors{info: info, tr: tr}

	for bi, block := range program.Blocks {
		// Patchers insert address arithmetic into the block while we
		// walk it, so iterate a snapshot; new instructions never
		// classify as buffer or image accesses.
		insts := slices.Clone(block.Instructions())
		for pos, id := range insts {
			inst := program.Inst(id)
			if inst.IsInvalidated() {
				continue
			}
			grown := block.Len() - len(insts)
			switch op := inst.Opcode(); {
			case isBufferInstruction(op):
				if err := patchBufferInstruction(program, block, pos+grown, id, info, descs); err != nil {
					return errors.Wrap(err, "block %v inst %v", bi, id)
				}
			case isImageInstruction(op):
				if err := patchImageInstruction(program, block, pos+grown, id, info, descs); err != nil {
					return errors.Wrap(err, "block %v inst %v", bi, id)
				}
			}
		}
	}

	tr.Printw("resource tracking done", "stage", info.Stage,
		"buffers", len(info.Buffers), "images", len(info.Images), "samplers", len(info.Samplers))

	return nil
}

// retypeUntypedLoads rewrites float buffer loads whose only consumer is an
// integer bitcast into the equivalent typed integer load. Untyped loads
// default to float; the bitcast proves the data was integer all along.
func retypeUntypedLoads(program *ir.Program) {
	for _, block := range program.Blocks {
		for _, id := range block.Instructions() {
			inst := program.Inst(id)
			if inst.Opcode() != ir.OpBitCastU32F32 {
				continue
			}
			src := program.ArgInst(inst.Arg(0))
			if src == nil {
				continue
			}
			replace := func(newOp ir.Opcode) {
				inst.SetOpcode(newOp)
				inst.SetArg(0, src.Arg(0))
				inst.SetArg(1, src.Arg(1))
				inst.SetFlags(src.Flags())
				src.Invalidate()
			}
			switch src.Opcode() {
			case ir.OpReadConstBuffer:
				replace(ir.OpReadConstBufferU32)
			case ir.OpLoadBufferF32:
				replace(ir.OpLoadBufferU32)
			}
		}
	}
}
