// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"tlog.app/go/tlog"

	"github.com/gogpu/gcn/shader"
)

// descriptors is a transient find-or-insert view over the three resource
// lists of an Info record. Binding index equals list position, assigned on
// first encounter in traversal order.
type descriptors struct {
	info *shader.Info
	tr   tlog.Span
}

func (d *descriptors) addBuffer(desc shader.BufferResource) (uint32, error) {
	for i := range d.info.Buffers {
		existing := &d.info.Buffers[i]
		if existing.SgprBase != desc.SgprBase ||
			existing.DwordOffset != desc.DwordOffset ||
			existing.InlineCbuf != desc.InlineCbuf {
			continue
		}
		// Stride and record count are fixed at first registration. A
		// mismatch means the same memory was interpreted two
		// incompatible ways.
		if existing.Stride != desc.Stride || existing.NumRecords != desc.NumRecords {
			return 0, conflictf(
				"buffer at s%d+%d reinterpreted: stride %d records %d, previously stride %d records %d",
				desc.SgprBase, desc.DwordOffset, desc.Stride, desc.NumRecords,
				existing.Stride, existing.NumRecords)
		}
		existing.IsStorage = existing.IsStorage || desc.IsStorage
		existing.UsedTypes |= desc.UsedTypes
		return uint32(i), nil
	}
	if len(d.info.Buffers) >= shader.MaxResourceCount {
		return 0, capacityf("buffer bindings exceed per-stage capacity %d", shader.MaxResourceCount)
	}
	index := uint32(len(d.info.Buffers))
	d.info.Buffers = append(d.info.Buffers, desc)
	d.tr.Printw("buffer binding", "index", index,
		"sgpr_base", desc.SgprBase, "dword_offset", desc.DwordOffset,
		"stride", desc.Stride, "num_records", desc.NumRecords, "storage", desc.IsStorage)
	return index, nil
}

func (d *descriptors) addImage(desc shader.ImageResource) (uint32, error) {
	for i := range d.info.Images {
		existing := &d.info.Images[i]
		if existing.SgprBase == desc.SgprBase &&
			existing.DwordOffset == desc.DwordOffset &&
			existing.Type == desc.Type &&
			existing.IsStorage == desc.IsStorage {
			return uint32(i), nil
		}
	}
	if len(d.info.Images) >= shader.MaxResourceCount {
		return 0, capacityf("image bindings exceed per-stage capacity %d", shader.MaxResourceCount)
	}
	index := uint32(len(d.info.Images))
	d.info.Images = append(d.info.Images, desc)
	d.tr.Printw("image binding", "index", index,
		"sgpr_base", desc.SgprBase, "dword_offset", desc.DwordOffset,
		"type", desc.Type, "storage", desc.IsStorage, "depth", desc.IsDepth)
	return index, nil
}

func (d *descriptors) addSampler(desc shader.SamplerResource) (uint32, error) {
	for i := range d.info.Samplers {
		existing := &d.info.Samplers[i]
		if existing.SgprBase == desc.SgprBase && existing.DwordOffset == desc.DwordOffset {
			return uint32(i), nil
		}
	}
	if len(d.info.Samplers) >= shader.MaxResourceCount {
		return 0, capacityf("sampler bindings exceed per-stage capacity %d", shader.MaxResourceCount)
	}
	index := uint32(len(d.info.Samplers))
	d.info.Samplers = append(d.info.Samplers, desc)
	d.tr.Printw("sampler binding", "index", index,
		"sgpr_base", desc.SgprBase, "dword_offset", desc.DwordOffset,
		"disable_aniso", desc.DisableAniso)
	return index, nil
}
