// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"fmt"
	"testing"

	"github.com/gogpu/gcn/amdgpu"
)

type mapMemory map[uint64]uint32

func (m mapMemory) ReadDwords(addr uint64, dst []uint32) error {
	for i := range dst {
		v, ok := m[addr+uint64(4*i)]
		if !ok {
			return fmt.Errorf("unmapped address %#x", addr+uint64(4*i))
		}
		dst[i] = v
	}
	return nil
}

func TestReadUdDirect(t *testing.T) {
	info := &Info{}
	for i := range info.UserData {
		info.UserData[i] = uint32(100 + i)
	}

	got, err := info.ReadUd(amdgpu.NumScalarRegs, 4, 4)
	if err != nil {
		t.Fatalf("ReadUd: %v", err)
	}
	want := []uint32{104, 105, 106, 107}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dword %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestReadUdDirectOutOfRange(t *testing.T) {
	info := &Info{}
	if _, err := info.ReadUd(amdgpu.NumScalarRegs, 12, 8); err == nil {
		t.Error("expected out-of-range error for dword 12 count 8")
	}
}

func TestReadUdPointer(t *testing.T) {
	info := &Info{}
	info.UserData[6] = 0x4000
	info.UserData[7] = 0x1
	base := uint64(0x1_0000_4000)

	mem := mapMemory{}
	for i := uint64(0); i < 8; i++ {
		mem[base+8+4*i] = uint32(i)
	}
	info.Memory = mem

	got, err := info.ReadUd(6, 2, 8)
	if err != nil {
		t.Fatalf("ReadUd: %v", err)
	}
	for i := range got {
		if got[i] != uint32(i) {
			t.Errorf("dword %d: got %d, want %d", i, got[i], i)
		}
	}
}

func TestReadUdPointerErrors(t *testing.T) {
	tests := []struct {
		name     string
		ptrIndex uint32
		memory   ConstMemory
	}{
		{"pair out of range", amdgpu.NumUserDataRegs - 1, mapMemory{}},
		{"no memory reader", 6, nil},
		{"unmapped read", 6, mapMemory{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &Info{Memory: tt.memory}
			if _, err := info.ReadUd(tt.ptrIndex, 0, 4); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReadUdBuffer(t *testing.T) {
	info := &Info{}
	info.UserData[2] = 0xCAFE0000
	info.UserData[3] = 0x0000
	info.UserData[4] = 0xFFFF
	info.UserData[5] = 0

	buf, err := info.ReadUdBuffer(amdgpu.NumScalarRegs, 2)
	if err != nil {
		t.Fatalf("ReadUdBuffer: %v", err)
	}
	if got := buf.BaseAddress(); got != 0xCAFE0000 {
		t.Errorf("base address: got %#x, want 0xcafe0000", got)
	}
	if got := buf.NumRecords(); got != 0xFFFF {
		t.Errorf("num records: got %d, want %d", got, 0xFFFF)
	}
}

func TestVsharpPrefersInlineCbuf(t *testing.T) {
	inline := amdgpu.Buffer{Raw: [2]uint64{0x1120, 0xBBBB0000AAAA}}
	res := &BufferResource{SgprBase: 0xFFFFFFFF, InlineCbuf: inline}

	// No user-data table needed: the descriptor is carried inline.
	got, err := res.Vsharp(&Info{})
	if err != nil {
		t.Fatalf("Vsharp: %v", err)
	}
	if got != inline {
		t.Errorf("Vsharp: got %+v, want inline descriptor", got)
	}
}

func TestVsharpRereadsUserData(t *testing.T) {
	info := &Info{}
	info.UserData[2] = 0x1000
	info.UserData[4] = 64

	res := &BufferResource{SgprBase: amdgpu.NumScalarRegs, DwordOffset: 2}
	got, err := res.Vsharp(info)
	if err != nil {
		t.Fatalf("Vsharp: %v", err)
	}
	if got.BaseAddress() != 0x1000 || got.NumRecords() != 64 {
		t.Errorf("Vsharp: got base %#x records %d", got.BaseAddress(), got.NumRecords())
	}
}

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageVertex, "vs"},
		{StageFragment, "fs"},
		{StageCompute, "cs"},
		{Stage(99), "??"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}
