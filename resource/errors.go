// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"fmt"

	"github.com/gogpu/gcn/ir"
)

// ErrorKind categorizes resource tracking failures.
type ErrorKind uint8

const (
	// ErrUnsupportedPattern indicates a handle-construction or
	// address-computation shape outside the recognized idiom set.
	ErrUnsupportedPattern ErrorKind = iota

	// ErrBindingConflict indicates a rediscovered descriptor disagrees
	// with the immutable fields registered for its binding.
	ErrBindingConflict

	// ErrCapacityExceeded indicates a resource list outgrew the
	// per-stage descriptor capacity of the target API.
	ErrCapacityExceeded
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedPattern:
		return "UnsupportedPattern"
	case ErrBindingConflict:
		return "BindingConflict"
	case ErrCapacityExceeded:
		return "CapacityExceeded"
	default:
		return "Unknown"
	}
}

// Error is a resource tracking failure. All kinds are unrecoverable for
// the shader being compiled.
type Error struct {
	Kind    ErrorKind
	Op      ir.Opcode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != ir.OpInvalid {
		return fmt.Sprintf("%v: %v: %s", e.Kind, e.Op, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func unsupportedf(op ir.Opcode, format string, args ...any) *Error {
	return &Error{Kind: ErrUnsupportedPattern, Op: op, Message: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) *Error {
	return &Error{Kind: ErrBindingConflict, Message: fmt.Sprintf(format, args...)}
}

func capacityf(format string, args ...any) *Error {
	return &Error{Kind: ErrCapacityExceeded, Message: fmt.Sprintf(format, args...)}
}
