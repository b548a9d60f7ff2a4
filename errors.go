// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/crtf

package crtf

import (
	"errors"
	"fmt"
)

// Package errors. Use errors.New for static messages, typed errors when values are needed.
var (
	ErrInvalidSize                = errors.New("invalid compressed rtf size")
	ErrInvalidCompType            = errors.New("invalid compression type")
	ErrInvalidDictionaryReference = errors.New("dictionary reference points past written data")
	ErrCorrupted                  = errors.New("decompressed data is not ascii")
	ErrUnexpectedEOF              = errors.New("unexpected end of input while reading control")
	ErrUnexpectedEOFToken         = errors.New("unexpected end of input inside control block")
	ErrNilReader                  = errors.New("reader is nil")
)

// SizeError reports an input or declared size that cannot hold a valid stream.
// It matches ErrInvalidSize with errors.Is.
type SizeError struct {
	Size uint32
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: 0x%x", ErrInvalidSize, e.Size)
}

func (e *SizeError) Unwrap() error { return ErrInvalidSize }

// CompTypeError reports an unrecognized COMPTYPE magic.
// It matches ErrInvalidCompType with errors.Is.
type CompTypeError struct {
	Value uint32
}

func (e *CompTypeError) Error() string {
	return fmt.Sprintf("%s: 0x%08x", ErrInvalidCompType, e.Value)
}

func (e *CompTypeError) Unwrap() error { return ErrInvalidCompType }
