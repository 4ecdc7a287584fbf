// SPDX-License-Identifier: MIT
// Package mmarket: sentinel error set.

package mmarket

import "errors"

var (
	// ErrBadBanner indicates a missing or unsupported %%MatrixMarket banner.
	ErrBadBanner = errors.New("mmarket: unsupported or malformed banner")

	// ErrBadSizeLine indicates a malformed rows/cols/nnz line.
	ErrBadSizeLine = errors.New("mmarket: malformed size line")

	// ErrBadEntry indicates a malformed coordinate entry line.
	ErrBadEntry = errors.New("mmarket: malformed entry line")

	// ErrTooFewEntries indicates the file ended before nnz entries.
	ErrTooFewEntries = errors.New("mmarket: fewer entries than the size line promises")

	// ErrNilMatrix indicates a nil matrix passed to Write.
	ErrNilMatrix = errors.New("mmarket: nil matrix")
)
