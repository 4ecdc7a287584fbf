// SPDX-License-Identifier: MIT
// Package mmarket: the coordinate-format reader and writer.

package mmarket

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlsparse/triplet"
)

// banner tokens accepted by Read (case-insensitive, as the format requires).
const (
	tokenHeader     = "%%matrixmarket"
	tokenMatrix     = "matrix"
	tokenCoordinate = "coordinate"
	tokenReal       = "real"
	tokenGeneral    = "general"
	tokenSymmetric  = "symmetric"
)

// Read parses a Matrix Market coordinate file into a triplet matrix.
//
// Stage 1 (Validate): banner must declare a coordinate real matrix,
// general or symmetric.
// Stage 2 (Execute): parse the size line, then nnz one-based entries.
// Symmetric files carry one triangle; every off-diagonal entry is
// mirrored so the result holds the full matrix.
// Stage 3 (Finalize): the returned matrix's Len() is the expanded entry
// count; its capacity may exceed it for symmetric inputs.
// Complexity: O(nnz) time and memory.
func Read(path string) (*triplet.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmarket: open: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, ErrBadBanner
	}
	symmetric, err := parseBanner(sc.Text())
	if err != nil {
		return nil, err
	}

	line := 1
	var t *triplet.Matrix
	var want, got int
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}

		if t == nil {
			// First non-comment line is the size line.
			var m, n int
			m, n, want, err = parseSizeLine(text)
			if err != nil {
				return nil, fmt.Errorf("%w (line %d)", err, line)
			}
			max := want
			if symmetric {
				max = 2 * want // room to mirror every off-diagonal
			}
			if max < 1 {
				max = 1
			}
			if t, err = triplet.New(m, n, max); err != nil {
				return nil, fmt.Errorf("%w (line %d): %v", ErrBadSizeLine, line, err)
			}

			continue
		}

		if got == want {
			return nil, fmt.Errorf("%w (line %d): more entries than the size line promises", ErrBadEntry, line)
		}
		i, j, v, err := parseEntry(text)
		if err != nil {
			return nil, fmt.Errorf("%w (line %d)", err, line)
		}
		if err = t.Put(i-1, j-1, v); err != nil {
			return nil, fmt.Errorf("%w (line %d): %v", ErrBadEntry, line, err)
		}
		if symmetric && i != j {
			if err = t.Put(j-1, i-1, v); err != nil {
				return nil, fmt.Errorf("%w (line %d): %v", ErrBadEntry, line, err)
			}
		}
		got++
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("mmarket: read: %w", err)
	}
	if t == nil {
		return nil, ErrBadSizeLine
	}
	if got != want {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrTooFewEntries, want, got)
	}

	return t, nil
}

// Write stores the triplet matrix at path in coordinate format (general
// kind, one line per stored entry, one-based indices). Duplicate slots
// are written as-is; readers sum them.
// Complexity: O(nnz).
func Write(path string, t *triplet.Matrix) error {
	if t == nil {
		return ErrNilMatrix
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mmarket: create: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	m, n := t.Dims()
	fmt.Fprintf(w, "%%%%MatrixMarket matrix coordinate real general\n")
	fmt.Fprintf(w, "%d %d %d\n", m, n, t.Len())

	ti, tj, tx := t.RowIndices(), t.ColIndices(), t.Values()
	var k int
	for k = 0; k < len(tx); k++ {
		fmt.Fprintf(w, "%d %d %s\n",
			ti[k]+1, tj[k]+1, strconv.FormatFloat(tx[k], 'g', -1, 64))
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("mmarket: write: %w", err)
	}

	return nil
}

// parseBanner validates the %%MatrixMarket line and reports whether the
// file is symmetric.
func parseBanner(s string) (symmetric bool, err error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) != 5 ||
		fields[0] != tokenHeader ||
		fields[1] != tokenMatrix ||
		fields[2] != tokenCoordinate ||
		fields[3] != tokenReal {
		return false, ErrBadBanner
	}
	switch fields[4] {
	case tokenGeneral:
		return false, nil
	case tokenSymmetric:
		return true, nil
	default:
		return false, ErrBadBanner
	}
}

// parseSizeLine parses "rows cols nnz".
func parseSizeLine(s string) (m, n, nnz int, err error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, 0, 0, ErrBadSizeLine
	}
	if m, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, ErrBadSizeLine
	}
	if n, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, ErrBadSizeLine
	}
	if nnz, err = strconv.Atoi(fields[2]); err != nil {
		return 0, 0, 0, ErrBadSizeLine
	}

	return m, n, nnz, nil
}

// parseEntry parses "i j value" with one-based indices.
func parseEntry(s string) (i, j int, v float64, err error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, 0, 0, ErrBadEntry
	}
	if i, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, ErrBadEntry
	}
	if j, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, ErrBadEntry
	}
	if v, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return 0, 0, 0, ErrBadEntry
	}

	return i, j, v, nil
}
