// SPDX-License-Identifier: MIT

// Package mmarket reads and writes sparse matrices in the Matrix Market
// coordinate exchange format (https://math.nist.gov/MatrixMarket/).
//
// Supported banner: `%%MatrixMarket matrix coordinate real general` or
// `… coordinate real symmetric`. Symmetric files store one triangle;
// Read mirrors every off-diagonal entry so the returned triplet holds the
// full matrix. Write always emits `general`, one entry per stored triplet
// slot, one-based indices.
//
// Lines starting with '%' after the banner are comments and are skipped.
package mmarket
