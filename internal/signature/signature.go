// Package signature computes opaque pool signatures. The engine only ever
// compares signatures for equality; the hashing here exists so that adding,
// removing, or reordering candidates invalidates any in-flight shuffle bag.
package signature

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// #region of-items

// OfItems derives a signature from an ordered list of candidate
// identifiers. Items are length-prefixed before hashing so that
// ["ab","c"] and ["a","bc"] do not collide.
func OfItems(items []string) string {
	h := fnv.New64a()
	var lenBuf [8]byte
	for _, item := range items {
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(item)))
		h.Write(lenBuf[:])
		h.Write([]byte(item))
	}
	return fmt.Sprintf("%d:%016x", len(items), h.Sum64())
}

// #endregion of-items

// #region of-total

// OfTotal derives a signature from a bare pool size, for callers whose
// candidates have no stable identifiers. Any resize restarts the bag.
func OfTotal(total int) string {
	return fmt.Sprintf("total:%d", total)
}

// #endregion of-total
