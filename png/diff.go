package png

import "slices"

// ChunkDelta is one difference reported by Diff.
type ChunkDelta struct {
	Index int // position in the document the chunk comes from
	Chunk Chunk
}

// DiffResult lists the chunks only present on one side of a comparison.
type DiffResult struct {
	Removed []ChunkDelta // in a, missing from b
	Added   []ChunkDelta // in b, missing from a
}

// Empty reports whether both documents hold the same multiset of chunks.
func (r DiffResult) Empty() bool { return len(r.Removed) == 0 && len(r.Added) == 0 }

// Diff compares two documents as multisets of chunks keyed by type code and
// payload. Order is ignored: a document compared with a reordering of itself
// yields an empty result. Use Document.Equal for an order-sensitive check.
func Diff(a, b *Document) DiffResult {
	// fingerprint -> indexes into b not yet matched
	pending := make(map[uint64][]int, len(b.chunks))
	for i, c := range b.chunks {
		fp := c.Fingerprint()
		pending[fp] = append(pending[fp], i)
	}

	var res DiffResult
	matched := make([]bool, len(b.chunks))
	for i, c := range a.chunks {
		fp := c.Fingerprint()
		cands := pending[fp]
		j := slices.IndexFunc(cands, func(k int) bool { return b.chunks[k].Equal(c) })
		if j < 0 {
			res.Removed = append(res.Removed, ChunkDelta{Index: i, Chunk: c})
			continue
		}
		matched[cands[j]] = true
		pending[fp] = slices.Delete(cands, j, j+1)
	}
	for i, c := range b.chunks {
		if !matched[i] {
			res.Added = append(res.Added, ChunkDelta{Index: i, Chunk: c})
		}
	}
	return res
}
