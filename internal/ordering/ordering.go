// Package ordering holds the positional rules of the board: dense zero-based
// positions within a scope, and applying a caller-supplied total order to a scope.
//
// A scope is the set of siblings sharing an ordering domain: every column on the
// board, or every card of one column. The functions here are pure; persisting the
// result is the job of the database package.
package ordering

import "sort"

// Entry is one member of a scope.
type Entry struct {
	ID       int
	Position int
	// Pinned marks an entry the caller placed explicitly. Pinned entries win
	// position ties during normalization.
	Pinned bool
}

// Normalize renumbers a scope 0,1,2,... following the existing relative order
// (position ascending, pinned first on ties, then lowest ID). The input slice is
// not modified.
func Normalize(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		return a.ID < b.ID
	})

	for i := range out {
		out[i].Position = i
		out[i].Pinned = false
	}
	return out
}

// Apply writes the caller's order onto the scope and normalizes the result.
//
// Each ID in order that is a member of the scope is placed at its index in the
// list; when an ID repeats, its last occurrence wins. IDs that are not members
// are skipped and returned so the caller can log them. Members the list does not
// name keep their relative order and fill the remaining slots.
func Apply(entries []Entry, order []int) (result []Entry, skipped []int) {
	index := make(map[int]int, len(entries))
	placed := make([]Entry, len(entries))
	for i, e := range entries {
		index[e.ID] = i
		placed[i] = e
	}

	for pos, id := range order {
		i, ok := index[id]
		if !ok {
			skipped = append(skipped, id)
			continue
		}
		placed[i].Position = pos
		placed[i].Pinned = true
	}

	return Normalize(placed), skipped
}

// Append returns the position a new member takes at the end of the scope.
func Append(entries []Entry) int {
	next := 0
	for _, e := range entries {
		if e.Position >= next {
			next = e.Position + 1
		}
	}
	return next
}

// Changed returns the entries of after whose position differs from before,
// keyed by ID. Entries absent from before are always reported.
func Changed(before, after []Entry) map[int]int {
	prev := make(map[int]int, len(before))
	for _, e := range before {
		prev[e.ID] = e.Position
	}

	changed := make(map[int]int)
	for _, e := range after {
		if p, ok := prev[e.ID]; !ok || p != e.Position {
			changed[e.ID] = e.Position
		}
	}
	return changed
}

// Dense reports whether positions are exactly 0..len-1 in some order.
func Dense(positions []int) bool {
	seen := make([]bool, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(positions) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
