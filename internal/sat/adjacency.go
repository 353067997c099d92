package sat

// buildAdjacency constructs the two per-literal companion indexes of a
// formula.
//
// adj[l] lists, for every clause occurrence of literal l, the clause's other
// two literals in clause order, encoded to the 1..2n space. The list is flat:
// entries 2i and 2i+1 are the companion pair of one occurrence, so its length
// is always even.
//
// adjOpp[l] is the adjacency of l's opposite. A pair (x, y) of adjOpp[l]
// therefore encodes a clause whose third literal is falsified whenever l is
// assigned, which is exactly the neighborhood the unit finder scans.
func buildAdjacency(f *Formula, pairSwap bool) (adj, adjOpp [][]Lit) {
	n := f.N
	adj = make([][]Lit, 2*n+1)
	adjOpp = make([][]Lit, 2*n+1)

	for k := 1; k <= f.M; k++ {
		a, b, c := f.Clause(k)
		ea, eb, ec := Encode(a, n), Encode(b, n), Encode(c, n)
		adj[ea] = append(adj[ea], eb, ec)
		adj[eb] = append(adj[eb], ea, ec)
		adj[ec] = append(adj[ec], ea, eb)
	}

	for l := Lit(1); int(l) <= 2*n; l++ {
		opp := adj[l.Opposite(n)]
		if len(opp) == 0 {
			continue
		}
		pairs := make([]Lit, len(opp))
		copy(pairs, opp)
		if pairSwap {
			normalizePairs(pairs, n)
		}
		adjOpp[l] = pairs
	}
	return adj, adjOpp
}

// normalizePairs applies the pair-swap normalization in two passes. First,
// every pair whose first literal has its opposite in the list's first column
// is swapped. Then, with the second column as it stands after that pass,
// every pair whose second literal has its opposite in the second column is
// swapped again, which can undo the first swap. The normalization only
// reorders within pairs; the set of pairs is unchanged.
func normalizePairs(pairs []Lit, n int) {
	column := func(offset int) []bool {
		col := make([]bool, 2*n+1)
		for i := offset; i < len(pairs); i += 2 {
			col[pairs[i]] = true
		}
		return col
	}

	left := column(0)
	for i := 0; i+1 < len(pairs); i += 2 {
		if left[pairs[i].Opposite(n)] {
			pairs[i], pairs[i+1] = pairs[i+1], pairs[i]
		}
	}

	right := column(1)
	for i := 0; i+1 < len(pairs); i += 2 {
		if right[pairs[i+1].Opposite(n)] {
			pairs[i], pairs[i+1] = pairs[i+1], pairs[i]
		}
	}
}
