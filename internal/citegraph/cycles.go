// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citegraph

// ringPapers enumerates elementary cycles up to maxLen nodes and returns the
// union of members of cycles with length >= 3, in corpus order. Each cycle is
// anchored at its lowest-index node and the search never descends below the
// anchor, so no cycle is found twice. Full elementary-cycle enumeration is
// exponential in the worst case; maxLen keeps the search tractable.
func ringPapers(order []string, adjacency map[string][]string, maxLen int) []string {
	if maxLen < 3 {
		maxLen = 3
	}

	index := make(map[string]int, len(order))
	for i, id := range order {
		index[id] = i
	}

	inRing := make(map[string]bool)
	onPath := make(map[string]bool)
	var path []string

	var dfs func(anchor, node string)
	dfs = func(anchor, node string) {
		path = append(path, node)
		onPath[node] = true

		for _, next := range adjacency[node] {
			if next == anchor {
				if len(path) >= 3 {
					for _, member := range path {
						inRing[member] = true
					}
				}
				continue
			}
			if onPath[next] || index[next] < index[anchor] || len(path) >= maxLen {
				continue
			}
			dfs(anchor, next)
		}

		onPath[node] = false
		path = path[:len(path)-1]
	}

	for _, anchor := range order {
		dfs(anchor, anchor)
	}

	var rings []string
	for _, id := range order {
		if inRing[id] {
			rings = append(rings, id)
		}
	}
	return rings
}
