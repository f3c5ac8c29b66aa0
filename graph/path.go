package graph

// ancestorChain returns id's ancestors starting at id and ending at the
// graph's root, inclusive of both ends: [id, parent(id), ..., root].
func (g *Graph[T]) ancestorChain(id NodeId) ([]NodeId, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrUnknownNode
	}

	chain := []NodeId{id}
	for n.hasParent {
		n = g.nodes[n.parent]
		chain = append(chain, n.id)
	}
	return chain, nil
}

// GetPath returns the ordered edges of the unique tree path from `from`
// to `to`. The search walks both endpoints' ancestor chains up to their
// shared ancestor — the tree specialization of a breadth-first search,
// since a rooted tree has exactly one candidate path and no unexplored
// alternative branches to compare distances against. Edges on the
// `from`-to-ancestor leg are tagged Up; edges on the ancestor-to-`to` leg
// are tagged Down. GetPath(x, x) returns an empty, non-error path.
func (g *Graph[T]) GetPath(from, to NodeId) ([]Edge, error) {
	if from == to {
		if !g.HasVertex(from) {
			return nil, ErrUnknownNode
		}
		return nil, nil
	}

	fromChain, err := g.ancestorChain(from)
	if err != nil {
		return nil, err
	}
	toChain, err := g.ancestorChain(to)
	if err != nil {
		return nil, err
	}

	fromIndex := make(map[NodeId]int, len(fromChain))
	for i, id := range fromChain {
		fromIndex[id] = i
	}

	var lcaInFrom, lcaInTo int
	found := false
	for j, id := range toChain {
		if i, ok := fromIndex[id]; ok {
			lcaInFrom, lcaInTo = i, j
			found = true
			break
		}
	}
	if !found {
		return nil, ErrDisconnected
	}

	path := make([]Edge, 0, lcaInFrom+lcaInTo)
	for i := 0; i < lcaInFrom; i++ {
		path = append(path, Edge{From: fromChain[i], To: fromChain[i+1], Dir: Up})
	}
	for j := lcaInTo; j > 0; j-- {
		path = append(path, Edge{From: toChain[j], To: toChain[j-1], Dir: Down})
	}
	return path, nil
}
