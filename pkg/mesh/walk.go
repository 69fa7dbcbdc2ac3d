package mesh

import "github.com/pkg/errors"

// VertexStar возвращает полуребра, выходящие из v, в порядке обхода против
// часовой стрелки начиная с EdgeOfVertex(v).
func (t *Triangulation) VertexStar(v Index) ([]Index, error) {
	start, err := t.EdgeOfVertex(v)
	if err != nil {
		return nil, err
	}
	if start == None {
		return nil, nil
	}

	star := []Index{start}
	cur, err := t.CCWEdgeToVertex(start)
	if err != nil {
		return nil, err
	}
	for cur != start {
		if len(star) >= len(t.halfEdges) {
			return nil, errors.WithMessagef(ErrTopology, "rotation around vertex %d does not close", v)
		}
		star = append(star, cur)
		if cur, err = t.CCWEdgeToVertex(cur); err != nil {
			return nil, err
		}
	}
	return star, nil
}

// BoundaryLoops возвращает граничные циклы; каждый начинается с наименьшего
// индекса внешнего полуребра в нем.
func (t *Triangulation) BoundaryLoops() ([][]Index, error) {
	visited := make([]bool, t.nBorder)
	var loops [][]Index

	for e := Index(t.nInterior); int(e) < len(t.halfEdges); e++ {
		if visited[int(e)-t.nInterior] {
			continue
		}
		loop := []Index{e}
		visited[int(e)-t.nInterior] = true

		cur := t.halfEdges[e].Next
		for cur != e {
			if !t.IsExterior(cur) || visited[int(cur)-t.nInterior] {
				return nil, errors.WithMessagef(ErrTopology, "boundary loop from %d reaches %d", e, cur)
			}
			visited[int(cur)-t.nInterior] = true
			loop = append(loop, cur)
			cur = t.halfEdges[cur].Next
		}
		loops = append(loops, loop)
	}
	return loops, nil
}

// Edges перечисляет каждое неориентированное ребро один раз
func (t *Triangulation) Edges() []Edge {
	edges := make([]Edge, 0, (t.nInterior+t.nBorder)/2)
	for i, he := range t.halfEdges {
		if Index(i) > he.Twin {
			continue
		}
		edges = append(edges, Edge{
			A:      he.Origin,
			B:      t.halfEdges[he.Twin].Origin,
			Border: t.IsExterior(he.Twin),
		})
	}
	return edges
}

// Validate перепроверяет инварианты построенной структуры
func (t *Triangulation) Validate() error {
	for i, he := range t.halfEdges {
		e := Index(i)
		twin, err := t.halfEdge(he.Twin)
		if err != nil {
			return errors.WithMessagef(ErrTopology, "half-edge %d has no twin", e)
		}
		if he.Twin == e || twin.Twin != e {
			return errors.WithMessagef(ErrTopology, "twin of %d is not an involution", e)
		}
		next, err := t.halfEdge(he.Next)
		if err != nil {
			return errors.WithMessagef(ErrTopology, "half-edge %d has no next", e)
		}
		if next.Prev != e {
			return errors.WithMessagef(ErrTopology, "prev(next(%d)) != %d", e, e)
		}
		if next.Origin != twin.Origin {
			return errors.WithMessagef(ErrTopology, "origin(next(%d)) != target(%d)", e, e)
		}
		if he.IsBorder != t.IsExterior(e) {
			return errors.WithMessagef(ErrTopology, "border flag of %d does not match its kind", e)
		}
		if !t.IsExterior(e) && t.halfEdges[next.Next].Next != e {
			return errors.WithMessagef(ErrTopology, "face of %d is not a triangle", e)
		}
	}

	for i, v := range t.vertices {
		var touchesBorder bool
		star, err := t.VertexStar(Index(i))
		if err != nil {
			return err
		}
		for _, e := range star {
			if t.IsExterior(e) || t.IsExterior(t.halfEdges[e].Twin) {
				touchesBorder = true
			}
		}
		if touchesBorder != v.IsBorder {
			return errors.WithMessagef(ErrTopology, "border flag of vertex %d does not match its edges", i)
		}
	}

	if _, err := t.BoundaryLoops(); err != nil {
		return err
	}
	return nil
}
