package mesh

import "github.com/pkg/errors"

func (t *Triangulation) halfEdge(e Index) (*HalfEdge, error) {
	if e < 0 || int(e) >= len(t.halfEdges) {
		return nil, errors.WithMessagef(ErrOutOfRange, "half-edge %d not in [0, %d)", e, len(t.halfEdges))
	}
	return &t.halfEdges[e], nil
}

func (t *Triangulation) vertex(v Index) (*Vertex, error) {
	if v < 0 || int(v) >= len(t.vertices) {
		return nil, errors.WithMessagef(ErrOutOfRange, "vertex %d not in [0, %d)", v, len(t.vertices))
	}
	return &t.vertices[v], nil
}

// HalfEdgeAt возвращает копию полуребра e
func (t *Triangulation) HalfEdgeAt(e Index) (HalfEdge, error) {
	he, err := t.halfEdge(e)
	if err != nil {
		return HalfEdge{}, err
	}
	return *he, nil
}

// VertexAt возвращает копию вершины v
func (t *Triangulation) VertexAt(v Index) (Vertex, error) {
	vx, err := t.vertex(v)
	if err != nil {
		return Vertex{}, err
	}
	return *vx, nil
}

// Origin - начальная вершина полуребра e
func (t *Triangulation) Origin(e Index) (Index, error) {
	he, err := t.halfEdge(e)
	if err != nil {
		return None, err
	}
	return he.Origin, nil
}

// Target - конечная вершина полуребра e, т.е. начало его пары
func (t *Triangulation) Target(e Index) (Index, error) {
	twin, err := t.Twin(e)
	if err != nil {
		return None, err
	}
	return t.Origin(twin)
}

func (t *Triangulation) Twin(e Index) (Index, error) {
	he, err := t.halfEdge(e)
	if err != nil {
		return None, err
	}
	return he.Twin, nil
}

func (t *Triangulation) Next(e Index) (Index, error) {
	he, err := t.halfEdge(e)
	if err != nil {
		return None, err
	}
	return he.Next, nil
}

func (t *Triangulation) Prev(e Index) (Index, error) {
	he, err := t.halfEdge(e)
	if err != nil {
		return None, err
	}
	return he.Prev, nil
}

// CCWEdgeToVertex - следующее против часовой стрелки полуребро с тем же
// началом, что и у e: twin(prev(e)).
func (t *Triangulation) CCWEdgeToVertex(e Index) (Index, error) {
	prev, err := t.Prev(e)
	if err != nil {
		return None, err
	}
	return t.Twin(prev)
}

// CWEdgeToVertex - следующее по часовой стрелке полуребро с тем же началом,
// что и у e: next(twin(e)).
func (t *Triangulation) CWEdgeToVertex(e Index) (Index, error) {
	twin, err := t.Twin(e)
	if err != nil {
		return None, err
	}
	return t.Next(twin)
}

// EdgeOfVertex - одно из полуребер, выходящих из v. Для вершины, не входящей
// ни в одну грань, это None.
func (t *Triangulation) EdgeOfVertex(v Index) (Index, error) {
	vx, err := t.vertex(v)
	if err != nil {
		return None, err
	}
	return vx.IncidentHalfEdge, nil
}

// IsBorderFace сообщает, лежит ли полуребро e на внешней (граничной) стороне
func (t *Triangulation) IsBorderFace(e Index) (bool, error) {
	he, err := t.halfEdge(e)
	if err != nil {
		return false, err
	}
	return he.IsBorder, nil
}

func (t *Triangulation) IsBorderVertex(v Index) (bool, error) {
	vx, err := t.vertex(v)
	if err != nil {
		return false, err
	}
	return vx.IsBorder, nil
}

// Degree - число полуребер, выходящих из v
func (t *Triangulation) Degree(v Index) (int, error) {
	star, err := t.VertexStar(v)
	if err != nil {
		return 0, err
	}
	return len(star), nil
}

// IncidentHalfEdge - полуребро грани f (всегда 3f)
func (t *Triangulation) IncidentHalfEdge(f Index) (Index, error) {
	if f < 0 || int(f) >= t.nFaces {
		return None, errors.WithMessagef(ErrOutOfRange, "face %d not in [0, %d)", f, t.nFaces)
	}
	return 3 * f, nil
}

func (t *Triangulation) PointX(v Index) (float64, error) {
	vx, err := t.vertex(v)
	if err != nil {
		return 0, err
	}
	return vx.X, nil
}

func (t *Triangulation) PointY(v Index) (float64, error) {
	vx, err := t.vertex(v)
	if err != nil {
		return 0, err
	}
	return vx.Y, nil
}
