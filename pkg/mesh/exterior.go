package mesh

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// arena - срез полуребер с проверкой ссылок, используется при построении,
// пока часть next/prev еще равна None.
type arena []HalfEdge

func (a arena) get(e Index) (*HalfEdge, error) {
	if e < 0 || int(e) >= len(a) {
		return nil, errors.WithMessagef(ErrTopology, "link to half-edge %d outside [0, %d)", e, len(a))
	}
	return &a[e], nil
}

// ccw: следующее против часовой стрелки полуребро с тем же началом
func (a arena) ccw(e Index) (Index, error) {
	he, err := a.get(e)
	if err != nil {
		return None, err
	}
	prev, err := a.get(he.Prev)
	if err != nil {
		return None, err
	}
	return prev.Twin, nil
}

// cw: следующее по часовой стрелке полуребро с тем же началом
func (a arena) cw(e Index) (Index, error) {
	he, err := a.get(e)
	if err != nil {
		return None, err
	}
	twin, err := a.get(he.Twin)
	if err != nil {
		return None, err
	}
	return twin.Next, nil
}

// buildExterior добавляет по одному внешнему полуребру на каждое граничное
// внутреннее и замыкает их в циклы. Итоговый массив выделяется один раз,
// поэтому индексы не сдвигаются.
func buildExterior(interior []HalfEdge, nVertices int, cfg *config) ([]HalfEdge, int, error) {
	log := cfg.logger
	n := len(interior)

	var nBorder int
	for i := range interior {
		if interior[i].IsBorder {
			nBorder++
		}
	}

	halfEdges := make(arena, n+nBorder)
	copy(halfEdges, interior)

	// сколько внешних полуребер выходит из вершины: больше одного - точка сжатия
	outgoing := make([]int, nVertices)

	ext := Index(n)
	for i := 0; i < n; i++ {
		if !halfEdges[i].IsBorder {
			continue
		}
		origin := halfEdges[halfEdges[i].Next].Origin
		halfEdges[ext] = HalfEdge{
			Origin:   origin,
			Twin:     Index(i),
			Next:     None,
			Prev:     None,
			IsBorder: true,
		}
		halfEdges[i].Twin = ext
		halfEdges[i].IsBorder = false

		outgoing[origin]++
		if outgoing[origin] > 1 {
			return nil, 0, errors.WithMessagef(ErrTopology,
				"vertex %d is shared by more than one boundary fan", origin)
		}
		ext++
	}
	log.Debug("[b-ext] Внешние полуребра созданы", zap.Int("count", nBorder))

	if err := linkExterior(halfEdges, n); err != nil {
		return nil, 0, err
	}
	if err := checkExterior(halfEdges, n); err != nil {
		return nil, 0, err
	}

	return halfEdges, nBorder, nil
}

// linkExterior заполняет next/prev внешних полуребер [n, len) вращением
// вокруг их концов. Каждое вращение ограничено n шагами.
func linkExterior(halfEdges arena, n int) error {
	for e := Index(n); int(e) < len(halfEdges); e++ {
		he := &halfEdges[e]

		// next: вращаемся против часовой стрелки от пары до граничного полуребра
		next, err := halfEdges.ccw(he.Twin)
		if err != nil {
			return err
		}
		for steps := 0; ; steps++ {
			cur, err := halfEdges.get(next)
			if err != nil {
				return err
			}
			if cur.IsBorder {
				break
			}
			if steps >= n {
				return errors.WithMessagef(ErrTopology,
					"no boundary half-edge found rotating around the target of %d", e)
			}
			if next, err = halfEdges.ccw(next); err != nil {
				return err
			}
		}
		he.Next = next

		// prev: вращаемся по часовой стрелке, пока пара текущего не станет граничной
		twin, err := halfEdges.get(he.Twin)
		if err != nil {
			return err
		}
		prev := twin.Next
		for steps := 0; ; steps++ {
			cur, err := halfEdges.get(prev)
			if err != nil {
				return err
			}
			curTwin, err := halfEdges.get(cur.Twin)
			if err != nil {
				return err
			}
			if curTwin.IsBorder {
				prev = cur.Twin
				break
			}
			if steps >= n {
				return errors.WithMessagef(ErrTopology,
					"no boundary half-edge found rotating around the origin of %d", e)
			}
			if prev, err = halfEdges.cw(prev); err != nil {
				return err
			}
		}
		he.Prev = prev
	}
	return nil
}

// checkExterior проверяет согласованность граничных циклов
func checkExterior(halfEdges arena, n int) error {
	for e := Index(n); int(e) < len(halfEdges); e++ {
		he := halfEdges[e]
		next, err := halfEdges.get(he.Next)
		if err != nil {
			return err
		}
		twin, err := halfEdges.get(he.Twin)
		if err != nil {
			return err
		}
		if next.Origin != twin.Origin {
			return errors.WithMessagef(ErrTopology,
				"boundary half-edge %d ends at %d but its next starts at %d", e, twin.Origin, next.Origin)
		}
		if next.Prev != e {
			return errors.WithMessagef(ErrTopology,
				"boundary half-edge %d: prev(next) is %d", e, next.Prev)
		}
	}
	return nil
}
