package mesh

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type directedEdge struct {
	from, to Index
}

// buildInterior создает по три полуребра на грань, связывает next/prev внутри
// грани, находит пары по обратному ориентированному ребру и помечает
// полуребра без пары (и их концы) как граничные.
func buildInterior(vertices []Vertex, faces []Index, cfg *config) ([]HalfEdge, error) {
	log := cfg.logger

	halfEdges := make([]HalfEdge, len(faces))
	// мапа ориентированных ребер для поиска пар и границы
	edges := make(map[directedEdge]Index, len(faces))

	nFaces := len(faces) / 3
	for f := 0; f < nFaces; f++ {
		for j := 0; j < 3; j++ {
			i := Index(3*f + j)
			v0 := faces[3*f+j]
			v1 := faces[3*f+(j+1)%3]

			halfEdges[i] = HalfEdge{
				Origin: v0,
				Twin:   None,
				Next:   Index(3*f + (j+1)%3),
				Prev:   Index(3*f + (j+2)%3),
			}
			vertices[v0].IncidentHalfEdge = i

			key := directedEdge{v0, v1}
			if prev, ok := edges[key]; ok {
				if !cfg.legacyDuplicates {
					return nil, errors.WithMessagef(ErrDuplicateEdge,
						"edge %d->%d appears in faces %d and %d", v0, v1, prev/3, f)
				}
				log.Warn("[b-int] Повторное ориентированное ребро, старое полуребро станет граничным",
					zap.Int("from", int(v0)), zap.Int("to", int(v1)),
					zap.Int("old", int(prev)), zap.Int("new", int(i)))
			}
			edges[key] = i
		}
	}

	var unmatched int
	for i := range halfEdges {
		// пара уже назначена с другой стороны
		if halfEdges[i].Twin != None {
			continue
		}
		org := halfEdges[i].Origin
		tgt := halfEdges[halfEdges[i].Next].Origin

		twin, found := edges[directedEdge{tgt, org}]
		// перезаписанное повтором полуребро остается без пары
		if found && edges[directedEdge{org, tgt}] == Index(i) {
			halfEdges[i].Twin = twin
			halfEdges[twin].Twin = Index(i)
			continue
		}

		halfEdges[i].IsBorder = true
		vertices[org].IsBorder = true
		vertices[tgt].IsBorder = true
		unmatched++
	}
	log.Debug("[b-int] Пары найдены", zap.Int("unmatched", unmatched))

	return halfEdges, nil
}
