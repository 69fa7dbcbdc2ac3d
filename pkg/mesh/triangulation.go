package mesh

import (
	"time"

	"github.com/pkg/errors"
	"github.com/simogasp/half-edge/pkg/logger"
	"go.uber.org/zap"
)

// Triangulation хранит вершины и полуребра в двух плотных массивах. Внутренние
// полуребра грани f лежат по индексам 3f, 3f+1, 3f+2, внешние (граничные)
// добавлены после всех внутренних.
//
// После Build структура только читается и безопасна для одновременного
// обхода из нескольких горутин.
type Triangulation struct {
	vertices  []Vertex
	halfEdges []HalfEdge

	nFaces    int
	nInterior int
	nBorder   int

	// время построения
	buildTime time.Duration
}

type config struct {
	logger           *logger.ZapLogger
	legacyDuplicates bool
}

type Option func(*config)

// WithLogger задает логгер для этапов построения
func WithLogger(l *logger.ZapLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLegacyDuplicates отключает отказ на повторяющихся ориентированных
// ребрах: повтор перезаписывает запись в таблице ребер, а более раннее
// полуребро остается без пары и считается граничным.
func WithLegacyDuplicates() Option {
	return func(c *config) {
		c.legacyDuplicates = true
	}
}

// Build строит полуреберную структуру по вершинам и плоскому списку троек
// индексов (len(faces) == 3 * число граней).
func Build(points []Point, faces []Index, opts ...Option) (*Triangulation, error) {
	cfg := &config{logger: logger.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}
	log := cfg.logger

	start := time.Now()
	log.Info("[b] Построение запущено", zap.Int("vertices", len(points)), zap.Int("faces", len(faces)/3))

	if err := validateInput(points, faces); err != nil {
		log.Error("[b] Некорректные входные данные", zap.Error(err))
		return nil, err
	}

	t := &Triangulation{
		vertices: make([]Vertex, len(points)),
		nFaces:   len(faces) / 3,
	}
	for i, p := range points {
		t.vertices[i] = Vertex{X: p.X, Y: p.Y, IncidentHalfEdge: None}
	}

	interior, err := buildInterior(t.vertices, faces, cfg)
	if err != nil {
		log.Error("[b-int] Внутренние полуребра не построены", zap.Error(err))
		return nil, err
	}
	t.nInterior = len(interior)
	log.Info("[b-int] Внутренние полуребра построены", zap.Int("halfedges", t.nInterior))

	t.halfEdges, t.nBorder, err = buildExterior(interior, len(t.vertices), cfg)
	if err != nil {
		log.Error("[b-ext] Граница не замкнута", zap.Error(err))
		return nil, err
	}
	log.Info("[b-ext] Внешние полуребра построены", zap.Int("border", t.nBorder))

	t.buildTime = time.Since(start)
	log.Info("[b] Построение завершено",
		zap.Int("halfedges", len(t.halfEdges)),
		zap.Duration("took", t.buildTime))

	return t, nil
}

func validateInput(points []Point, faces []Index) error {
	if len(points) == 0 {
		return errors.WithMessage(ErrInvalidInput, "no vertices")
	}
	if len(faces) == 0 {
		return errors.WithMessage(ErrInvalidInput, "no faces")
	}
	if len(faces)%3 != 0 {
		return errors.WithMessagef(ErrInvalidInput, "face list length %d is not a multiple of 3", len(faces))
	}
	for i, v := range faces {
		if v < 0 || int(v) >= len(points) {
			return errors.WithMessagef(ErrInvalidInput, "face %d references vertex %d, have %d vertices", i/3, v, len(points))
		}
	}
	// вырожденная грань дала бы полуребро, которое является парой самому себе
	for f := 0; f < len(faces); f += 3 {
		a, b, c := faces[f], faces[f+1], faces[f+2]
		if a == b || b == c || a == c {
			return errors.WithMessagef(ErrInvalidInput, "face %d repeats a vertex (%d %d %d)", f/3, a, b, c)
		}
	}
	return nil
}

func (t *Triangulation) FaceCount() int { return t.nFaces }

func (t *Triangulation) HalfEdgeCount() int { return len(t.halfEdges) }

func (t *Triangulation) VertexCount() int { return len(t.vertices) }

// InteriorHalfEdgeCount - число полуребер, принадлежащих треугольникам (3 * FaceCount)
func (t *Triangulation) InteriorHalfEdgeCount() int { return t.nInterior }

// BorderEdgeCount - число синтезированных внешних полуребер
func (t *Triangulation) BorderEdgeCount() int { return t.nBorder }

func (t *Triangulation) BuildDuration() time.Duration { return t.buildTime }

// IsExterior сообщает, является ли e синтезированным граничным полуребром
func (t *Triangulation) IsExterior(e Index) bool {
	return int(e) >= t.nInterior && int(e) < len(t.halfEdges)
}
