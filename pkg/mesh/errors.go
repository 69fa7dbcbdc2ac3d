package mesh

import "github.com/pkg/errors"

var (
	// ErrInvalidInput - входные данные не описывают триангуляцию: пустые
	// списки, длина faces не кратна трем, индекс вне диапазона вершин.
	// Build в этом случае не возвращает Triangulation.
	ErrInvalidInput = errors.New("invalid mesh input")

	// ErrDuplicateEdge - одно и то же ориентированное ребро встречается в двух
	// гранях (несогласованный обход или неманифолдное ребро).
	ErrDuplicateEdge = errors.WithMessage(ErrInvalidInput, "duplicate directed edge")

	// ErrOutOfRange - запрос с индексом вне текущих границ структуры.
	ErrOutOfRange = errors.New("index out of range")

	// ErrTopology - обход вокруг вершины не сошелся: точка сжатия, веер
	// треугольников без граничного ребра и т.п.
	ErrTopology = errors.New("inconsistent mesh topology")
)
