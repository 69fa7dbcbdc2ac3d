package main

import (
	"fmt"
	"html"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/simogasp/half-edge/pkg/generate"
	"github.com/simogasp/half-edge/pkg/logger"
	"github.com/simogasp/half-edge/pkg/mesh"
	"github.com/simogasp/half-edge/pkg/off"
	"github.com/simogasp/half-edge/pkg/plot"
	"github.com/simogasp/half-edge/static"

	"go.uber.org/zap"
)

const (
	maxCells = 40
	// больше граней echarts рисует слишком медленно (линия на ребро)
	maxFaces = 5000
)

// параметры формы
type params struct {
	shape  string
	cols   int
	rows   int
	width  float64
	height float64
	off    string
}

func defaultParams() params {
	return params{shape: "grid", cols: 6, rows: 4, width: 1000, height: 1000}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// parseParams при ошибке разбора тела возвращает параметры по умолчанию
func parseParams(r *http.Request) (params, error) {
	p := defaultParams()
	if r.Method != http.MethodPost {
		return p, nil
	}
	if err := r.ParseForm(); err != nil {
		return p, errors.Wrap(err, "parse form")
	}

	if s := r.FormValue("shape"); s != "" {
		p.shape = s
	}
	if v, err := strconv.Atoi(r.FormValue("cols")); err == nil {
		p.cols = v
	}
	if v, err := strconv.Atoi(r.FormValue("rows")); err == nil {
		p.rows = v
	}
	if v, err := strconv.ParseFloat(r.FormValue("width"), 64); err == nil && v > 0 {
		p.width = v
	}
	if v, err := strconv.ParseFloat(r.FormValue("height"), 64); err == nil && v > 0 {
		p.height = v
	}
	p.off = r.FormValue("off")

	p.cols = clamp(p.cols, 1, maxCells)
	p.rows = clamp(p.rows, 1, maxCells)
	return p, nil
}

// источник точек и граней по выбранной форме
func source(p params, rnd *rand.Rand) ([]mesh.Point, []mesh.Index, error) {
	var m generate.Mesh
	switch p.shape {
	case "grid":
		m = generate.Grid(p.cols, p.rows, p.width, p.height)
	case "jitter":
		m = generate.JitteredGrid(rnd, p.cols, p.rows, p.width, p.height, 0.35)
	case "annulus":
		// для дыры нужна рамка хотя бы 3x3
		m = generate.Annulus(clamp(p.cols, 3, maxCells), clamp(p.rows, 3, maxCells), p.width, p.height)
	case "fan":
		m = generate.Fan(clamp(p.cols, 3, maxCells), p.width/2)
	case "octahedron":
		m = generate.Octahedron(p.width / 2)
	case "off":
		parsed, err := off.Read(strings.NewReader(p.off))
		if err != nil {
			return nil, nil, err
		}
		if len(parsed.Faces)/3 > maxFaces {
			return nil, nil, errors.Errorf("too many faces to draw: %d > %d", len(parsed.Faces)/3, maxFaces)
		}
		return parsed.Vertices, parsed.Faces, nil
	default:
		return nil, nil, errors.Errorf("unknown shape %q", p.shape)
	}
	return m.Points, m.Faces, nil
}

func writeStats(w io.Writer, t *mesh.Triangulation) error {
	loops, err := t.BoundaryLoops()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "<p>Вершин: %d, граней: %d, полуребер: %d (внешних: %d), граничных контуров: %d, построено за %s</p>\n",
		t.VertexCount(), t.FaceCount(), t.HalfEdgeCount(), t.BorderEdgeCount(), len(loops), t.BuildDuration())
	return nil
}

// http обработчик страницы с сеткой и формой для ввода данных
func diagramHandler(w http.ResponseWriter, r *http.Request) {
	logger := logger.New()
	defer logger.ClearLogs()

	p, err := parseParams(r)
	if err != nil {
		logger.Warn("[app] Не удалось разобрать форму", zap.Error(err))
	}

	logger.Info("[app] Запрос", zap.String("shape", p.shape), zap.Int("cols", p.cols), zap.Int("rows", p.rows))

	fmt.Fprintln(w, static.Part1)

	points, faces, err := source(p, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		logger.Error("[app] Не удалось получить сетку", zap.Error(err))
		fmt.Fprintf(w, "<p>Ошибка: %s</p>\n", html.EscapeString(err.Error()))
	} else if t, err := mesh.Build(points, faces, mesh.WithLogger(logger)); err != nil {
		fmt.Fprintf(w, "<p>Ошибка построения: %s</p>\n", html.EscapeString(err.Error()))
	} else {
		if err := writeStats(w, t); err != nil {
			logger.Error("[app] Граничные контуры", zap.Error(err))
		}
		scatter, err := plot.Triangulation(t, "Полуреберная структура")
		if err == nil {
			err = scatter.Render(w)
		}
		if err != nil {
			logger.Error("[app] Ошибка рендеринга диаграммы", zap.Error(err))
		}
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	for _, log := range logger.Logs {
		fmt.Fprintln(w, log)
	}

	fmt.Fprintln(w, static.Part3)
}

func main() {
	http.HandleFunc("/", diagramHandler)
	fmt.Println("Сервер запущен на http://localhost:8080")
	err := http.ListenAndServe(":8080", nil)
	if err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
