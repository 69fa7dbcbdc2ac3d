package raster

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/simogasp/half-edge/pkg/mesh"
)

const (
	padding = 20
	// MaxSide - предел ширины и высоты картинки в пикселях
	MaxSide = 1 << 14
)

// размер стороны в пикселях; NaN, бесконечность и слишком большие значения - ошибка
func side(scale, span float64) (int, error) {
	px := scale * span
	if math.IsNaN(px) || math.IsInf(px, 0) || px < 0 || px > MaxSide-2*padding {
		return 0, errors.Errorf("image side of %v pixels is out of range (limit %d)", px, MaxSide)
	}
	return int(px) + padding*2, nil
}

// Draw рисует сетку: внутренние ребра голубым, граница оранжевым, граничные
// вершины точками. scale - пикселей на единицу координат.
func Draw(t *mesh.Triangulation, scale float64) (image.Image, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, errors.Errorf("scale must be positive and finite, got %v", scale)
	}
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)

	points := make([]mesh.Vertex, t.VertexCount())
	for v := range points {
		vx, err := t.VertexAt(mesh.Index(v))
		if err != nil {
			return nil, err
		}
		points[v] = vx
		minX = math.Min(minX, vx.X)
		minY = math.Min(minY, vx.Y)
		maxX = math.Max(maxX, vx.X)
		maxY = math.Max(maxY, vx.Y)
	}

	width, err := side(scale, maxX-minX)
	if err != nil {
		return nil, errors.WithMessage(err, "width")
	}
	height, err := side(scale, maxY-minY)
	if err != nil {
		return nil, errors.WithMessage(err, "height")
	}
	c := gg.NewContext(width, height)
	c.SetRGB(0.12, 0.12, 0.12)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// начало координат внизу слева
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// толщина линий задается в пикселях, а контекст уже отмасштабирован
	c.SetLineWidth(1.5 / scale)
	for _, border := range []bool{false, true} {
		for _, edge := range t.Edges() {
			if edge.Border != border {
				continue
			}
			a, b := points[edge.A], points[edge.B]
			c.DrawLine(a.X, a.Y, b.X, b.Y)
		}
		if border {
			c.SetRGB(1, 0.6, 0)
		} else {
			c.SetRGB(0.37, 0.66, 0.83)
		}
		c.Stroke()
	}

	for _, p := range points {
		if p.IsBorder {
			c.DrawCircle(p.X, p.Y, 3/scale)
		}
	}
	c.SetRGB(1, 0.6, 0)
	c.Fill()

	return c.Image(), nil
}

func WritePNG(w io.Writer, t *mesh.Triangulation, scale float64) error {
	img, err := Draw(t, scale)
	if err != nil {
		return err
	}
	c := gg.NewContextForImage(img)
	return c.EncodePNG(w)
}

func SavePNG(path string, t *mesh.Triangulation, scale float64) error {
	img, err := Draw(t, scale)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
