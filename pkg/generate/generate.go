package generate

import (
	"math"
	"math/rand"

	"github.com/simogasp/half-edge/pkg/mesh"
)

// Mesh - вершины и плоский список троек индексов, готовые для mesh.Build
type Mesh struct {
	Points []mesh.Point
	Faces  []mesh.Index
}

func (m Mesh) Build(opts ...mesh.Option) (*mesh.Triangulation, error) {
	return mesh.Build(m.Points, m.Faces, opts...)
}

// Grid - прямоугольник width x height, разбитый на cols x rows квадратов,
// каждый из которых делится диагональю на два треугольника против часовой.
func Grid(cols, rows int, width, height float64) Mesh {
	return grid(cols, rows, width, height, func(i, j int) bool { return true })
}

// Annulus - та же сетка, но без внутренних квадратов: остается рамка
// шириной в одну клетку и дыра посередине (два граничных контура).
// Нужно cols, rows >= 3.
func Annulus(cols, rows int, width, height float64) Mesh {
	return grid(cols, rows, width, height, func(i, j int) bool {
		return i == 0 || j == 0 || i == cols-1 || j == rows-1
	})
}

// JitteredGrid сдвигает внутренние узлы сетки на случайную долю шага
// (amount в [0, 0.5)), граничные узлы остаются на месте.
func JitteredGrid(rnd *rand.Rand, cols, rows int, width, height, amount float64) Mesh {
	m := Grid(cols, rows, width, height)

	xStep := width / float64(cols)
	yStep := height / float64(rows)
	for j := 1; j < rows; j++ {
		for i := 1; i < cols; i++ {
			p := &m.Points[j*(cols+1)+i]
			p.X += (rnd.Float64()*2 - 1) * amount * xStep
			p.Y += (rnd.Float64()*2 - 1) * amount * yStep
		}
	}
	return m
}

func grid(cols, rows int, width, height float64, keep func(i, j int) bool) Mesh {
	points := make([]mesh.Point, 0, (cols+1)*(rows+1))

	xStep := width / float64(cols)
	yStep := height / float64(rows)

	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			points = append(points, mesh.Point{X: float64(i) * xStep, Y: float64(j) * yStep})
		}
	}

	node := func(i, j int) mesh.Index { return mesh.Index(j*(cols+1) + i) }

	faces := make([]mesh.Index, 0, 6*cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			if !keep(i, j) {
				continue
			}
			a, b, c, d := node(i, j), node(i+1, j), node(i+1, j+1), node(i, j+1)
			faces = append(faces, a, b, c, a, c, d)
		}
	}
	return Mesh{Points: points, Faces: faces}
}

// Fan - правильный n-угольник радиуса radius, разбитый на треугольники из центра
func Fan(n int, radius float64) Mesh {
	points := make([]mesh.Point, 0, n+1)
	points = append(points, mesh.Point{})
	for k := 0; k < n; k++ {
		angle := 2 * math.Pi * float64(k) / float64(n)
		points = append(points, mesh.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}

	faces := make([]mesh.Index, 0, 3*n)
	for k := 0; k < n; k++ {
		faces = append(faces, 0, mesh.Index(k+1), mesh.Index((k+1)%n+1))
	}
	return Mesh{Points: points, Faces: faces}
}

// Octahedron - замкнутая поверхность без границы. Координаты - проекция на
// плоскость (полюса в центре), связность как у октаэдра.
func Octahedron(radius float64) Mesh {
	points := []mesh.Point{
		{X: 0, Y: 0.1 * radius},
		{X: 0, Y: -0.1 * radius},
		{X: radius, Y: 0},
		{X: 0, Y: radius},
		{X: -radius, Y: 0},
		{X: 0, Y: -radius},
	}
	faces := []mesh.Index{
		0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 2,
		1, 3, 2, 1, 4, 3, 1, 5, 4, 1, 2, 5,
	}
	return Mesh{Points: points, Faces: faces}
}
