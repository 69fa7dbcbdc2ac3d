package mesh

// Index адресует вершину, полуребро или грань внутри Triangulation.
type Index int

// None - незаполненная ссылка (twin/next/prev, инцидентное полуребро
// изолированной вершины). После Build у полуребер не остается None.
const None Index = -1

// Point - входная координата вершины
type Point struct {
	X float64
	Y float64
}

type Vertex struct {
	X float64
	Y float64
	// вершина лежит на границе сетки
	IsBorder bool
	// любое полуребро, выходящее из вершины (последнее созданное)
	IncidentHalfEdge Index
}

type HalfEdge struct {
	// начало полуребра
	Origin Index
	// противоположное полуребро
	Twin Index
	// следующее и предыдущее полуребро той же грани (или граничного цикла)
	Next Index
	Prev Index
	// true только у внешних полуребер
	IsBorder bool
}

// Edge - неориентированное ребро для отрисовки
type Edge struct {
	A, B   Index
	Border bool
}
