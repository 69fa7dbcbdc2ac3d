// Package off читает треугольные сетки в текстовом формате OFF:
//
//	OFF
//	# комментарии и пустые строки пропускаются
//	<вершин> <граней> [<ребер>]
//	x y z        (по строке на вершину, z игнорируется)
//	3 i j k      (по строке на грань)
package off

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/simogasp/half-edge/pkg/mesh"
)

const (
	Header      = "OFF"
	CommentChar = '#'

	// MaxCount - предел числа вершин и граней в заголовке
	MaxCount = 1 << 24
	// заранее резервируем не больше, дальше срез растет через append
	preallocLimit = 1 << 16
)

var (
	ErrNotOFF    = errors.New("not an OFF file")
	ErrMalformed = errors.New("malformed OFF data")
)

// Mesh - результат чтения: вершины в порядке файла и плоский список троек
type Mesh struct {
	Vertices []mesh.Point
	Faces    []mesh.Index
}

func (m *Mesh) Build(opts ...mesh.Option) (*mesh.Triangulation, error) {
	return mesh.Build(m.Vertices, m.Faces, opts...)
}

func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// OnlyWhitespace - строка пустая или из одних пробельных символов
func OnlyWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsSpace(s[i]) {
			return false
		}
	}
	return true
}

func TrimLeadingWhitespace(s string) string {
	return strings.TrimLeft(s, " \t")
}

// IsCommentLine - первый непробельный символ строки '#'
func IsCommentLine(s string) bool {
	s = TrimLeadingWhitespace(s)
	return len(s) > 0 && s[0] == CommentChar
}

func IsLineToSkip(s string) bool {
	return IsCommentLine(s) || OnlyWhitespace(s)
}

// Reader отдает содержательные строки OFF-файла, пропуская комментарии и
// пустые строки, и помнит номер последней прочитанной строки.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Line - номер последней прочитанной строки (с 1)
func (r *Reader) Line() int { return r.line }

func (r *Reader) next() (string, bool) {
	for r.sc.Scan() {
		r.line++
		if text := r.sc.Text(); !IsLineToSkip(text) {
			return text, true
		}
	}
	return "", false
}

func (r *Reader) malformed(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrMalformed, "line %d: "+format, append([]interface{}{r.line}, args...)...)
}

// HasValidHeader - первая содержательная строка начинается с "OFF"
func (r *Reader) HasValidHeader() bool {
	line, ok := r.next()
	return ok && strings.HasPrefix(line, Header)
}

// ParseCounts читает строку с числом вершин и граней. Третье число (ребра)
// и все что дальше игнорируются.
func (r *Reader) ParseCounts() (nVertices, nFaces int, err error) {
	line, ok := r.next()
	if !ok {
		return 0, 0, errors.WithMessage(ErrMalformed, "missing vertex and face counts")
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, r.malformed("expected vertex and face counts, got %q", line)
	}
	if nVertices, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, r.malformed("vertex count %q", fields[0])
	}
	if nFaces, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, r.malformed("face count %q", fields[1])
	}
	if nVertices <= 0 || nFaces <= 0 {
		return 0, 0, r.malformed("counts must be positive, got %d %d", nVertices, nFaces)
	}
	if nVertices > MaxCount || nFaces > MaxCount {
		return 0, 0, r.malformed("counts %d %d exceed limit %d", nVertices, nFaces, MaxCount)
	}
	return nVertices, nFaces, nil
}

// ReadVertices читает n вершин; у каждой должно быть три конечные координаты.
func (r *Reader) ReadVertices(n int) ([]mesh.Point, error) {
	vertices := make([]mesh.Point, 0, max(0, min(n, preallocLimit)))
	for len(vertices) < n {
		line, ok := r.next()
		if !ok {
			return nil, errors.WithMessagef(ErrMalformed, "expected %d vertices, got %d", n, len(vertices))
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, r.malformed("vertex needs 3 coordinates, got %q", line)
		}
		var xyz [3]float64
		for k := range xyz {
			v, err := strconv.ParseFloat(fields[k], 64)
			if err != nil {
				return nil, r.malformed("coordinate %q", fields[k])
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, r.malformed("coordinate %q is not finite", fields[k])
			}
			xyz[k] = v
		}
		vertices = append(vertices, mesh.Point{X: xyz[0], Y: xyz[1]})
	}
	return vertices, nil
}

// ParseFace разбирает строку грани "3 i j k". Поддерживаются только
// треугольники без дополнительных полей.
func ParseFace(line string) ([3]mesh.Index, error) {
	var face [3]mesh.Index

	fields := strings.Fields(line)
	if len(fields) != 4 {
		return face, errors.WithMessagef(ErrMalformed, "face %q: expected \"3 i j k\"", line)
	}
	if count, err := strconv.Atoi(fields[0]); err != nil || count != 3 {
		return face, errors.WithMessagef(ErrMalformed, "face %q: only triangles are supported", line)
	}
	for k := range face {
		v, err := strconv.ParseUint(fields[k+1], 10, 31)
		if err != nil {
			return face, errors.WithMessagef(ErrMalformed, "face %q: index %q", line, fields[k+1])
		}
		face[k] = mesh.Index(v)
	}
	return face, nil
}

// ReadFaces читает n треугольников и проверяет, что индексы меньше nVertices.
func (r *Reader) ReadFaces(n, nVertices int) ([]mesh.Index, error) {
	faces := make([]mesh.Index, 0, 3*max(0, min(n, preallocLimit)))
	for read := 0; read < n; read++ {
		line, ok := r.next()
		if !ok {
			return nil, errors.WithMessagef(ErrMalformed, "expected %d faces, got %d", n, read)
		}
		face, err := ParseFace(line)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", r.line)
		}
		for _, v := range face {
			if int(v) >= nVertices {
				return nil, r.malformed("vertex index %d out of range, have %d vertices", v, nVertices)
			}
		}
		faces = append(faces, face[:]...)
	}
	return faces, nil
}

func Read(in io.Reader) (*Mesh, error) {
	r := NewReader(in)
	if !r.HasValidHeader() {
		return nil, ErrNotOFF
	}
	nVertices, nFaces, err := r.ParseCounts()
	if err != nil {
		return nil, err
	}
	vertices, err := r.ReadVertices(nVertices)
	if err != nil {
		return nil, err
	}
	faces, err := r.ReadFaces(nFaces, nVertices)
	if err != nil {
		return nil, err
	}
	if err := r.sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read OFF")
	}
	return &Mesh{Vertices: vertices, Faces: faces}, nil
}

func ReadFile(name string) (*Mesh, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open file %s", name)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, errors.WithMessage(err, name)
	}
	return m, nil
}
