package main

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, form url.Values) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	diagramHandler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestHandler_Get(t *testing.T) {
	rec := httptest.NewRecorder()
	diagramHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "Полуреберная структура")
	assert.Contains(t, body, "Вершин: 35, граней: 48")
	assert.Contains(t, body, "Построение завершено")
}

func TestHandler_Annulus(t *testing.T) {
	body := post(t, url.Values{"shape": {"annulus"}, "cols": {"4"}, "rows": {"4"}})
	assert.Contains(t, body, "граничных контуров: 2")
}

func TestHandler_OFF(t *testing.T) {
	body := post(t, url.Values{"shape": {"off"}, "off": {"OFF\n3 1\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n"}})
	assert.Contains(t, body, "полуребер: 6 (внешних: 3)")
}

func TestHandler_Errors(t *testing.T) {
	t.Run("bad OFF", func(t *testing.T) {
		body := post(t, url.Values{"shape": {"off"}, "off": {"PLY\n"}})
		assert.Contains(t, body, "Ошибка: not an OFF file")
	})

	t.Run("pinch point", func(t *testing.T) {
		off := "OFF\n5 2\n0 0 0\n1 0 0\n1 1 0\n-1 0 0\n-1 -1 0\n3 0 1 2\n3 0 3 4\n"
		body := post(t, url.Values{"shape": {"off"}, "off": {off}})
		assert.Contains(t, body, "Ошибка построения")
		assert.Contains(t, body, "inconsistent mesh topology")
	})

	t.Run("unknown shape", func(t *testing.T) {
		body := post(t, url.Values{"shape": {"cube"}})
		assert.Contains(t, body, "unknown shape")
	})
}

func TestParseParams_Clamps(t *testing.T) {
	form := url.Values{"cols": {"1000"}, "rows": {"-3"}, "width": {"abc"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	p, err := parseParams(req)
	require.NoError(t, err)
	assert.Equal(t, maxCells, p.cols)
	assert.Equal(t, 1, p.rows)
	assert.Equal(t, 1000.0, p.width)
	assert.Equal(t, "grid", p.shape)
}

func TestHandler_MalformedForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("shape=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := parseParams(req)
	assert.Error(t, err)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("shape=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	diagramHandler(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "Не удалось разобрать форму")
	// остаются параметры по умолчанию
	assert.Contains(t, body, "Вершин: 35, граней: 48")
}

func TestHandler_HugeOFFCounts(t *testing.T) {
	body := post(t, url.Values{"shape": {"off"}, "off": {"OFF\n100000000000 1\n0 0 0\n"}})
	assert.Contains(t, body, "malformed OFF data")
}

func TestSource_Shapes(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, shape := range []string{"grid", "jitter", "annulus", "fan", "octahedron"} {
		p := defaultParams()
		p.shape = shape
		points, faces, err := source(p, rnd)
		require.NoError(t, err, shape)
		assert.NotEmpty(t, points, shape)
		assert.Zero(t, len(faces)%3, shape)
	}
}
