package plot

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/simogasp/half-edge/pkg/mesh"
)

const (
	interiorColor = "lightgreen"
	borderColor   = "orange"
	edgeColor     = "#5fa8d3"
)

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Triangulation строит диаграмму: вершины двумя сериями (внутренние и
// граничные) и по линии на каждое ребро, граничные ребра другим цветом.
func Triangulation(t *mesh.Triangulation, title string) (*charts.Scatter, error) {
	scatter := charts.NewScatter()
	prepareScatter(scatter, title)

	inner := make([]opts.ScatterData, 0, t.VertexCount())
	border := make([]opts.ScatterData, 0)
	for v := 0; v < t.VertexCount(); v++ {
		vx, err := t.VertexAt(mesh.Index(v))
		if err != nil {
			return nil, err
		}
		point := opts.ScatterData{Value: []float64{vx.X, vx.Y}}
		if vx.IsBorder {
			border = append(border, point)
		} else {
			inner = append(inner, point)
		}
	}

	scatter.AddSeries("Внутренние вершины", inner).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: interiorColor,
			}),
		)
	scatter.AddSeries("Граничные вершины", border).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: borderColor,
			}),
		)

	for _, edge := range t.Edges() {
		a, err := t.VertexAt(edge.A)
		if err != nil {
			return nil, err
		}
		b, err := t.VertexAt(edge.B)
		if err != nil {
			return nil, err
		}

		name, color := "Ребра", edgeColor
		if edge.Border {
			name, color = "Граница", borderColor
		}

		line := charts.NewLine()
		line.AddSeries(name, []opts.LineData{
			{Value: []float64{a.X, a.Y}},
			{Value: []float64{b.X, b.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
				Color: color,
			}),
		)

		scatter.Overlap(line)
	}

	return scatter, nil
}
