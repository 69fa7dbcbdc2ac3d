package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/simogasp/half-edge/pkg/logger"
	"github.com/simogasp/half-edge/pkg/mesh"
	"github.com/simogasp/half-edge/pkg/off"
	"github.com/simogasp/half-edge/pkg/raster"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Читает сетку из OFF-файла, строит полуреберную структуру и печатает сводку:
//
//	meshinfo [--png out.png] [--scale 100] [--check] [-v] mesh.off
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	file     string
	png      string
	scale    float64
	check    bool
	legacy   bool
	verbose  bool
	noColor  bool
	loopList bool
}

func parseArgs(args []string) (*options, error) {
	o := &options{}
	app := kingpin.New("meshinfo", "Build the half-edge structure of an OFF triangle mesh and print its statistics.")
	app.Arg("file", "OFF file to read.").Required().StringVar(&o.file)
	app.Flag("png", "Write a PNG rendering of the mesh to this path.").StringVar(&o.png)
	app.Flag("scale", "Pixels per mesh unit for --png.").Default("100").Float64Var(&o.scale)
	app.Flag("check", "Re-validate every half-edge invariant after building.").BoolVar(&o.check)
	app.Flag("legacy-duplicates", "Let repeated directed edges overwrite each other instead of failing.").BoolVar(&o.legacy)
	app.Flag("loops", "List the vertices of every boundary loop.").BoolVar(&o.loopList)
	app.Flag("verbose", "Debug logging.").Short('v').BoolVar(&o.verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&o.noColor)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	if o.scale <= 0 {
		return nil, errors.Errorf("--scale must be positive, got %v", o.scale)
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, "meshinfo:", err)
		return 2
	}
	au := aurora.NewAurora(!o.noColor)

	level := zapcore.WarnLevel
	if o.verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewConsole(stderr, level)
	defer log.Sync()

	m, err := off.ReadFile(o.file)
	if err != nil {
		fmt.Fprintln(stderr, au.Red("meshinfo:"), err)
		return 1
	}

	opts := []mesh.Option{mesh.WithLogger(log)}
	if o.legacy {
		opts = append(opts, mesh.WithLegacyDuplicates())
	}
	t, err := m.Build(opts...)
	if err != nil {
		fmt.Fprintln(stderr, au.Red("meshinfo:"), err)
		return 1
	}

	if o.check {
		if err := t.Validate(); err != nil {
			fmt.Fprintln(stderr, au.Red("meshinfo: check failed:"), err)
			return 1
		}
	}

	if o.png != "" {
		if err := raster.SavePNG(o.png, t, o.scale); err != nil {
			fmt.Fprintln(stderr, au.Red("meshinfo:"), err)
			return 1
		}
		log.Info("[png] Сохранено", zap.String("path", o.png))
	}

	if err := report(stdout, au, t, o.loopList); err != nil {
		fmt.Fprintln(stderr, au.Red("meshinfo:"), err)
		return 1
	}
	return 0
}

type degreeStats struct {
	min, max int
	mean     float64
}

func degrees(t *mesh.Triangulation) (degreeStats, error) {
	var s degreeStats
	var total, counted int
	for v := 0; v < t.VertexCount(); v++ {
		d, err := t.Degree(mesh.Index(v))
		if err != nil {
			return s, err
		}
		// изолированные вершины не учитываем
		if d == 0 {
			continue
		}
		if counted == 0 || d < s.min {
			s.min = d
		}
		if d > s.max {
			s.max = d
		}
		total += d
		counted++
	}
	if counted > 0 {
		s.mean = float64(total) / float64(counted)
	}
	return s, nil
}

func report(w io.Writer, au aurora.Aurora, t *mesh.Triangulation, listLoops bool) error {
	loops, err := t.BoundaryLoops()
	if err != nil {
		return err
	}
	deg, err := degrees(t)
	if err != nil {
		return err
	}

	var borderVertices int
	for v := 0; v < t.VertexCount(); v++ {
		border, err := t.IsBorderVertex(mesh.Index(v))
		if err != nil {
			return err
		}
		if border {
			borderVertices++
		}
	}

	row := func(name string, value interface{}) {
		fmt.Fprintf(w, "%s %v\n", au.Bold(fmt.Sprintf("%-18s", name)), value)
	}
	row("vertices", t.VertexCount())
	row("faces", t.FaceCount())
	row("half-edges", t.HalfEdgeCount())
	row("  interior", t.InteriorHalfEdgeCount())
	row("  exterior", t.BorderEdgeCount())
	row("border vertices", borderVertices)
	if len(loops) == 0 {
		row("boundary loops", au.Green("0 (closed)"))
	} else {
		row("boundary loops", au.Cyan(len(loops)))
	}
	row("degree", fmt.Sprintf("min %d, max %d, mean %.2f", deg.min, deg.max, deg.mean))
	row("build time", t.BuildDuration())

	if listLoops {
		for i, loop := range loops {
			vertices := make([]mesh.Index, len(loop))
			for k, e := range loop {
				if vertices[k], err = t.Origin(e); err != nil {
					return err
				}
			}
			fmt.Fprintf(w, "loop %d (%d edges): %v\n", i, len(loop), vertices)
		}
	}
	return nil
}
