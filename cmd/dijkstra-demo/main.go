// Command dijkstra-demo runs Dijkstra over the reference graph (or a seeded
// random one), prints the result and optionally renders it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dijkstraviz/builder"
	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/dijkstra"
	"github.com/katalvlaran/dijkstraviz/render"
	"github.com/katalvlaran/dijkstraviz/spatial"
)

type cliArgs struct {
	source  string
	format  string
	dotFile string
	pngFile string
	gifFile string
	near    string
	random  int
	density float64
	seed    int64
	verbose bool
}

func parseArgs(fs *flag.FlagSet, args []string) (cliArgs, error) {
	var a cliArgs
	fs.StringVar(&a.source, "source", "", "Source vertex; defaults to \"s\" for the reference graph, the first vertex otherwise")
	fs.StringVar(&a.format, "format", "text", "Output format: text or yaml")
	fs.StringVar(&a.dotFile, "dot", "", "Write the graph with final distances as Graphviz DOT to this file")
	fs.StringVar(&a.pngFile, "png", "", "Write the graph with final distances as PNG to this file")
	fs.StringVar(&a.gifFile, "gif", "", "Write an animated GIF of the snapshot history to this file")
	fs.StringVar(&a.near, "near", "", "Report the vertex nearest to the point \"x,y\"")
	fs.IntVar(&a.random, "random", 0, "Use a random graph with this many vertices instead of the reference graph")
	fs.Float64Var(&a.density, "density", 0.2, "Edge probability of the random graph")
	fs.Int64Var(&a.seed, "seed", 1, "Seed of the random graph")
	fs.BoolVar(&a.verbose, "v", false, "Log every finalization and relaxation")
	if err := fs.Parse(args); err != nil {
		return a, err
	}
	if a.format != "text" && a.format != "yaml" {
		return a, errors.Errorf("unknown -format %q", a.format)
	}

	return a, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "dijkstra-demo:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dijkstra-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	a, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g, err := buildGraph(a)
	if err != nil {
		return errors.Wrap(err, "build graph")
	}
	source := a.source
	if source == "" {
		source = defaultSource(g, a.random)
	}
	logger.Info("graph ready", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "source", source)

	res, err := dijkstra.Run(g,
		dijkstra.Source(source),
		dijkstra.WithOnFinalize(func(v string, d dijkstra.Distance) {
			logger.Debug("finalize", "vertex", v, "dist", d.String())
		}),
		dijkstra.WithOnRelax(func(u, v string, d dijkstra.Distance) {
			logger.Debug("relax", "from", u, "to", v, "dist", d.String())
		}),
	)
	if err != nil {
		return errors.Wrapf(err, "dijkstra from %q", source)
	}
	logger.Info("done", "finalized", res.Finalized(), "snapshots", len(res.History))

	if err := printResult(stdout, g, res, a.format); err != nil {
		return err
	}
	if a.near != "" {
		if err := printNearest(stdout, g, a.near); err != nil {
			return err
		}
	}

	return writeRenderings(g, res, a, logger)
}

func buildGraph(a cliArgs) (*core.Graph, error) {
	if a.random <= 0 {
		return builder.BuildGraph(nil, nil, builder.Reference())
	}

	return builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(a.seed),
			builder.WithWeightFn(builder.IntUniformWeightFn(1, 20)),
		},
		builder.RandomSparse(a.random, a.density),
	)
}

func defaultSource(g *core.Graph, random int) string {
	if random <= 0 {
		return "s"
	}
	if names := g.Names(); len(names) > 0 {
		return names[0]
	}

	return ""
}

type vertexReport struct {
	Vertex      string            `yaml:"vertex"`
	Distance    dijkstra.Distance `yaml:"distance"`
	Predecessor string            `yaml:"predecessor,omitempty"`
}

type report struct {
	Source    string         `yaml:"source"`
	Finalized int            `yaml:"finalized"`
	Vertices  []vertexReport `yaml:"vertices"`
}

func newReport(g *core.Graph, res *dijkstra.Result) report {
	r := report{Source: res.Source, Finalized: res.Finalized()}
	for _, name := range g.Names() {
		pred, _ := res.Predecessors.Of(name)
		r.Vertices = append(r.Vertices, vertexReport{
			Vertex:      name,
			Distance:    res.Distances[name],
			Predecessor: pred,
		})
	}

	return r
}

func printResult(w io.Writer, g *core.Graph, res *dijkstra.Result, format string) error {
	r := newReport(g, res)
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encode yaml")
		}

		return errors.Wrap(enc.Close(), "encode yaml")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERTEX\tDIST\tPREV")
	for _, v := range r.Vertices {
		pred := v.Predecessor
		if pred == "" {
			pred = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Vertex, v.Distance, pred)
	}

	return errors.Wrap(tw.Flush(), "write table")
}

func parsePoint(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, errors.Errorf("point %q: want \"x,y\"", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "point %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "point %q", s)
	}

	return orb.Point{x, y}, nil
}

func printNearest(w io.Writer, g *core.Graph, near string) error {
	p, err := parsePoint(near)
	if err != nil {
		return err
	}
	ix, err := spatial.NewIndex(g)
	if err != nil {
		return errors.Wrap(err, "spatial index")
	}
	hits := ix.Nearest(p, 1)
	if len(hits) == 0 {
		fmt.Fprintln(w, "nearest: none")
		return nil
	}
	_, err = fmt.Fprintf(w, "nearest to %s: %s\n", near, hits[0])

	return err
}

func writeRenderings(g *core.Graph, res *dijkstra.Result, a cliArgs, logger *slog.Logger) error {
	title := "dijkstra from " + res.Source
	final := []render.Option{render.WithTitle(title), render.WithDistances(res.Distances)}

	outputs := []struct {
		path  string
		write func(io.Writer) error
	}{
		{a.dotFile, func(w io.Writer) error { return render.DOT(w, g, final...) }},
		{a.pngFile, func(w io.Writer) error { return render.PNG(w, g, final...) }},
		{a.gifFile, func(w io.Writer) error { return render.GIF(w, g, res.History, render.WithTitle(title)) }},
	}
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := writeFile(out.path, out.write); err != nil {
			return err
		}
		logger.Info("wrote", "file", out.path)
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}

	return errors.Wrapf(f.Close(), "close %s", path)
}
