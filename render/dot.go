package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dijkstraviz/core"
)

// DOT writes g as a Graphviz digraph. Positions are pinned ("x,y!") so
// `neato -n` reproduces the layout; edges carry their weight as label.
// With WithDistances, each vertex gets an xlabel with its distance.
func DOT(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return errors.New("render: graph is nil")
	}
	cfg := newConfig(opts...)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	if cfg.title != "" {
		fmt.Fprintf(bw, "  label=%s;\n", dotQuote(cfg.title))
	}
	fmt.Fprintln(bw, `  node [shape=circle, style=filled, fillcolor="lightblue"];`)

	names, positions := g.Vertices(), g.Positions()
	for i, name := range names {
		attrs := []string{fmt.Sprintf(`pos="%s,%s!"`, formatFloat(positions[i].X()), formatFloat(positions[i].Y()))}
		if cfg.distances != nil {
			if d, ok := cfg.distances[name]; ok {
				attrs = append(attrs, "xlabel="+dotQuote(d.String()))
			}
		}
		fmt.Fprintf(bw, "  %s [%s];\n", dotQuote(name), strings.Join(attrs, ", "))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  %s -> %s [label=%s];\n", dotQuote(e.From), dotQuote(e.To), dotQuote(formatFloat(e.Weight)))
	}
	fmt.Fprintln(bw, "}")

	return errors.Wrap(bw.Flush(), "render: write dot")
}

func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return `"` + s + `"`
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
