package cli

import (
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvroute/core"
)

// ErrBadEdgeSpec is returned (wrapped) for an edge argument that is not
// of the form FROM-TO=WEIGHT over known labels.
var ErrBadEdgeSpec = errors.New("cli: malformed edge, want FROM-TO=WEIGHT")

// graphFlags describe a graph on the command line:
//
//	--nodes A,B,C --edge A-B=1 --edge B-C=2
//	--nodes "New York,Boston" --edges "'New York-Boston=3'"
type graphFlags struct {
	nodes []string
	edge  []string
	edges string
}

func (f *graphFlags) bind(fs *pflag.FlagSet) {
	fs.StringSliceVar(&f.nodes, "nodes", nil, "comma-separated vertex labels, in index order")
	fs.StringArrayVar(&f.edge, "edge", nil, "edge FROM-TO=WEIGHT (repeatable)")
	fs.StringVar(&f.edges, "edges", "", "space-separated edges FROM-TO=WEIGHT, shell quoting allowed")
}

// build creates the graph described by the flags.
func (f *graphFlags) build() (*core.Graph, error) {
	g, err := core.NewGraph(f.nodes)
	if err != nil {
		return nil, err
	}

	specs := append([]string(nil), f.edge...)
	if f.edges != "" {
		words, err := shellquote.Split(f.edges)
		if err != nil {
			return nil, errors.Wrap(err, "cli: --edges")
		}
		specs = append(specs, words...)
	}

	for _, spec := range specs {
		from, to, w, err := parseEdge(g, spec)
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(from, to, w); err != nil {
			return nil, errors.Wrapf(err, "cli: edge %q", spec)
		}
	}

	return g, nil
}

// parseEdge splits FROM-TO=WEIGHT. Labels may contain '-': every split point
// is tried and the one where both sides are vertices of g wins.
func parseEdge(g *core.Graph, spec string) (from, to string, w int64, err error) {
	eq := strings.LastIndexByte(spec, '=')
	if eq < 0 {
		return "", "", 0, errors.Wrapf(ErrBadEdgeSpec, "%q: missing weight", spec)
	}
	pair, weight := spec[:eq], strings.TrimSpace(spec[eq+1:])

	w, err = strconv.ParseInt(weight, 10, 64)
	if err != nil {
		return "", "", 0, errors.Wrapf(ErrBadEdgeSpec, "%q: weight %q", spec, weight)
	}

	for i := 0; i < len(pair); i++ {
		if pair[i] != '-' {
			continue
		}
		a, b := strings.TrimSpace(pair[:i]), strings.TrimSpace(pair[i+1:])
		if g.HasVertex(a) && g.HasVertex(b) {
			return a, b, w, nil
		}
	}

	return "", "", 0, errors.Wrapf(ErrBadEdgeSpec, "%q: endpoints are not known vertices", spec)
}
