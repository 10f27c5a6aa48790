// Package edgelist reads plain-text edge lists into memory.
//
// The format is the one used by the SNAP network datasets: one directed
// edge per line as two whitespace-separated unsigned integers, with blank
// lines and '#' comment lines ignored. The reader is deliberately
// tolerant — lines that do not parse as an edge are skipped and counted,
// never reported individually.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/neurograph/neurograph/pkg/graph"
)

// ErrNoValidEdges is returned when the input contains no parseable edges.
// An edge list consisting solely of comments or garbage is treated as a
// load failure rather than an empty graph.
var ErrNoValidEdges = errors.New("edgelist: no valid edges in input")

// DefaultProgressEvery is the edge-count interval at which
// Options.Progress fires when Options.Every is zero.
const DefaultProgressEvery = 1_000_000

// maxLineBytes bounds a single input line. Edge lines are tiny; the
// generous cap only guards against binary junk fed by mistake.
const maxLineBytes = 1 << 20

// Options controls optional reader behavior.
type Options struct {
	// Progress, when non-nil, is invoked with the running total after
	// every Every parsed edges.
	Progress func(parsed int)

	// Every overrides the progress interval. Zero or negative falls back
	// to DefaultProgressEvery.
	Every int
}

// Result holds the outcome of reading an edge list.
type Result struct {
	Edges   []graph.Edge // parsed edges, in file order
	Skipped int          // comment, blank, and malformed lines
}

// Read parses an edge list from r.
// It returns ErrNoValidEdges if the input yields no edges at all.
func Read(r io.Reader, opts Options) (Result, error) {
	var res Result

	every := opts.Every
	if every <= 0 {
		every = DefaultProgressEvery
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == '#' {
			res.Skipped++
			continue
		}

		from, to, ok := parseEdge(line)
		if !ok {
			res.Skipped++
			continue
		}

		res.Edges = append(res.Edges, graph.Edge{From: from, To: to})
		if opts.Progress != nil && len(res.Edges)%every == 0 {
			opts.Progress(len(res.Edges))
		}
	}
	if err := sc.Err(); err != nil {
		return Result{}, fmt.Errorf("edgelist: read: %w", err)
	}

	if len(res.Edges) == 0 {
		return Result{}, ErrNoValidEdges
	}
	return res, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts Options) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, opts)
}

// parseEdge extracts the first two whitespace-separated fields of line as
// unsigned node ids. Extra trailing fields are tolerated, matching common
// dataset exports that append weights or timestamps.
func parseEdge(line string) (from, to uint32, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, false
	}
	f, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return 0, 0, false
	}
	t, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return 0, 0, false
	}
	return uint32(f), uint32(t), true
}
