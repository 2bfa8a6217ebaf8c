// Package loader parses the two text dialects spec.md §6 accepts into a
// graph.Graph: a plain edge-list with arbitrary integer node labels
// remapped to a dense [0,N) index, and a header-prefixed dialect that
// declares N (and optionally M) up front. It is grounded on the teacher's
// read_adj_list.go: a bufio.Scanner over the input with a larger-than-
// default buffer, one edge per non-comment line.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"graphcolor/graph"
)

// MaxEdges is the implementation-defined capacity cap of spec.md §7's
// Capacity error kind: input declaring more edges than this is truncated
// to the accepted prefix, with a warning, rather than rejected outright.
const MaxEdges = 100_000_000

// scannerInitialBuffer and scannerMaxBuffer size the bufio.Scanner used to
// read the input, large enough for the long adjacency lines the teacher's
// own loader was written to tolerate.
const (
	scannerInitialBuffer = 64 * 1024
	scannerMaxBuffer     = 16 * 1024 * 1024
)

// Warning describes one recoverable InputParse condition: a skipped line,
// a dropped self-loop, or a capacity truncation notice.
type Warning struct {
	Line    int // 1-indexed position among the non-blank, non-comment lines; 0 if not line-specific
	Message string
}

// Result is the outcome of a successful Load: the constructed graph plus
// every recoverable warning encountered along the way.
type Result struct {
	Graph     *graph.Graph
	Warnings  []Warning
	Truncated bool
}

// Load reads r to completion and parses it as either dialect spec.md §6
// describes. It returns ErrInputIO only if the underlying reader itself
// fails; malformed lines, dropped self-loops, and capacity truncation are
// all reported as Warnings on a successful Result instead.
func Load(r io.Reader) (*Result, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, scannerInitialBuffer), scannerMaxBuffer)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputIO, err)
	}

	if len(lines) == 0 {
		g, _ := graph.Build(nil, 0)
		return &Result{Graph: g}, nil
	}

	if n, m, ok, unambiguous := parseHeader(lines[0]); ok {
		if result, ok := loadHeaderPrefixed(lines[1:], n, m); ok {
			return result, nil
		}
		if unambiguous {
			// A single-integer first line can only be a header ("N"); it
			// can never be an edge (an edge needs two fields). If the body
			// still doesn't validate against it, spec.md §6 mandates a
			// lenient one-vertex empty graph rather than a fatal error.
			g, _ := graph.Build(nil, 1)
			return &Result{
				Graph:    g,
				Warnings: []Warning{{Line: 1, Message: "header-prefixed input did not validate; returning empty graph"}},
			}, nil
		}
		// A two-integer first line is indistinguishable from a plain edge
		// ("u v") without looking at the body. It failed to validate as a
		// header, so it almost certainly was just the first edge: fall
		// back to treating the whole input, first line included, as a
		// plain edge-list.
		return loadEdgeList(lines), nil
	}

	return loadEdgeList(lines), nil
}

// parseHeader reports whether line looks like a header-prefixed dialect's
// first line: one or two non-negative integers. m is -1 when only N was
// given. unambiguous is true only for a single-field line, since a
// two-field line is indistinguishable from a plain edge-list's first edge
// until the body has been checked against it.
func parseHeader(line string) (n, m int, ok bool, unambiguous bool) {
	fields := strings.Fields(line)
	if len(fields) < 1 || len(fields) > 2 {
		return 0, 0, false, false
	}
	nv, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || nv < 0 || nv > math.MaxInt32 {
		return 0, 0, false, false
	}
	if len(fields) == 1 {
		return int(nv), -1, true, true
	}
	mv, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || mv < 0 {
		return 0, 0, false, false
	}
	return int(nv), int(mv), true, false
}

// loadHeaderPrefixed validates bodyLines against a declared vertex count n,
// auto-detecting 0-indexed vs. 1-indexed endpoints per spec.md §6. It
// returns ok=false if no consistent indexing convention fits every parsed
// edge, signaling the caller to fall back: to the lenient empty graph for
// an "N"-only header, or to loadEdgeList for an "N M"-shaped first line.
func loadHeaderPrefixed(bodyLines []string, n, declaredM int) (*Result, bool) {
	if n < 0 {
		return nil, false
	}

	type rawEdge struct{ u, v int64 }
	var raws []rawEdge
	var warnings []Warning
	minEndpoint, maxEndpoint := int64(math.MaxInt64), int64(math.MinInt64)

	for i, line := range bodyLines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			warnings = append(warnings, Warning{Line: i + 2, Message: "expected two integers, skipping"})
			continue
		}
		u, errU := strconv.ParseInt(fields[0], 10, 64)
		v, errV := strconv.ParseInt(fields[1], 10, 64)
		if errU != nil || errV != nil || u < 0 || v < 0 {
			warnings = append(warnings, Warning{Line: i + 2, Message: "malformed edge, skipping"})
			continue
		}
		raws = append(raws, rawEdge{u, v})
		if u < minEndpoint {
			minEndpoint = u
		}
		if v < minEndpoint {
			minEndpoint = v
		}
		if u > maxEndpoint {
			maxEndpoint = u
		}
		if v > maxEndpoint {
			maxEndpoint = v
		}
	}

	if declaredM >= 0 && int64(len(raws)) != int64(declaredM) {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("header declared M=%d edges but %d parsed", declaredM, len(raws)),
		})
	}

	if len(raws) == 0 {
		g, _ := graph.Build(nil, n)
		return &Result{Graph: g, Warnings: warnings}, true
	}

	var offset int64
	switch {
	case minEndpoint >= 0 && maxEndpoint < int64(n):
		offset = 0
	case minEndpoint >= 1 && maxEndpoint <= int64(n):
		offset = 1
	default:
		return nil, false
	}

	edges := make([]graph.Edge, 0, len(raws))
	truncated := false
	for _, re := range raws {
		if len(edges) >= MaxEdges {
			truncated = true
			warnings = append(warnings, Warning{Message: fmt.Sprintf("input exceeds capacity cap of %d edges; truncating", MaxEdges)})
			break
		}
		u, v := re.u-offset, re.v-offset
		if u == v {
			warnings = append(warnings, Warning{Message: fmt.Sprintf("self-loop at vertex %d dropped", u)})
			continue
		}
		edges = append(edges, graph.Edge{U: int(u), V: int(v)})
	}

	g, err := graph.Build(edges, n)
	if err != nil {
		return nil, false
	}
	return &Result{Graph: g, Warnings: warnings, Truncated: truncated}, true
}

// loadEdgeList parses the general edge-list dialect: two non-negative
// integers per line, arbitrary node labels remapped to a dense [0,N)
// index in first-appearance order.
func loadEdgeList(lines []string) *Result {
	labelIndex := make(map[int64]int32)
	var nextID int32
	intern := func(label int64) int32 {
		if id, ok := labelIndex[label]; ok {
			return id
		}
		id := nextID
		labelIndex[label] = id
		nextID++
		return id
	}

	var warnings []Warning
	var edges []graph.Edge
	truncated := false

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			warnings = append(warnings, Warning{Line: i + 1, Message: "expected two integers, skipping"})
			continue
		}
		u, errU := strconv.ParseInt(fields[0], 10, 64)
		v, errV := strconv.ParseInt(fields[1], 10, 64)
		if errU != nil || errV != nil || u < 0 || v < 0 {
			warnings = append(warnings, Warning{Line: i + 1, Message: "malformed edge, skipping"})
			continue
		}
		if u == v {
			warnings = append(warnings, Warning{Line: i + 1, Message: "self-loop dropped"})
			continue
		}
		if len(edges) >= MaxEdges {
			if !truncated {
				warnings = append(warnings, Warning{Line: i + 1, Message: fmt.Sprintf("input exceeds capacity cap of %d edges; truncating", MaxEdges)})
			}
			truncated = true
			break
		}
		edges = append(edges, graph.Edge{U: int(intern(u)), V: int(intern(v))})
	}

	g, _ := graph.Build(edges, int(nextID)) // nextID >= 0 always; error path unreachable
	return &Result{Graph: g, Warnings: warnings, Truncated: truncated}
}

// SaveColors writes the persisted-result format of spec.md §6: an optional
// leading run of "# " comment lines, then one "<vertex_id> <color>" line
// per vertex in ascending order.
func SaveColors(w io.Writer, colors []int32, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		if _, err := fmt.Fprintf(bw, "# %s\n", c); err != nil {
			return err
		}
	}
	for v, c := range colors {
		if _, err := fmt.Fprintf(bw, "%d %d\n", v, c); err != nil {
			return err
		}
	}
	return bw.Flush()
}
