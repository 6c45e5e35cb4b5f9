package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/episim/core"
)

// Sentinel errors for graph loading.
var (
	// ErrBadLine is returned for a record with more than two fields.
	ErrBadLine = errors.New("graphio: malformed edge-list line")

	// ErrDuplicateVertex is returned when an isolated vertex is declared twice.
	ErrDuplicateVertex = errors.New("graphio: duplicate vertex declaration")
)

// commentPrefix starts a skipped line.
const commentPrefix = "#"

// LoadEdgeList reads an edge-list graph from r.
// Endpoint vertices are declared implicitly by their first appearance;
// a single-field line declares an isolated vertex explicitly.
func LoadEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	declared := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			id := fields[0]
			if _, dup := declared[id]; dup {
				return nil, fmt.Errorf("%w: %q at line %d", ErrDuplicateVertex, id, lineNo)
			}
			declared[id] = struct{}{}
			if err := g.AddVertex(id); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
			}
		case 2:
			for _, id := range fields {
				if err := g.AddVertex(id); err != nil {
					return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
				}
			}
			if err := g.AddEdge(fields[0], fields[1]); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("%w: %d fields at line %d", ErrBadLine, len(fields), lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return g, nil
}

// LoadEdgeListFile opens path and delegates to LoadEdgeList.
func LoadEdgeListFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadEdgeList(f)
}
