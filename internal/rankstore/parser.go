package rankstore

// #region imports
import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// #endregion

// ErrNoRankingData signals that the rank file does not exist yet. The caller
// decides whether to trigger the external ranking job and retry.
var ErrNoRankingData = errors.New("no ranking data")

// #region parse

// Parse reads the rank file format written by the external ranking job:
//
//	[obinexus]
//		center = <node>
//		coherence = <float>
//	[cluster "research"]
//		rank = 1.500000
//	[node "uche-knowledge"]
//		rank = 1.234000
//		layer = 7
//		cluster = research
//
// Key/value lines attach to the open section. Comments, blank lines, and
// anything else that matches no known form are skipped, never an error.
func Parse(r io.Reader) *Snapshot {
	snap := NewSnapshot()

	var current Section
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if kind, name, ok := parseHeader(line); ok {
			switch kind {
			case sectionCenter:
				current = snap.Center
			case sectionCluster:
				if _, exists := snap.Clusters[name]; !exists {
					snap.Clusters[name] = Section{}
				}
				current = snap.Clusters[name]
			case sectionNode:
				if _, exists := snap.Nodes[name]; !exists {
					snap.Nodes[name] = Section{}
					snap.NodeOrder = append(snap.NodeOrder, name)
				}
				current = snap.Nodes[name]
			}
			continue
		}

		if current == nil {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		current[key] = strings.TrimSpace(value)
	}

	return snap
}

// #endregion parse

// #region headers

type sectionKind int

const (
	sectionCenter sectionKind = iota
	sectionCluster
	sectionNode
)

func parseHeader(line string) (sectionKind, string, bool) {
	if line == "[obinexus]" {
		return sectionCenter, "", true
	}
	if name, ok := quotedHeader(line, "[cluster \""); ok {
		return sectionCluster, name, true
	}
	if name, ok := quotedHeader(line, "[node \""); ok {
		return sectionNode, name, true
	}
	return 0, "", false
}

func quotedHeader(line, prefix string) (string, bool) {
	if !strings.HasPrefix(line, prefix) || !strings.HasSuffix(line, "\"]") {
		return "", false
	}
	name := line[len(prefix) : len(line)-2]
	if name == "" {
		return "", false
	}
	return name, true
}

// #endregion headers

// #region load

// Load parses the rank file at path. A missing file reports
// ErrNoRankingData; Load never triggers the ranking job itself.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("rank file %s: %w", path, ErrNoRankingData)
		}
		return nil, fmt.Errorf("open rank file: %w", err)
	}
	defer f.Close()
	return Parse(f), nil
}

// #endregion load
