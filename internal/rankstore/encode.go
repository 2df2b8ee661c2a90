package rankstore

// #region imports
import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// #endregion

// #region key-order

// Preferred key order per section, matching the ranking job's output.
// Unknown keys follow in sorted order so encoding stays deterministic.
var (
	centerKeyOrder  = []string{"center", "coherence"}
	clusterKeyOrder = []string{"rank", "layer", "uri", "mode"}
	nodeKeyOrder    = []string{"rank", "layer", "cluster", "path", "remote"}
)

// #endregion key-order

// #region encode

// Encode renders a snapshot back into the rank file format. Parse(Encode(s))
// yields a snapshot with the same sections and key/value pairs.
func Encode(s *Snapshot) []byte {
	var b strings.Builder

	b.WriteString("[obinexus]\n")
	writeSection(&b, s.Center, centerKeyOrder)
	b.WriteString("\n")

	for _, name := range s.ClusterNames() {
		fmt.Fprintf(&b, "[cluster %q]\n", name)
		writeSection(&b, s.Clusters[name], clusterKeyOrder)
		b.WriteString("\n")
	}

	for _, name := range s.NodeOrder {
		fmt.Fprintf(&b, "[node %q]\n", name)
		writeSection(&b, s.Nodes[name], nodeKeyOrder)
		b.WriteString("\n")
	}

	return []byte(b.String())
}

func writeSection(b *strings.Builder, sec Section, preferred []string) {
	written := make(map[string]bool, len(sec))
	for _, key := range preferred {
		if v, ok := sec[key]; ok {
			fmt.Fprintf(b, "\t%s = %s\n", key, v)
			written[key] = true
		}
	}

	rest := make([]string, 0, len(sec))
	for key := range sec {
		if !written[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		fmt.Fprintf(b, "\t%s = %s\n", key, sec[key])
	}
}

// #endregion encode

// #region write-file

// WriteFile encodes the snapshot to path via a temp file and atomic rename,
// so a concurrent reader never observes a truncated file.
func WriteFile(path string, s *Snapshot) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".rank-*")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}

	if _, err := tmp.Write(Encode(s)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write rank file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close rank file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace rank file: %w", err)
	}
	return nil
}

// #endregion write-file
