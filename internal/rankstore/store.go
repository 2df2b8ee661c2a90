package rankstore

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync/atomic"
)

// #endregion

// #region store

// Store holds the current snapshot behind an atomic pointer. Reload swaps
// the whole snapshot at once, so concurrent readers never observe a partial
// update.
type Store struct {
	path    string
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store for the rank file at path, holding an empty
// snapshot until the first load.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.current.Store(NewSnapshot())
	return s
}

// Path returns the rank file path this store reads.
func (s *Store) Path() string {
	return s.path
}

// Current returns the active snapshot. Never nil.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Reload parses the rank file and swaps it in. On error the previous
// snapshot stays active.
func (s *Store) Reload() error {
	snap, err := Load(s.path)
	if err != nil {
		return err
	}
	s.current.Store(snap)
	return nil
}

// #endregion store

// #region recompute

// Recomputer invokes the external ranking job that writes the rank file.
type Recomputer struct {
	Argv []string
}

// Run executes the ranking job and waits for it. The caller bounds the run
// through ctx.
func (r *Recomputer) Run(ctx context.Context) error {
	if len(r.Argv) == 0 {
		return errors.New("no ranking command configured")
	}
	cmd := exec.CommandContext(ctx, r.Argv[0], r.Argv[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ranking job %s: %w (output: %s)", r.Argv[0], err, trimOutput(out))
	}
	return nil
}

func trimOutput(out []byte) string {
	const max = 200
	s := string(out)
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}

// EnsureLoaded loads the snapshot, invoking the ranking job once when the
// rank file is missing. On any failure the store keeps its current snapshot
// (defaults, before the first successful load) and the error is returned for
// the caller to log; routing proceeds on the neutral fallbacks.
func (s *Store) EnsureLoaded(ctx context.Context, rec *Recomputer) error {
	err := s.Reload()
	if err == nil || !errors.Is(err, ErrNoRankingData) {
		return err
	}
	if rec == nil {
		return err
	}
	if runErr := rec.Run(ctx); runErr != nil {
		return fmt.Errorf("recompute rankings: %w", runErr)
	}
	return s.Reload()
}

// #endregion recompute
