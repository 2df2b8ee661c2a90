package dispatch

// #region imports
import (
	"context"
	"sort"
)

// #endregion

// #region adapter

// Adapter is the contract one platform integration satisfies. Submit either
// returns the platform's outcome or an error; the engine records errors as
// failed outcomes without touching sibling platforms.
type Adapter interface {
	Name() string
	Submit(ctx context.Context, m *Manifest) (Outcome, error)
}

// #endregion adapter

// #region outcome

// Engagement counts one platform's reaction to a distribution.
type Engagement struct {
	Views  int `json:"views"`
	Likes  int `json:"likes"`
	Shares int `json:"shares"`
}

// Outcome records how one platform fared. Error is empty on success; URL and
// Engagement are zero on failure.
type Outcome struct {
	Success    bool       `json:"success"`
	Platform   string     `json:"platform"`
	URL        string     `json:"url,omitempty"`
	Engagement Engagement `json:"engagement"`
	Error      string     `json:"error,omitempty"`
}

// Result maps platform identifier to outcome. Every requested platform has an
// entry regardless of how its adapter fared.
type Result map[string]Outcome

// Successes counts the outcomes that succeeded.
func (r Result) Successes() int {
	n := 0
	for _, out := range r {
		if out.Success {
			n++
		}
	}
	return n
}

// Platforms returns the platform identifiers in sorted order, for stable
// reporting.
func (r Result) Platforms() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// #endregion outcome
