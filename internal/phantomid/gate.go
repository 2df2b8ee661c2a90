package phantomid

// #region imports
import (
	"context"
)

// #endregion

// #region config

// GateConfig controls the coherence gate.
type GateConfig struct {
	Threshold float64
}

// DefaultGateConfig returns the stock threshold.
func DefaultGateConfig() GateConfig {
	return GateConfig{Threshold: DefaultThreshold}
}

// #endregion config

// #region gate

// Gate enforces the minimum coherence threshold before any distribution.
// A failed check is fatal to the routing call: the engine must not be
// invoked afterwards.
type Gate struct {
	verifier Verifier
	config   GateConfig
}

// NewGate creates a gate over the given verifier.
func NewGate(v Verifier, config GateConfig) *Gate {
	return &Gate{verifier: v, config: config}
}

// Check verifies content and compares the claimed coherence against the
// threshold. Verifier errors and sub-threshold claims both surface as a
// *VerificationError wrapping ErrVerificationFailed.
func (g *Gate) Check(ctx context.Context, content string) (Verification, error) {
	v, err := g.verifier.Verify(ctx, content)
	if err != nil {
		return Verification{}, &VerificationError{
			Threshold: g.config.Threshold,
			Cause:     err,
		}
	}
	if v.Coherence < g.config.Threshold {
		return v, &VerificationError{
			Coherence: v.Coherence,
			Threshold: g.config.Threshold,
		}
	}
	return v, nil
}

// #endregion gate
