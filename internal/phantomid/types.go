package phantomid

// #region imports
import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// #endregion

// DefaultThreshold is the minimum coherence a verification must claim for
// distribution to proceed.
const DefaultThreshold = 0.954

// ErrVerificationFailed marks a routing call rejected by the coherence gate.
var ErrVerificationFailed = errors.New("verification failed")

// #region verification

// Verification is the identity service's claim about one piece of content.
type Verification struct {
	Coherence float64
	Verified  bool
}

// Verifier is the boundary to the identity verification service. The gate
// only consumes the claimed coherence; how it is produced is opaque.
type Verifier interface {
	Verify(ctx context.Context, content string) (Verification, error)
}

// #endregion verification

// #region error

// VerificationError carries the rejected verification alongside the
// sentinel, so callers can report the claimed coherence.
type VerificationError struct {
	Coherence float64
	Threshold float64
	Cause     error
}

func (e *VerificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("verification failed: %v", e.Cause)
	}
	return fmt.Sprintf("verification failed: coherence %.4f below threshold %.4f",
		e.Coherence, e.Threshold)
}

func (e *VerificationError) Unwrap() error {
	return ErrVerificationFailed
}

// #endregion error

// #region fingerprint

// Fingerprint returns a short hex fingerprint of content.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:10])
}

// #endregion fingerprint
