package platform

// #region imports
import (
	"fmt"
	"net/http"
	"time"

	"github.com/obinexus/mmuoko-connect/internal/dispatch"
)

// #endregion

// #region builder

// Adapter kinds a Spec can name.
const (
	KindSimulated = "simulated"
	KindWebhook   = "webhook"
)

// Spec describes one adapter to build.
type Spec struct {
	Name     string
	Kind     string
	Endpoint string
	Seed     int64
}

// BuildRegistry builds the adapter each spec describes and registers it. An
// empty kind means simulated; webhook specs need an endpoint. The client is
// shared by every webhook adapter and may be nil.
func BuildRegistry(specs []Spec, client *http.Client) (*dispatch.Registry, error) {
	reg := dispatch.NewRegistry()
	for _, spec := range specs {
		adapter, err := build(spec, client)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(adapter); err != nil {
			return nil, fmt.Errorf("register %s: %w", spec.Name, err)
		}
	}
	return reg, nil
}

func build(spec Spec, client *http.Client) (dispatch.Adapter, error) {
	switch spec.Kind {
	case KindWebhook:
		if spec.Endpoint == "" {
			return nil, fmt.Errorf("platform %s: webhook needs an endpoint", spec.Name)
		}
		return NewWebhookAdapter(spec.Name, spec.Endpoint, client), nil
	case KindSimulated, "":
		seed := spec.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return NewSimulatedAdapter(spec.Name, seed), nil
	default:
		return nil, fmt.Errorf("platform %s: unknown kind %q", spec.Name, spec.Kind)
	}
}

// #endregion builder
