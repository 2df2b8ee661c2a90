package dispatch

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/obinexus/mmuoko-connect/internal/tone"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingAdapter struct {
	name    string
	outcome Outcome
	err     error
	calls   atomic.Int32
}

func (a *countingAdapter) Name() string { return a.name }

func (a *countingAdapter) Submit(_ context.Context, _ *Manifest) (Outcome, error) {
	a.calls.Add(1)
	return a.outcome, a.err
}

// blockingAdapter waits for its context to give up, then reports the reason.
type blockingAdapter struct {
	name string
}

func (a *blockingAdapter) Name() string { return a.name }

func (a *blockingAdapter) Submit(ctx context.Context, _ *Manifest) (Outcome, error) {
	<-ctx.Done()
	return Outcome{}, ctx.Err()
}

func testManifest(platforms ...string) *Manifest {
	score := tone.Score{Dominant: tone.LayerVision, Counts: map[int]int{}}
	return NewManifest("future strategy", score, "research", 1.2, platforms)
}

func TestDistributeAllSucceed(t *testing.T) {
	reg := NewRegistry()
	yt := &countingAdapter{name: "youtube", outcome: Outcome{Success: true, URL: "https://youtube/abc"}}
	tk := &countingAdapter{name: "tiktok", outcome: Outcome{Success: true, URL: "https://tiktok/def"}}
	for _, a := range []Adapter{yt, tk} {
		if err := reg.Register(a); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	engine := NewEngine(reg, time.Second)
	result := engine.Distribute(context.Background(), testManifest("youtube", "tiktok"))

	if len(result) != 2 {
		t.Fatalf("result has %d entries, want 2", len(result))
	}
	for _, name := range []string{"youtube", "tiktok"} {
		out, ok := result[name]
		if !ok {
			t.Fatalf("no outcome for %s", name)
		}
		if !out.Success {
			t.Errorf("%s: Success = false, error %q", name, out.Error)
		}
		if out.Platform != name {
			t.Errorf("%s: Platform = %q", name, out.Platform)
		}
	}
	if yt.calls.Load() != 1 || tk.calls.Load() != 1 {
		t.Errorf("adapter calls = %d, %d, want 1 each", yt.calls.Load(), tk.calls.Load())
	}
}

func TestDistributeUnknownPlatform(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&countingAdapter{name: "youtube", outcome: Outcome{Success: true}}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	engine := NewEngine(reg, time.Second)
	result := engine.Distribute(context.Background(), testManifest("youtube", "myspace"))

	if len(result) != 2 {
		t.Fatalf("result has %d entries, want 2", len(result))
	}
	if !result["youtube"].Success {
		t.Errorf("youtube should succeed despite unknown sibling")
	}
	unknown := result["myspace"]
	if unknown.Success {
		t.Errorf("myspace should fail")
	}
	if !strings.Contains(unknown.Error, ErrUnknownPlatform.Error()) {
		t.Errorf("myspace error = %q, want mention of unknown platform", unknown.Error)
	}
}

func TestDistributeIsolatesAdapterError(t *testing.T) {
	reg := NewRegistry()
	ok := &countingAdapter{name: "youtube", outcome: Outcome{Success: true}}
	broken := &countingAdapter{name: "tiktok", err: errors.New("upload quota exceeded")}
	for _, a := range []Adapter{ok, broken} {
		if err := reg.Register(a); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	engine := NewEngine(reg, time.Second)
	result := engine.Distribute(context.Background(), testManifest("youtube", "tiktok"))

	if !result["youtube"].Success {
		t.Errorf("youtube should succeed despite tiktok failure")
	}
	failed := result["tiktok"]
	if failed.Success {
		t.Errorf("tiktok should fail")
	}
	if !strings.Contains(failed.Error, "upload quota exceeded") {
		t.Errorf("tiktok error = %q", failed.Error)
	}
}

func TestDistributeTimesOutSlowAdapter(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&blockingAdapter{name: "youtube"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	engine := NewEngine(reg, 20*time.Millisecond)
	result := engine.Distribute(context.Background(), testManifest("youtube"))

	out := result["youtube"]
	if out.Success {
		t.Fatalf("blocking adapter should not succeed")
	}
	if !strings.Contains(out.Error, context.DeadlineExceeded.Error()) {
		t.Errorf("error = %q, want deadline exceeded", out.Error)
	}
}

func TestDistributeEmptyPlatformList(t *testing.T) {
	engine := NewEngine(NewRegistry(), time.Second)
	result := engine.Distribute(context.Background(), testManifest())
	if len(result) != 0 {
		t.Errorf("result = %v, want empty", result)
	}
}

func TestDistributeResultCoversEveryPlatform(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&countingAdapter{name: "youtube", outcome: Outcome{Success: true}}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	engine := NewEngine(reg, time.Second)
	platforms := []string{"youtube", "tiktok", "instagram", "twitter"}
	result := engine.Distribute(context.Background(), testManifest(platforms...))

	if len(result) != len(platforms) {
		t.Fatalf("result has %d entries, want %d", len(result), len(platforms))
	}
	for _, name := range platforms {
		if _, ok := result[name]; !ok {
			t.Errorf("no outcome for %s", name)
		}
	}
}
