package phantomid

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/obinexus/mmuoko-connect/gen/phantomid"
)

type stubVerifier struct {
	verification Verification
	err          error
	calls        int
}

func (s *stubVerifier) Verify(ctx context.Context, content string) (Verification, error) {
	s.calls++
	return s.verification, s.err
}

func TestGatePassesAboveThreshold(t *testing.T) {
	v := &stubVerifier{verification: Verification{Coherence: 0.97, Verified: true}}
	g := NewGate(v, DefaultGateConfig())

	got, err := g.Check(context.Background(), "content")
	if err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if got.Coherence != 0.97 || !got.Verified {
		t.Fatalf("unexpected verification %+v", got)
	}
}

func TestGateFailsBelowThreshold(t *testing.T) {
	v := &stubVerifier{verification: Verification{Coherence: 0.90, Verified: true}}
	g := NewGate(v, DefaultGateConfig())

	_, err := g.Check(context.Background(), "content")
	if !errors.Is(err, ErrVerificationFailed) {
		t.Fatalf("expected ErrVerificationFailed, got %v", err)
	}

	var ve *VerificationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *VerificationError, got %T", err)
	}
	if ve.Coherence != 0.90 {
		t.Errorf("expected claimed coherence 0.90 in error, got %v", ve.Coherence)
	}
	if ve.Threshold != DefaultThreshold {
		t.Errorf("expected threshold %v in error, got %v", DefaultThreshold, ve.Threshold)
	}
}

func TestGatePassesAtExactThreshold(t *testing.T) {
	v := &stubVerifier{verification: Verification{Coherence: DefaultThreshold}}
	g := NewGate(v, DefaultGateConfig())

	if _, err := g.Check(context.Background(), "content"); err != nil {
		t.Fatalf("coherence equal to threshold should pass, got %v", err)
	}
}

func TestGateFailsOnVerifierError(t *testing.T) {
	v := &stubVerifier{err: fmt.Errorf("service unavailable")}
	g := NewGate(v, DefaultGateConfig())

	_, err := g.Check(context.Background(), "content")
	if !errors.Is(err, ErrVerificationFailed) {
		t.Fatalf("expected ErrVerificationFailed, got %v", err)
	}
}

func TestGateFailsOnEmptyResult(t *testing.T) {
	// A collaborator returning no result claims zero coherence.
	v := &stubVerifier{}
	g := NewGate(v, DefaultGateConfig())

	if _, err := g.Check(context.Background(), "content"); err == nil {
		t.Fatal("expected failure for empty verification")
	}
}

func TestGateCustomThreshold(t *testing.T) {
	v := &stubVerifier{verification: Verification{Coherence: 0.5}}
	g := NewGate(v, GateConfig{Threshold: 0.4})

	if _, err := g.Check(context.Background(), "content"); err != nil {
		t.Fatalf("expected pass with lowered threshold, got %v", err)
	}
}

type fakePhantomIDService struct {
	lastReq *pb.VerifyRequest
	resp    *pb.VerifyResponse
	err     error
}

func (f *fakePhantomIDService) Verify(ctx context.Context, in *pb.VerifyRequest, opts ...grpc.CallOption) (*pb.VerifyResponse, error) {
	f.lastReq = in
	return f.resp, f.err
}

func TestClientVerifyMapsResponse(t *testing.T) {
	svc := &fakePhantomIDService{resp: &pb.VerifyResponse{Coherence: 0.99, Verified: true}}
	client := NewClientWithService(svc)

	got, err := client.Verify(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.Coherence != 0.99 || !got.Verified {
		t.Fatalf("unexpected verification %+v", got)
	}
	if svc.lastReq.Content != "hello world" {
		t.Errorf("unexpected content %q", svc.lastReq.Content)
	}
	if svc.lastReq.Fingerprint != Fingerprint("hello world") {
		t.Errorf("fingerprint mismatch: %q", svc.lastReq.Fingerprint)
	}
}

func TestClientVerifyWrapsRPCError(t *testing.T) {
	svc := &fakePhantomIDService{err: fmt.Errorf("boom")}
	client := NewClientWithService(svc)

	if _, err := client.Verify(context.Background(), "x"); err == nil {
		t.Fatal("expected rpc error")
	}
}

func TestFingerprintStable(t *testing.T) {
	a := Fingerprint("content")
	b := Fingerprint("content")
	if a != b {
		t.Fatalf("fingerprint not deterministic: %q vs %q", a, b)
	}
	if len(a) != 20 {
		t.Fatalf("expected 20 hex chars, got %d", len(a))
	}
	if a == Fingerprint("different") {
		t.Fatal("distinct content should not collide")
	}
}
