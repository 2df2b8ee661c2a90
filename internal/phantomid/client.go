package phantomid

// #region imports
import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/obinexus/mmuoko-connect/gen/phantomid"
)

// #endregion

// #region client-struct

// Client wraps the gRPC connection to the PhantomID verification service.
type Client struct {
	conn    *grpc.ClientConn
	client  pb.PhantomIDClient
	timeout time.Duration
}

// #endregion client-struct

// #region constructor

// NewClient connects to the PhantomID gRPC server. timeout bounds each
// Verify call on top of whatever deadline the caller's context carries.
func NewClient(addr string, timeout time.Duration) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:    conn,
		client:  pb.NewPhantomIDClient(conn),
		timeout: timeout,
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.PhantomIDClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region verify

// Verify submits content with its fingerprint and returns the service's
// coherence claim.
func (c *Client) Verify(ctx context.Context, content string) (Verification, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Verify(ctx, &pb.VerifyRequest{
		Content:     content,
		Fingerprint: Fingerprint(content),
	})
	if err != nil {
		return Verification{}, fmt.Errorf("verify rpc: %w", err)
	}

	return Verification{
		Coherence: resp.Coherence,
		Verified:  resp.Verified,
	}, nil
}

// #endregion verify
