// Package presence integrates with a local peer-presence service over a
// unix socket, used for optional status sharing. The integration is
// best-effort: the launcher works identically when the service never
// appears.
package presence

import (
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// AppID identifies the launcher to the presence service.
const AppID = "1468876407756029965"

const dialTimeout = 2 * time.Second

// Client provides RPC access to the presence service.
type Client struct {
	conn     net.Conn
	client   *rpc.Client
	identity string
}

// HandshakeRequest introduces the application to the service.
type HandshakeRequest struct {
	AppID    string `json:"app_id"`
	ClientID string `json:"client_id"`
}

// HandshakeResponse acknowledges the handshake.
type HandshakeResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

// ActivityRequest publishes the user's current activity.
type ActivityRequest struct {
	State   string `json:"state"`
	Details string `json:"details"`
}

// ActivityResponse acknowledges an activity update.
type ActivityResponse struct {
	Applied bool `json:"applied"`
}

// Dial connects to the presence socket and completes the handshake. The
// returned client is ready for activity updates.
func Dial(socketPath, appID string) (*Client, error) {
	conn, err := net.DialTimeout("unix", socketPath, dialTimeout)
	if err != nil {
		return nil, err
	}
	client := &Client{
		conn:     conn,
		client:   rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn)),
		identity: uuid.NewString(),
	}

	var resp HandshakeResponse
	req := HandshakeRequest{AppID: appID, ClientID: client.identity}
	if err := client.client.Call("Presence.Handshake", req, &resp); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("handshake: %w", err)
	}
	if !resp.Accepted {
		_ = client.Close()
		return nil, fmt.Errorf("handshake rejected: %s", resp.Message)
	}
	return client, nil
}

// Identity returns the client identifier sent during the handshake.
func (c *Client) Identity() string { return c.identity }

// SetActivity publishes the current activity.
func (c *Client) SetActivity(state, details string) error {
	var resp ActivityResponse
	req := ActivityRequest{State: state, Details: details}
	if err := c.client.Call("Presence.SetActivity", req, &resp); err != nil {
		return fmt.Errorf("set activity: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		// Closing the rpc client tears down the codec and the socket.
		return c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// DefaultSocketPath locates the presence service socket, preferring the
// user's runtime directory.
func DefaultSocketPath() string {
	if dir, ok := os.LookupEnv("XDG_RUNTIME_DIR"); ok && dir != "" {
		return filepath.Join(dir, "quantum-presence.sock")
	}
	return filepath.Join(os.TempDir(), "quantum-presence.sock")
}
