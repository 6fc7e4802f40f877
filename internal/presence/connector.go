package presence

import "time"

// DefaultRetryInterval is the fixed pause between connection attempts.
const DefaultRetryInterval = 3 * time.Second

// Connector establishes a presence connection, retrying forever at a fixed
// interval. The loop has no bound and no cancellation: the feature is
// optional and low-priority, and a service that never appears only costs
// one cheap dial per interval. Individual failures are not logged; only
// the eventual success is reported by the caller.
type Connector struct {
	SocketPath string
	AppID      string
	Interval   time.Duration

	// dial is a test seam; nil means Dial.
	dial func(socketPath, appID string) (*Client, error)
}

// NewConnector builds a connector with the default socket path and app ID.
func NewConnector() *Connector {
	return &Connector{
		SocketPath: DefaultSocketPath(),
		AppID:      AppID,
		Interval:   DefaultRetryInterval,
	}
}

// Connect blocks until a connection is established and returns the live
// client. It never returns an error: every failed attempt schedules the
// next one after the retry interval.
func (c *Connector) Connect() *Client {
	dial := c.dial
	if dial == nil {
		dial = Dial
	}
	interval := c.Interval
	if interval <= 0 {
		interval = DefaultRetryInterval
	}

	for {
		client, err := dial(c.SocketPath, c.AppID)
		if err == nil {
			return client
		}
		time.Sleep(interval)
	}
}
