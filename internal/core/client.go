package core

// Client is one live connection as seen by the core layer. Its identity
// and room membership live in the presence directory, not here; a client
// that never joins anything stays anonymous for its whole session.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 8),
	}
}

// send delivers an event without blocking. Slow consumers lose events
// rather than stalling the hub; delivery is best effort.
func (c *Client) send(ev *Event) {
	select {
	case c.Events <- ev:
	default:
	}
}
