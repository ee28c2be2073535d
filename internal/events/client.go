package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"sync"
	"syscall"
	"time"
)

// DefaultDebounce is the batching window used when none is configured
const DefaultDebounce = 100 * time.Millisecond

// Client is a connection to the slotask daemon. Outgoing events are
// debounced into one notification per window; incoming events are delivered
// through Listen, which reconnects with exponential backoff.
type Client struct {
	socketPath string

	mu      sync.Mutex
	conn    net.Conn
	encoder *json.Encoder
	decoder *json.Decoder
	closed  bool

	// Batching
	eventQueue   chan Event
	debounce     time.Duration
	batcherOnce  sync.Once
	batcherDone  chan struct{}
	batcherStart bool

	// Reconnection
	maxRetries int
	baseDelay  time.Duration

	currentProjectID int
	lastSequence     int64

	ctx    context.Context
	cancel context.CancelFunc
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithDebounce sets the batching window
func WithDebounce(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithReconnect sets the retry budget used by Listen
func WithReconnect(maxRetries int, baseDelay time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.baseDelay = baseDelay
	}
}

// NewClient creates a client for the socket at socketPath but does not connect.
// SLOTASK_EVENT_DEBOUNCE_MS overrides the default batching window.
func NewClient(socketPath string, opts ...ClientOption) *Client {
	debounce := DefaultDebounce
	if v := os.Getenv("SLOTASK_EVENT_DEBOUNCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			debounce = time.Duration(ms) * time.Millisecond
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		socketPath:  socketPath,
		eventQueue:  make(chan Event, 100),
		debounce:    debounce,
		maxRetries:  5,
		baseDelay:   time.Second,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect dials the daemon and (re)sends the current subscription.
// The batching goroutine is started on the first successful connect.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClientClosed
	}

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial daemon socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)

	if err := c.encoder.Encode(Message{
		Version:   ProtocolVersion,
		Type:      MsgSubscribe,
		Subscribe: &SubscribeMessage{ProjectID: c.currentProjectID},
	}); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Debug("error closing connection", "error", closeErr)
		}
		c.conn = nil
		return fmt.Errorf("failed to send subscription: %w", err)
	}

	c.batcherOnce.Do(func() {
		c.batcherStart = true
		go c.runBatcher()
	})

	return nil
}

// SendEvent queues an event without blocking
func (c *Client) SendEvent(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClientClosed
	}

	select {
	case c.eventQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// runBatcher collapses queued events into one send per debounce window.
// Events from different projects collapse into project 0.
func (c *Client) runBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var (
		pending   bool
		projectID int
	)

	add := func(e Event) {
		switch {
		case !pending:
			pending = true
			projectID = e.ProjectID
		case projectID != e.ProjectID:
			projectID = 0
		}
	}

	flush := func() {
		if !pending {
			return
		}
		pending = false
		err := c.writeMessage(Message{
			Version: ProtocolVersion,
			Type:    MsgEvent,
			Event: &Event{
				Type:      EventDatabaseChanged,
				ProjectID: projectID,
				Timestamp: time.Now(),
			},
		})
		if err != nil && !isConnectionError(err) {
			slog.Warn("failed to send batched event", "error", err)
		}
	}

	for {
		select {
		case <-c.ctx.Done():
			// Drain what Close left behind
			for {
				select {
				case e := <-c.eventQueue:
					add(e)
				default:
					flush()
					return
				}
			}
		case e := <-c.eventQueue:
			add(e)
		case <-ticker.C:
			flush()
		}
	}
}

func (c *Client) writeMessage(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	return c.encoder.Encode(msg)
}

// Listen returns a channel of events from the daemon. Lost connections are
// retried with exponential backoff; the channel closes when ctx is done or
// the retry budget is spent.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return nil, ErrClientClosed
	}

	eventChan := make(chan Event, 10)
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		err := c.readEvents(ctx, eventChan)
		if ctx.Err() != nil || c.ctx.Err() != nil {
			return
		}

		slog.Info("daemon connection lost, reconnecting", "error", err)
		if !c.reconnect(ctx) {
			slog.Warn("giving up on daemon connection", "attempts", c.maxRetries)
			return
		}
		slog.Info("reconnected to daemon")
	}
}

func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return ErrNotConnected
		}
		// Pings arrive every 30s; a minute of silence means a dead daemon
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		var msg Message
		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case MsgEvent:
			if msg.Event == nil || msg.Event.SequenceID <= c.lastSequence {
				continue
			}
			c.lastSequence = msg.Event.SequenceID
			select {
			case eventChan <- *msg.Event:
			case <-ctx.Done():
				return ctx.Err()
			}

		case MsgPing:
			err := c.writeMessage(Message{Version: ProtocolVersion, Type: MsgPong})
			if err != nil && !isConnectionError(err) {
				slog.Warn("failed to send pong", "error", err)
			}
		}
	}
}

// isConnectionError reports errors that just mean the peer went away
func isConnectionError(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, ErrNotConnected)
}

// reconnect retries Connect, doubling the delay after each failure
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-c.ctx.Done():
			return false
		case <-time.After(delay):
		}

		c.mu.Lock()
		if c.conn != nil {
			_ = c.conn.Close()
			c.conn = nil
		}
		c.mu.Unlock()

		err := c.Connect(ctx)
		if err == nil {
			return true
		}
		slog.Debug("reconnect attempt failed", "attempt", i+1, "max", c.maxRetries, "error", err)
		delay *= 2
	}

	return false
}

// Subscribe narrows delivered events to one project; 0 means all projects
func (c *Client) Subscribe(projectID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.currentProjectID = projectID
	if c.conn == nil {
		return ErrNotConnected
	}

	return c.encoder.Encode(Message{
		Version:   ProtocolVersion,
		Type:      MsgSubscribe,
		Subscribe: &SubscribeMessage{ProjectID: projectID},
	})
}

// Close flushes pending events, then closes the connection. Safe to call twice.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	started := c.batcherStart
	c.mu.Unlock()

	c.cancel()
	if started {
		<-c.batcherDone
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}
