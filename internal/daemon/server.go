package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/slotask/internal/events"
)

// ErrBroadcastFull is returned when the broadcast queue cannot take another event
var ErrBroadcastFull = errors.New("broadcast channel full")

// client is one connected viewer or writer
type client struct {
	id           int64
	conn         net.Conn
	send         chan events.Message
	subscription events.SubscribeMessage
	lastPong     time.Time
	mu           sync.Mutex // Protects subscription and lastPong
	closeOnce    sync.Once
}

// outbound is an event queued for broadcast along with the client it came
// from; origin 0 means the event was injected through Broadcast.
type outbound struct {
	event  events.Event
	origin int64
}

// Server is the slotask event daemon. Writers send db_changed events over a
// unix socket and the server fans them out to every other subscribed client.
type Server struct {
	socketPath string
	listener   net.Listener
	logger     *slog.Logger

	mu      sync.RWMutex
	clients map[*client]bool

	ctx    context.Context
	cancel context.CancelFunc

	broadcast    chan outbound
	metrics      *Metrics
	sequence     atomic.Int64
	nextClientID atomic.Int64

	clientBufferSize int
	pingInterval     time.Duration
	staleAfter       time.Duration

	shutdownOnce sync.Once
	stopped      chan struct{}
}

// Option configures a Server
type Option func(*serverConfig)

type serverConfig struct {
	broadcastBuffer int
	clientBuffer    int
	pingInterval    time.Duration
	logger          *slog.Logger
}

// WithBuffers sets the broadcast queue and per-client send queue sizes
func WithBuffers(broadcast, client int) Option {
	return func(c *serverConfig) {
		if broadcast > 0 {
			c.broadcastBuffer = broadcast
		}
		if client > 0 {
			c.clientBuffer = client
		}
	}
}

// WithPingInterval sets how often clients are pinged; a client that has not
// answered for three intervals is dropped.
func WithPingInterval(d time.Duration) Option {
	return func(c *serverConfig) {
		if d > 0 {
			c.pingInterval = d
		}
	}
}

// WithLogger sets the logger used by the server
func WithLogger(l *slog.Logger) Option {
	return func(c *serverConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewServer creates the socket listener. A stale socket file left by a
// crashed daemon is removed first.
func NewServer(socketPath string, opts ...Option) (*Server, error) {
	cfg := serverConfig{
		broadcastBuffer: 100,
		clientBuffer:    10,
		pingInterval:    30 * time.Second,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if dir := filepath.Dir(socketPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		socketPath:       socketPath,
		listener:         listener,
		logger:           cfg.logger,
		clients:          make(map[*client]bool),
		ctx:              ctx,
		cancel:           cancel,
		broadcast:        make(chan outbound, cfg.broadcastBuffer),
		metrics:          NewMetrics(),
		clientBufferSize: cfg.clientBuffer,
		pingInterval:     cfg.pingInterval,
		staleAfter:       3 * cfg.pingInterval,
		stopped:          make(chan struct{}),
	}, nil
}

// Start serves clients until ctx is cancelled or Shutdown is called
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("daemon listening", "socket_path", s.socketPath)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-s.ctx.Done()
		cancel()
	}()

	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- s.acceptLoop(runCtx)
	}()

	go s.broadcastLoop(runCtx)
	go s.monitorHealth(runCtx)

	select {
	case <-runCtx.Done():
		s.logger.Info("daemon context cancelled")
	case err := <-acceptErr:
		if err != nil {
			s.logger.Error("accept loop stopped", "error", err)
		}
	}

	return s.Shutdown()
}

func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// A deadline lets the loop notice cancellation
		if ul, ok := s.listener.(*net.UnixListener); ok {
			if err := ul.SetDeadline(time.Now().Add(time.Second)); err != nil {
				s.logger.Warn("failed to set listener deadline", "error", err)
			}
		}

		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			id:       s.nextClientID.Add(1),
			conn:     conn,
			send:     make(chan events.Message, s.clientBufferSize),
			lastPong: time.Now(),
		}

		s.mu.Lock()
		s.clients[c] = true
		count := len(s.clients)
		s.mu.Unlock()
		s.metrics.setClients(count)

		s.logger.Debug("client connected", "client_id", c.id, "clients", count)

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

// broadcastLoop stamps each event with the next sequence id and queues it
// for every matching subscriber except the sender.
func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case out := <-s.broadcast:
			event := out.event
			event.SequenceID = s.sequence.Add(1)
			if event.Timestamp.IsZero() {
				event.Timestamp = time.Now()
			}
			s.metrics.broadcast()

			msg := events.Message{Version: events.ProtocolVersion, Type: events.MsgEvent, Event: &event}

			s.mu.RLock()
			for c := range s.clients {
				if c.id == out.origin {
					continue
				}
				c.mu.Lock()
				subscribed := event.Matches(c.subscription.ProjectID)
				c.mu.Unlock()

				if subscribed && !s.sendToClient(c, msg) {
					s.logger.Warn("client send queue full, event dropped", "client_id", c.id)
				}
			}
			s.mu.RUnlock()
		}
	}
}

func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		s.logger.Debug("client disconnected", "client_id", c.id, "clients", s.clientCount())
	}()

	decoder := json.NewDecoder(c.conn)
	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			s.logger.Warn("protocol version mismatch",
				"client_id", c.id,
				"got", msg.Version,
				"want", events.ProtocolVersion)
		}

		switch msg.Type {
		case events.MsgEvent:
			if msg.Event == nil {
				continue
			}
			s.metrics.received()
			select {
			case s.broadcast <- outbound{event: *msg.Event, origin: c.id}:
			default:
				s.metrics.dropped()
				s.logger.Warn("broadcast channel full", "client_id", c.id)
			}

		case events.MsgSubscribe:
			if msg.Subscribe != nil {
				c.mu.Lock()
				c.subscription = *msg.Subscribe
				c.mu.Unlock()
				s.logger.Debug("client subscribed", "client_id", c.id, "project_id", msg.Subscribe.ProjectID)
			}

		case events.MsgPong:
			c.mu.Lock()
			c.lastPong = time.Now()
			c.mu.Unlock()
		}
	}
}

func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)
	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// monitorHealth pings clients and drops the ones that stopped answering
func (s *Server) monitorHealth(ctx context.Context) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	ping := events.Message{Version: events.ProtocolVersion, Type: events.MsgPing}

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			var stale []*client

			s.mu.RLock()
			for c := range s.clients {
				c.mu.Lock()
				idle := now.Sub(c.lastPong)
				c.mu.Unlock()

				if idle > s.staleAfter {
					stale = append(stale, c)
					continue
				}
				s.sendToClient(c, ping)
			}
			s.mu.RUnlock()

			// Removal takes the write lock, so it happens after the scan
			for _, c := range stale {
				s.logger.Info("removing stale client", "client_id", c.id)
				s.removeClient(c)
			}
		}
	}
}

// Broadcast queues an event for every subscribed client without blocking
func (s *Server) Broadcast(event events.Event) error {
	select {
	case <-s.stopped:
		return net.ErrClosed
	default:
	}

	select {
	case s.broadcast <- outbound{event: event}:
		return nil
	default:
		s.metrics.dropped()
		return ErrBroadcastFull
	}
}

// Metrics returns the current daemon counters
func (s *Server) Metrics() MetricsSnapshot {
	return s.metrics.Snapshot()
}

// Shutdown closes the listener and every client, then removes the socket
// file. Safe to call more than once.
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		close(s.stopped)
		s.cancel()

		if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			err = fmt.Errorf("failed to close listener: %w", closeErr)
		}

		s.mu.Lock()
		for c := range s.clients {
			_ = c.conn.Close()
			c.closeOnce.Do(func() { close(c.send) })
		}
		s.clients = make(map[*client]bool)
		s.mu.Unlock()
		s.metrics.setClients(0)

		if removeErr := os.Remove(s.socketPath); removeErr != nil && !os.IsNotExist(removeErr) {
			s.logger.Warn("failed to remove socket file", "error", removeErr)
		}

		snap := s.metrics.Snapshot()
		s.logger.Info("daemon stopped",
			"uptime", snap.Uptime,
			"events_received", snap.EventsReceived,
			"events_broadcast", snap.EventsBroadcast,
			"events_delivered", snap.EventsDelivered,
			"events_dropped", snap.EventsDropped)
	})
	return err
}

func (s *Server) clientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	count := len(s.clients)
	s.mu.Unlock()
	s.metrics.setClients(count)

	_ = c.conn.Close()
	c.closeOnce.Do(func() { close(c.send) })
}

// sendToClient queues msg without blocking; false means the queue was full
func (s *Server) sendToClient(c *client, msg events.Message) bool {
	select {
	case c.send <- msg:
		if msg.Type == events.MsgEvent {
			s.metrics.delivered()
		}
		return true
	default:
		if msg.Type == events.MsgEvent {
			s.metrics.dropped()
		}
		return false
	}
}
