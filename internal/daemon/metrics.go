package daemon

import (
	"sync/atomic"
	"time"
)

// Metrics tracks daemon counters; all fields are safe for concurrent use
type Metrics struct {
	eventsReceived   atomic.Int64
	eventsBroadcast  atomic.Int64
	eventsDelivered  atomic.Int64
	eventsDropped    atomic.Int64
	connectedClients atomic.Int32
	startTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

func (m *Metrics) received()        { m.eventsReceived.Add(1) }
func (m *Metrics) broadcast()       { m.eventsBroadcast.Add(1) }
func (m *Metrics) delivered()       { m.eventsDelivered.Add(1) }
func (m *Metrics) dropped()         { m.eventsDropped.Add(1) }
func (m *Metrics) setClients(n int) { m.connectedClients.Store(int32(n)) }

// MetricsSnapshot is a point-in-time copy of the counters
type MetricsSnapshot struct {
	EventsReceived   int64     `json:"events_received"`
	EventsBroadcast  int64     `json:"events_broadcast"`
	EventsDelivered  int64     `json:"events_delivered"`
	EventsDropped    int64     `json:"events_dropped"`
	ConnectedClients int32     `json:"connected_clients"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// Snapshot returns the current counters
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsReceived:   m.eventsReceived.Load(),
		EventsBroadcast:  m.eventsBroadcast.Load(),
		EventsDelivered:  m.eventsDelivered.Load(),
		EventsDropped:    m.eventsDropped.Load(),
		ConnectedClients: m.connectedClients.Load(),
		StartTime:        m.startTime,
		Uptime:           time.Since(m.startTime).Round(time.Second).String(),
	}
}
