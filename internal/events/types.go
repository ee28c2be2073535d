package events

import "time"

// ProtocolVersion is stamped on every wire message
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventDatabaseChanged EventType = "db_changed"
	EventPing            EventType = "ping"
	EventPong            EventType = "pong"
)

// Wire message kinds
const (
	MsgEvent     = "event"
	MsgSubscribe = "subscribe"
	MsgPing      = "ping"
	MsgPong      = "pong"
)

// Event represents a change notification for one project (0 = any project)
type Event struct {
	Type       EventType
	ProjectID  int
	Timestamp  time.Time
	SequenceID int64 // Assigned by the daemon, increases monotonically
}

// SubscribeMessage is sent by clients to subscribe to specific project updates
type SubscribeMessage struct {
	ProjectID int // 0 = all projects, >0 = specific project
}

// Message wraps events and control messages for the wire protocol
type Message struct {
	Version   int
	Type      string
	Event     *Event            `json:",omitempty"`
	Subscribe *SubscribeMessage `json:",omitempty"`
}

// Matches reports whether an event concerns a viewer of projectID
func (e Event) Matches(projectID int) bool {
	return e.ProjectID == 0 || projectID == 0 || e.ProjectID == projectID
}
