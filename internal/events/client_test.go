package events

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDaemon accepts a single connection and exposes its codec
type fakeDaemon struct {
	path string
	ln   net.Listener
	conn chan net.Conn
}

func startFakeDaemon(t *testing.T) *fakeDaemon {
	t.Helper()
	path := filepath.Join(t.TempDir(), "d.sock")
	ln, err := (&net.ListenConfig{}).Listen(context.Background(), "unix", path)
	require.NoError(t, err)

	d := &fakeDaemon{path: path, ln: ln, conn: make(chan net.Conn, 1)}
	go func() {
		c, err := ln.Accept()
		if err == nil {
			d.conn <- c
		}
	}()
	t.Cleanup(func() { _ = ln.Close() })
	return d
}

func (d *fakeDaemon) accept(t *testing.T) (net.Conn, *json.Decoder, *json.Encoder) {
	t.Helper()
	select {
	case c := <-d.conn:
		t.Cleanup(func() { _ = c.Close() })
		return c, json.NewDecoder(c), json.NewEncoder(c)
	case <-time.After(2 * time.Second):
		t.Fatal("client never connected")
		return nil, nil, nil
	}
}

func readMessage(t *testing.T, conn net.Conn, dec *json.Decoder) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, dec.Decode(&msg))
	return msg
}

func connectedClient(t *testing.T, d *fakeDaemon) *Client {
	t.Helper()
	c := NewClient(d.path, WithDebounce(20*time.Millisecond), WithReconnect(0, time.Millisecond))
	require.NoError(t, c.Connect(context.Background()))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_SubscribesOnConnect(t *testing.T) {
	d := startFakeDaemon(t)
	connectedClient(t, d)
	conn, dec, _ := d.accept(t)

	msg := readMessage(t, conn, dec)
	assert.Equal(t, MsgSubscribe, msg.Type)
	assert.Equal(t, ProtocolVersion, msg.Version)
	require.NotNil(t, msg.Subscribe)
	assert.Equal(t, 0, msg.Subscribe.ProjectID)
}

func TestClient_BatchesEventsForOneProject(t *testing.T) {
	d := startFakeDaemon(t)
	c := connectedClient(t, d)
	conn, dec, _ := d.accept(t)
	readMessage(t, conn, dec) // subscription

	for i := 0; i < 5; i++ {
		require.NoError(t, c.SendEvent(Event{Type: EventDatabaseChanged, ProjectID: 3}))
	}

	msg := readMessage(t, conn, dec)
	assert.Equal(t, MsgEvent, msg.Type)
	require.NotNil(t, msg.Event)
	assert.Equal(t, 3, msg.Event.ProjectID)

	// Nothing else should follow for the same burst
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	var extra Message
	err := dec.Decode(&extra)
	var netErr net.Error
	assert.True(t, errors.As(err, &netErr) && netErr.Timeout(), "expected a single batched event, got %+v", extra)
}

func TestClient_MixedProjectsCollapseToAll(t *testing.T) {
	d := startFakeDaemon(t)
	c := connectedClient(t, d)
	conn, dec, _ := d.accept(t)
	readMessage(t, conn, dec)

	require.NoError(t, c.SendEvent(Event{Type: EventDatabaseChanged, ProjectID: 1}))
	require.NoError(t, c.SendEvent(Event{Type: EventDatabaseChanged, ProjectID: 2}))

	msg := readMessage(t, conn, dec)
	require.NotNil(t, msg.Event)
	assert.Equal(t, 0, msg.Event.ProjectID)
}

func TestClient_ListenSkipsDuplicatesAndAnswersPing(t *testing.T) {
	d := startFakeDaemon(t)
	c := connectedClient(t, d)
	conn, dec, enc := d.accept(t)
	readMessage(t, conn, dec)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := c.Listen(ctx)
	require.NoError(t, err)

	for _, seq := range []int64{1, 1, 2} {
		require.NoError(t, enc.Encode(Message{
			Version: ProtocolVersion,
			Type:    MsgEvent,
			Event:   &Event{Type: EventDatabaseChanged, ProjectID: 4, SequenceID: seq},
		}))
	}
	require.NoError(t, enc.Encode(Message{Version: ProtocolVersion, Type: MsgPing}))

	first := <-ch
	second := <-ch
	assert.Equal(t, int64(1), first.SequenceID)
	assert.Equal(t, int64(2), second.SequenceID)

	pong := readMessage(t, conn, dec)
	assert.Equal(t, MsgPong, pong.Type)
}

func TestClient_CloseIsIdempotentAndFinal(t *testing.T) {
	c := NewClient(filepath.Join(t.TempDir(), "none.sock"))

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.SendEvent(Event{Type: EventDatabaseChanged}), ErrClientClosed)
	assert.ErrorIs(t, c.Connect(context.Background()), ErrClientClosed)

	_, err := c.Listen(context.Background())
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestClient_SubscribeBeforeConnect(t *testing.T) {
	d := startFakeDaemon(t)
	c := NewClient(d.path)
	t.Cleanup(func() { _ = c.Close() })

	assert.ErrorIs(t, c.Subscribe(7), ErrNotConnected)

	// The remembered subscription is sent on connect
	require.NoError(t, c.Connect(context.Background()))
	conn, dec, _ := d.accept(t)
	msg := readMessage(t, conn, dec)
	require.NotNil(t, msg.Subscribe)
	assert.Equal(t, 7, msg.Subscribe.ProjectID)
}

func TestClient_ConnectFailureIsClassified(t *testing.T) {
	c := NewClient(filepath.Join(t.TempDir(), "missing.sock"))
	t.Cleanup(func() { _ = c.Close() })

	err := c.Connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, ErrSocketNotFound, ClassifyDaemonError(err).Code)
}

func TestClassifyDaemonError(t *testing.T) {
	assert.Nil(t, ClassifyDaemonError(nil))
	assert.Equal(t, ErrSocketNotFound, ClassifyDaemonError(os.ErrNotExist).Code)
	assert.Equal(t, ErrSocketPermission, ClassifyDaemonError(os.ErrPermission).Code)
	assert.Equal(t, ErrConnectionRefused, ClassifyDaemonError(&net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}).Code)

	other := ClassifyDaemonError(errors.New("boom"))
	assert.Equal(t, ErrDaemonNotRunning, other.Code)
	assert.Contains(t, other.Error(), "slotaskd")
}

func TestEvent_Matches(t *testing.T) {
	assert.True(t, Event{ProjectID: 2}.Matches(2))
	assert.True(t, Event{ProjectID: 0}.Matches(2))
	assert.True(t, Event{ProjectID: 2}.Matches(0))
	assert.False(t, Event{ProjectID: 2}.Matches(3))
}
