package realtime

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConn struct {
	id     string
	frames []Envelope
	err    error
}

func (f *fakeConn) ID() string { return f.id }

func (f *fakeConn) WriteJSON(v any) error {
	if f.err != nil {
		return f.err
	}
	f.frames = append(f.frames, v.(Envelope))
	return nil
}

func TestNotifyDeliversToRegisteredActor(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	conn := &fakeConn{id: "c1"}
	r.Register("Dr. Rivera", conn)

	r.Notify("Dr. Rivera", EventApprovalUpdate, StatusUpdate{Message: "approved", Status: "Approved"})

	require.Len(t, conn.frames, 1)
	require.Equal(t, EventApprovalUpdate, conn.frames[0].Event)
	require.Equal(t, StatusUpdate{Message: "approved", Status: "Approved"}, conn.frames[0].Data)
}

func TestNotifyUnknownActorIsNoOp(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	require.NotPanics(t, func() {
		r.Notify("nobody", EventLeaveUpdate, StatusUpdate{})
	})
}

func TestReregisterOverwrites(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	older := &fakeConn{id: "c1"}
	newer := &fakeConn{id: "c2"}

	r.Register("X", older)
	r.Register("X", newer)
	r.Notify("X", EventApprovalUpdate, StatusUpdate{Status: "Approved"})

	require.Empty(t, older.frames)
	require.Len(t, newer.frames, 1)
}

func TestStaleDisconnectKeepsNewerRegistration(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	handleA := &fakeConn{id: "a"}
	handleB := &fakeConn{id: "b"}

	r.Register("X", handleA)
	r.Register("X", handleB)
	r.Unregister(handleA)

	require.True(t, r.Connected("X"))
	r.Notify("X", EventLeaveUpdate, StatusUpdate{Status: "Rejected"})
	require.Len(t, handleB.frames, 1)
}

func TestUnregisterRemovesOwnEntry(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	conn := &fakeConn{id: "c1"}

	r.Register("X", conn)
	r.Unregister(conn)

	require.False(t, r.Connected("X"))
}

func TestNotifyOrderPreservedPerActor(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	conn := &fakeConn{id: "c1"}
	r.Register("X", conn)

	r.Notify("X", EventLeaveUpdate, StatusUpdate{Message: "first"})
	r.Notify("X", EventLeaveUpdate, StatusUpdate{Message: "second"})
	r.Notify("X", EventLeaveUpdate, StatusUpdate{Message: "third"})

	require.Len(t, conn.frames, 3)
	require.Equal(t, "first", conn.frames[0].Data.(StatusUpdate).Message)
	require.Equal(t, "second", conn.frames[1].Data.(StatusUpdate).Message)
	require.Equal(t, "third", conn.frames[2].Data.(StatusUpdate).Message)
}

func TestNotifySwallowsWriteFailure(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	conn := &fakeConn{id: "c1", err: errWrite}
	r.Register("X", conn)

	require.NotPanics(t, func() {
		r.Notify("X", EventApprovalUpdate, StatusUpdate{})
	})
}

var errWrite = &writeError{}

type writeError struct{}

func (*writeError) Error() string { return "write on closed connection" }
