package realtime

import (
	"sync"

	"go.uber.org/zap"
)

// Outbound event names pushed to connected clients.
const (
	EventApprovalUpdate = "approvalUpdate"
	EventLeaveUpdate    = "leaveUpdate"
)

// StatusUpdate is the payload for approval and leave pushes.
type StatusUpdate struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Conn is the transport handle the registry stores. IDs are unique per
// accepted socket, so a disconnect can be matched against the exact
// connection it belongs to.
type Conn interface {
	ID() string
	WriteJSON(v any) error
}

// Envelope is the outbound frame shape.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Registry maps actor names to their live connection. One owned
// instance per process; all access goes through Register, Unregister
// and Notify.
type Registry struct {
	mu     sync.RWMutex
	conns  map[string]Conn
	logger *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		conns:  make(map[string]Conn),
		logger: logger,
	}
}

// Register records or overwrites the mapping for name. Last write wins:
// a reconnect replaces the previous handle, there is no multi-device
// fan-out.
func (r *Registry) Register(name string, conn Conn) {
	r.mu.Lock()
	r.conns[name] = conn
	r.mu.Unlock()
	r.logger.Info("actor connected", zap.String("name", name), zap.String("conn_id", conn.ID()))
}

// Unregister removes every entry still holding this exact connection.
// An entry overwritten by a newer registration holds a different
// connection ID and survives its predecessor's disconnect.
func (r *Registry) Unregister(conn Conn) {
	r.mu.Lock()
	for name, held := range r.conns {
		if held.ID() == conn.ID() {
			delete(r.conns, name)
			r.logger.Info("actor disconnected", zap.String("name", name), zap.String("conn_id", conn.ID()))
		}
	}
	r.mu.Unlock()
}

// Notify pushes {event, data} to the actor if connected. An absent
// entry is not an error: delivery is best-effort and advisory. Write
// failures on a stale socket are swallowed; the transport's own close
// handling will unregister it.
func (r *Registry) Notify(name, event string, payload any) {
	r.mu.RLock()
	conn, ok := r.conns[name]
	r.mu.RUnlock()
	if !ok {
		return
	}

	if err := conn.WriteJSON(Envelope{Event: event, Data: payload}); err != nil {
		r.logger.Debug("push failed", zap.String("name", name), zap.Error(err))
	}
}

// Connected reports whether an actor currently has a live handle.
func (r *Registry) Connected(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conns[name]
	return ok
}
