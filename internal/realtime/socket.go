package realtime

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Inbound event names clients send after connecting.
const (
	eventRegisterDoctor  = "registerDoctor"
	eventRegisterPatient = "registerPatient"
)

// inboundFrame is what clients send: {"event": "...", "data": "<name>"}.
type inboundFrame struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

// socketConn adapts a websocket connection to the registry's Conn.
// Writes are serialized so pushes for one actor arrive in notify order.
type socketConn struct {
	id string
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *socketConn) ID() string {
	return c.id
}

func (c *socketConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(v)
}

// UpgradeGuard rejects plain HTTP requests on the websocket route.
func UpgradeGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// Handler accepts websocket connections and runs the read loop. Actors
// announce themselves with a register frame; the read loop ending (for
// any reason) unregisters the connection.
func Handler(registry *Registry, logger *zap.Logger) fiber.Handler {
	return websocket.New(func(ws *websocket.Conn) {
		conn := &socketConn{id: uuid.NewString(), ws: ws}
		logger.Info("client connected", zap.String("conn_id", conn.id))

		defer func() {
			registry.Unregister(conn)
			logger.Info("client disconnected", zap.String("conn_id", conn.id))
		}()

		for {
			var frame inboundFrame
			if err := ws.ReadJSON(&frame); err != nil {
				return
			}

			switch frame.Event {
			case eventRegisterDoctor, eventRegisterPatient:
				name := strings.TrimSpace(frame.Data)
				if name == "" {
					continue
				}
				registry.Register(name, conn)
			default:
				logger.Debug("ignoring unknown frame", zap.String("event", frame.Event))
			}
		}
	})
}
