package handler

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"public-chat-app/config/logger"
	"public-chat-app/dto/res"
)

// EventHandler fans message lifecycle events out to websocket
// subscribers. Polling stays the primary contract; this stream is the
// optional push channel, so a slow or dead subscriber is simply dropped.
type EventHandler struct {
	Log *logger.AppLogger

	mu        sync.Mutex
	clients   map[string]*websocket.Conn
	broadcast chan res.MessageEvent
}

func NewEventHandler(log *logger.AppLogger) *EventHandler {
	handler := &EventHandler{
		Log:       log,
		clients:   make(map[string]*websocket.Conn),
		broadcast: make(chan res.MessageEvent, 64),
	}
	go handler.runBroadcast()
	return handler
}

// HandleEvents registers a subscriber and blocks reading until the peer
// goes away. Incoming frames are discarded, the stream is one-way.
func (handler *EventHandler) HandleEvents(c *websocket.Conn) {
	id := uuid.New().String()

	handler.mu.Lock()
	handler.clients[id] = c
	handler.mu.Unlock()

	handler.Log.WS.Info.Info().Str("subscriber", id).Msg("event subscriber connected")

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}

	handler.mu.Lock()
	delete(handler.clients, id)
	handler.mu.Unlock()

	handler.Log.WS.Info.Info().Str("subscriber", id).Msg("event subscriber disconnected")
	_ = c.Close()
}

func (handler *EventHandler) MessageCreated(message res.MessageResponse) {
	handler.publish(res.MessageEvent{Event: res.EventMessageCreated, ID: message.ID, Message: &message})
}

func (handler *EventHandler) MessageUpdated(message res.MessageResponse) {
	handler.publish(res.MessageEvent{Event: res.EventMessageUpdated, ID: message.ID, Message: &message})
}

func (handler *EventHandler) MessageDeleted(messageID uint) {
	handler.publish(res.MessageEvent{Event: res.EventMessageDeleted, ID: messageID})
}

func (handler *EventHandler) publish(event res.MessageEvent) {
	select {
	case handler.broadcast <- event:
	default:
		handler.Log.WS.Warning.Warn().Str("event", event.Event).Msg("event channel full, dropping")
	}
}

func (handler *EventHandler) runBroadcast() {
	for event := range handler.broadcast {
		handler.mu.Lock()
		for id, conn := range handler.clients {
			if err := conn.WriteJSON(event); err != nil {
				handler.Log.WS.Warning.Warn().Err(err).Str("subscriber", id).Msg("dropping subscriber")
				_ = conn.Close()
				delete(handler.clients, id)
			}
		}
		handler.mu.Unlock()
	}
}
