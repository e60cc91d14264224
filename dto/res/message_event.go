package res

const (
	EventMessageCreated = "message_created"
	EventMessageUpdated = "message_updated"
	EventMessageDeleted = "message_deleted"
)

// MessageEvent is the frame pushed over the websocket event stream.
// Deletions carry only the id.
type MessageEvent struct {
	Event   string           `json:"event"`
	ID      uint             `json:"id"`
	Message *MessageResponse `json:"message,omitempty"`
}
