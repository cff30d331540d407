package publishers

import "time"

// Event is the payload published downstream for one gateway callback.
// Message carries the gateway's Data object untouched; interpretation
// belongs to the consumer.
type Event struct {
	AccountID  string         `json:"account_id"`
	Wxid       string         `json:"wxid"`
	TypeName   string         `json:"type_name"`
	Message    map[string]any `json:"message"`
	Link       *LinkPreview   `json:"link,omitempty"`
	ReceivedAt time.Time      `json:"received_at"`
}

// LinkPreview is extracted from link-card messages when present.
type LinkPreview struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"desc,omitempty"`
}

// NewEvent constructs an Event for the given account + callback payload.
func NewEvent(accountID, wxid, typeName string, message map[string]any) Event {
	return Event{
		AccountID:  accountID,
		Wxid:       wxid,
		TypeName:   typeName,
		Message:    message,
		ReceivedAt: time.Now().UTC(),
	}
}
