package models

// PushNotification is the payload handed to the push dispatcher over the
// message bus. Delivery is owned by the dispatcher, not this service.
type PushNotification struct {
	UserID string            `json:"user_id"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
}
