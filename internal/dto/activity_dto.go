package dto

import (
	"time"
)

// ActivityContext captures the request facts attached to every
// recorded activity.
type ActivityContext struct {
	Email  string `json:"email"`
	UserId string `json:"user_id"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Ip     string `json:"ip"`
}

// PublishActivityMessage is the payload moved over the in-process
// activity topic.
type PublishActivityMessage struct {
	Action     string                 `json:"action"`
	Context    ActivityContext        `json:"context"`
	Details    map[string]interface{} `json:"details"`
	OccurredAt time.Time              `json:"occurred_at"`
}
