package mq

import (
	"log"
)

type Event struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	UserId     string `json:"user_id"`
}

// Emit publishes a registry change event for downstream consumers (analytics,
// sync). Currently logs only; the transport hook lives here.
func Emit(eventName string, content Event) error {
	log.Printf("event %s: %s %s %s", eventName, content.Method, content.EntityType, content.EntityId)
	return nil
}
