package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"broconnect/internal/models"
)

// RealtimeChannel is the Redis pub/sub channel carrying insert events from
// the services to the websocket fanout in cmd.
const RealtimeChannel = "broconnect:events"

type RealtimePublisher struct {
	Redis *redis.Client
}

// Publish serializes the payload row into an event envelope and publishes
// it. Delivery failures are logged and swallowed: realtime is a side
// channel, the insert itself already succeeded.
func (p *RealtimePublisher) Publish(ctx context.Context, kind string, targetID int, payload interface{}) {
	if p == nil || p.Redis == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("realtime: marshal payload: %v", err)
		return
	}
	event := models.RealtimeEvent{Kind: kind, TargetID: targetID, Payload: raw}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("realtime: marshal event: %v", err)
		return
	}
	if err := p.Redis.Publish(ctx, RealtimeChannel, data).Err(); err != nil {
		log.Printf("realtime: publish %s: %v", kind, err)
	}
}
