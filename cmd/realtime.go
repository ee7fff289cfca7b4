package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"broconnect/internal/models"
	"broconnect/internal/services"
)

// consumeRealtimeEvents bridges the Redis event channel into the websocket
// manager. Events with a target go to that user's socket; a zero target
// fans out to everyone connected.
func (app *application) consumeRealtimeEvents(rdb *redis.Client) {
	for {
		sub := rdb.Subscribe(context.Background(), services.RealtimeChannel)
		ch := sub.Channel()

		for msg := range ch {
			var event models.RealtimeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				app.errorLog.Printf("bad realtime event: %v", err)
				continue
			}

			if event.TargetID == 0 {
				app.wsManager.broadcast <- event
			} else {
				app.wsManager.direct <- directEvent{userID: event.TargetID, event: event}
			}
		}

		// channel closed, usually a dropped Redis connection
		_ = sub.Close()
		app.errorLog.Printf("realtime subscription lost, reconnecting")
		time.Sleep(time.Second)
	}
}
