package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/entity"
	"memory-vault-be/internal/pkg/logger"
	"memory-vault-be/internal/repository/contract"
	"memory-vault-be/pkg/events"
	pkgNats "memory-vault-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the activity topic, persists each record and
// optionally republishes it to NATS for external audit consumers.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	activityRepo   contract.ActivityRepository
	eventPublisher *pkgNats.Publisher
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	activityRepo contract.ActivityRepository,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		activityRepo:   activityRepo,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("activity", "Failed to unmarshal activity message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack malformed messages to prevent infinite retry.
		msg.Ack()
		return
	}

	activity := &entity.AdminActivity{
		Id:        activityId(payload.OccurredAt.UnixMilli()),
		Timestamp: payload.OccurredAt,
		Action:    payload.Action,
		Method:    payload.Context.Method,
		Path:      payload.Context.Path,
		Ip:        payload.Context.Ip,
		Details:   payload.Details,
	}
	if payload.Context.Email != "" {
		email := payload.Context.Email
		activity.Email = &email
	}
	if payload.Context.UserId != "" {
		userId := payload.Context.UserId
		activity.UserId = &userId
	}

	if err := cs.activityRepo.Append(ctx, activity); err != nil {
		cs.logger.Error("activity", "Failed to persist activity", map[string]interface{}{
			"action": payload.Action,
			"error":  err.Error(),
		})
		msg.Nack()
		return
	}

	if cs.eventPublisher != nil {
		event := events.BaseEvent{
			Type: payload.Action,
			Data: map[string]interface{}{
				"id":        activity.Id,
				"timestamp": activity.Timestamp,
				"email":     payload.Context.Email,
				"method":    activity.Method,
				"path":      activity.Path,
				"details":   payload.Details,
			},
			OccurredAt: activity.Timestamp,
		}
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			cs.logger.Warn("activity", "Failed to export activity event", map[string]interface{}{
				"action": payload.Action,
				"error":  err.Error(),
			})
		}
	}

	msg.Ack()
}

// activityId mirrors the historical id shape: millis plus a short
// random suffix.
func activityId(millis int64) string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("%d", millis)
	}
	return fmt.Sprintf("%d_%s", millis, hex.EncodeToString(suffix))
}
