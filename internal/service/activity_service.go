package service

import (
	"encoding/json"
	"time"

	"memory-vault-be/internal/dto"
	"memory-vault-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ActivityTopicName is the in-process topic carrying activity records
// from request handlers to the persistence consumer.
const ActivityTopicName = "RECORD_ADMIN_ACTIVITY"

type IActivityService interface {
	// Record publishes an activity for async persistence. It never
	// returns an error: losing an audit row must not fail the request.
	Record(action string, actx dto.ActivityContext, details map[string]interface{})
}

type activityService struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger
}

func NewActivityService(pubSub *gochannel.GoChannel, log logger.ILogger) IActivityService {
	return &activityService{
		pubSub: pubSub,
		logger: log,
	}
}

func (s *activityService) Record(action string, actx dto.ActivityContext, details map[string]interface{}) {
	if details == nil {
		details = map[string]interface{}{}
	}

	payload, err := json.Marshal(dto.PublishActivityMessage{
		Action:     action,
		Context:    actx,
		Details:    details,
		OccurredAt: time.Now(),
	})
	if err != nil {
		s.logger.Error("activity", "Failed to marshal activity", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(ActivityTopicName, msg); err != nil {
		s.logger.Error("activity", "Failed to publish activity", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

// NewActivityPubSub builds the gochannel bus shared by the recorder
// and the consumer.
func NewActivityPubSub() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, watermill.NopLogger{})
}
