package messaging

import (
	"encoding/json"

	"donation-service/src/internal/model"
	"donation-service/src/pkg/kafka"
	"donation-service/src/pkg/log"
)

type Producer[T model.Event] struct {
	Producer kafka.Producer
	Topic    string
	Log      log.Log
}

func (p *Producer[T]) GetTopic() *string {
	return &p.Topic
}

func (p *Producer[T]) Send(event T) error {
	if p.Producer == nil {
		return nil
	}
	value, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("gateway/messaging/producer", "failed to marshal event", "Send", err.Error())
		return err
	}

	err = p.Producer.Publish(&kafka.Message{
		Topic: p.Topic,
		Key:   []byte(event.GetId()),
		Value: value,
	})
	if err != nil {
		p.Log.Error("send-event", "error send message", p.Topic, err.Error())
		return err
	}

	return nil
}
