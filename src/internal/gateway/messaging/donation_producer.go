package messaging

import (
	"donation-service/src/internal/model"
	"donation-service/src/pkg/kafka"
	"donation-service/src/pkg/log"
)

type DonationProducer struct {
	DonationCreatedProducer Producer[*model.DonationCreatedEvent]
}

func NewDonationProducer(producer kafka.Producer, topic string, log log.Log) *DonationProducer {
	if topic == "" {
		topic = "donation-created"
	}
	return &DonationProducer{
		DonationCreatedProducer: Producer[*model.DonationCreatedEvent]{
			Producer: producer,
			Topic:    topic,
			Log:      log,
		},
	}
}

func (d *DonationProducer) SendDonationCreated(event *model.DonationCreatedEvent) error {
	return d.DonationCreatedProducer.Send(event)
}
