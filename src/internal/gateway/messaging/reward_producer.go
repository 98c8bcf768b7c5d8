package messaging

import (
	"donation-service/src/internal/model"
	"donation-service/src/pkg/kafka"
	"donation-service/src/pkg/log"
)

type RewardTopics struct {
	Redeemed      string
	Assigned      string
	StatusChanged string
}

type RewardProducer struct {
	RedeemedProducer      Producer[*model.RewardEvent]
	AssignedProducer      Producer[*model.RewardEvent]
	StatusChangedProducer Producer[*model.RewardEvent]
}

func NewRewardProducer(producer kafka.Producer, topics RewardTopics, log log.Log) *RewardProducer {
	if topics.Redeemed == "" {
		topics.Redeemed = "reward-redeemed"
	}
	if topics.Assigned == "" {
		topics.Assigned = "reward-assigned"
	}
	if topics.StatusChanged == "" {
		topics.StatusChanged = "user-reward-status-changed"
	}
	return &RewardProducer{
		RedeemedProducer:      Producer[*model.RewardEvent]{Producer: producer, Topic: topics.Redeemed, Log: log},
		AssignedProducer:      Producer[*model.RewardEvent]{Producer: producer, Topic: topics.Assigned, Log: log},
		StatusChangedProducer: Producer[*model.RewardEvent]{Producer: producer, Topic: topics.StatusChanged, Log: log},
	}
}

func (r *RewardProducer) SendRedeemed(event *model.RewardEvent) error {
	return r.RedeemedProducer.Send(event)
}

func (r *RewardProducer) SendAssigned(event *model.RewardEvent) error {
	return r.AssignedProducer.Send(event)
}

func (r *RewardProducer) SendStatusChanged(event *model.RewardEvent) error {
	return r.StatusChangedProducer.Send(event)
}
