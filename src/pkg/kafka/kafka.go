package kafka

import (
	"fmt"
	"strings"

	"donation-service/src/pkg/log"

	"github.com/IBM/sarama"
)

// Message is what the messaging gateway hands to a Producer.
type Message struct {
	Topic string
	Key   []byte
	Value []byte
}

type Producer interface {
	Publish(message *Message) error
	Close() error
}

type KafkaConfig struct {
	Brokers  []string
	ClientID string
	Username string
	Password string
}

type Cfg struct {
	KafkaUrl      string
	KafkaUsername string
	KafkaPassword string
	AppName       string
}

var kafkaConfig KafkaConfig

func InitKafkaConfig(cfg Cfg) KafkaConfig {
	var brokers []string
	for _, b := range strings.Split(cfg.KafkaUrl, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	kafkaConfig = KafkaConfig{
		Brokers:  brokers,
		ClientID: cfg.AppName,
		Username: cfg.KafkaUsername,
		Password: cfg.KafkaPassword,
	}
	return kafkaConfig
}

func GetConfig() KafkaConfig {
	return kafkaConfig
}

func (c KafkaConfig) saramaConfig() *sarama.Config {
	config := sarama.NewConfig()
	if c.ClientID != "" {
		config.ClientID = c.ClientID
	}
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	if c.Username != "" {
		config.Net.SASL.Enable = true
		config.Net.SASL.User = c.Username
		config.Net.SASL.Password = c.Password
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
	}
	return config
}

type syncProducer struct {
	producer sarama.SyncProducer
	log      log.Log
}

func NewProducer(cfg KafkaConfig, logger log.Log) (Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	producer, err := sarama.NewSyncProducer(cfg.Brokers, cfg.saramaConfig())
	if err != nil {
		return nil, fmt.Errorf("sarama.NewSyncProducer: %w", err)
	}
	return WrapSyncProducer(producer, logger), nil
}

// WrapSyncProducer adapts an existing sarama producer, e.g. sarama/mocks in tests.
func WrapSyncProducer(producer sarama.SyncProducer, logger log.Log) Producer {
	return &syncProducer{producer: producer, log: logger}
}

func (p *syncProducer) Publish(message *Message) error {
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: message.Topic,
		Key:   sarama.ByteEncoder(message.Key),
		Value: sarama.ByteEncoder(message.Value),
	})
	if err != nil {
		return fmt.Errorf("p.producer.SendMessage: %w", err)
	}
	p.log.Info("kafka-producer", "message delivered", message.Topic, fmt.Sprintf("partition=%d offset=%d", partition, offset))
	return nil
}

func (p *syncProducer) Close() error {
	return p.producer.Close()
}

type noopProducer struct{}

// NewNoopProducer is wired when kafka.enabled is false.
func NewNoopProducer() Producer {
	return noopProducer{}
}

func (noopProducer) Publish(*Message) error { return nil }
func (noopProducer) Close() error           { return nil }
