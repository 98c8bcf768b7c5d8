package config

import (
	"donation-service/src/pkg/kafka"
	"donation-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaConfig(viper *viper.Viper) kafka.KafkaConfig {
	configKafka := kafka.Cfg{
		KafkaUrl:      viper.GetString("kafka.brokers"),
		KafkaUsername: viper.GetString("kafka.username"),
		KafkaPassword: viper.GetString("kafka.password"),
		AppName:       viper.GetString("kafka.client_id"),
	}
	return kafka.InitKafkaConfig(configKafka)
}

func NewKafkaProducer(config *viper.Viper, log log.Log) kafka.Producer {
	if !config.GetBool("kafka.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return kafka.NewNoopProducer()
	}
	kafkaProducer, err := kafka.NewProducer(kafka.GetConfig(), log)
	if err != nil {
		log.Error("kafka-config", err.Error(), "kafka", "")
		return kafka.NewNoopProducer()
	}

	return kafkaProducer
}
