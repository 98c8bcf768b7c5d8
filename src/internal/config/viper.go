package config

import (
	"errors"
	"strings"

	"donation-service/src/pkg/log"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// NewViper reads config.yaml when present and lets environment variables
// override any key (web.port -> WEB_PORT). A .env file is loaded first.
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/donation-service")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
		return v
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		log.SetLevel(v.GetString("log.level"))
		log.GetLogger().Info("config", "configuration reloaded", "OnConfigChange", e.Name)
	})
	v.WatchConfig()
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "DONATION_SERVICE")
	v.SetDefault("log.level", "DEBUG")
	v.SetDefault("web.port", 8080)
	v.SetDefault("web.prefork", false)
	v.SetDefault("web.cors_origins", "*")
	v.SetDefault("mock.latency", "600ms")

	v.SetDefault("database.driver", "memory")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.form_ttl", "60m")
	v.SetDefault("banner.rotation_interval", "8s")
	v.SetDefault("banner.dismiss_ttl", "24h")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.topics.donation_created", "donation-created")
	v.SetDefault("kafka.topics.reward_redeemed", "reward-redeemed")
	v.SetDefault("kafka.topics.reward_assigned", "reward-assigned")
	v.SetDefault("kafka.topics.user_reward_status_changed", "user-reward-status-changed")

	v.SetDefault("payment.environment", "sandbox")
	v.SetDefault("payment.production", false)
	v.SetDefault("payment.language", "es")
	v.SetDefault("payment.remittance_email", "donaciones@bancodealimentos.org")
	v.SetDefault("payment.description", "Donación Banco de Alimentos")
	v.SetDefault("payment.button_id", "payment-button")
	v.SetDefault("payment.poll_interval", "500ms")
	v.SetDefault("payment.poll_attempts", 10)
	v.SetDefault("payment.load_timeout", "10s")
	v.SetDefault("payment.request_timeout", "5s")

	v.SetDefault("points.current_user", "user-001")
	v.SetDefault("site.organization", "Banco de Alimentos")
}
