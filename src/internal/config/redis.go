package config

import (
	"context"
	"time"

	"donation-service/src/pkg/log"
	redisModule "donation-service/src/pkg/redis"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func LoadRedisConfig(viper *viper.Viper) {
	CfgRedis := &redisModule.CfgRedis{
		UseCluster:           viper.GetString("redis.use_cluster") == "true",
		EnableTLS:            viper.GetBool("redis.tls"),
		RedisHost:            viper.GetString("redis.host"),
		RedisPort:            viper.GetString("redis.port"),
		RedisPassword:        viper.GetString("redis.password"),
		RedisDB:              viper.GetInt("redis.db"),
		RedisClusterNode:     viper.GetString("redis.cluster.node"),
		RedisClusterPassword: viper.GetString("redis.cluster.password"),
	}
	redisModule.LoadConfig(CfgRedis)
}

// NewRedis returns nil when redis is disabled or unreachable; form sessions
// and banner dismissals then fall back to memory.
func NewRedis(viper *viper.Viper, log log.Log) redis.UniversalClient {
	if !viper.GetBool("redis.enabled") {
		log.Info("redis-config", "Redis is disabled in configuration", "redis", "")
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisModule.InitConnection(ctx); err != nil {
		log.Error("redis-config", err.Error(), "redis", "")
		return nil
	}
	return redisModule.GetClient()
}
