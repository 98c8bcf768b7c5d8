package config

import (
	"donation-service/src/pkg/databases/rdbms"
	"donation-service/src/pkg/log"

	"github.com/spf13/viper"
)

// NewDatabase returns nil when database.driver is memory; rewards and
// points then live in process.
func NewDatabase(viper *viper.Viper, log log.Log) rdbms.DBInterface {
	if viper.GetString("database.driver") == "memory" || viper.GetString("database.driver") == "" {
		log.Info("database init", "using in-memory repositories", "config", "")
		return nil
	}
	db, err := rdbms.InitConnection(viper, log)
	if err != nil {
		log.Error("database init", err.Error(), "config", "")
		return nil
	}

	return db
}
