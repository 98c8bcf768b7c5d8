package config

import (
	"donation-service/src/internal/gateway/payment"
	"donation-service/src/pkg/log"

	"github.com/spf13/viper"
)

// NewPaymentLoader polls the provider health endpoint until it answers.
func NewPaymentLoader(viper *viper.Viper, log log.Log) payment.Loader {
	sdk := payment.NewHTTPSDK(
		viper.GetString("payment.base_url"),
		viper.GetString("payment.api_key"),
		viper.GetDuration("payment.request_timeout"),
	)
	return &payment.PollingLoader{
		Probe:    sdk.Probe,
		Interval: viper.GetDuration("payment.poll_interval"),
		Attempts: viper.GetInt("payment.poll_attempts"),
		Timeout:  viper.GetDuration("payment.load_timeout"),
		Log:      log,
	}
}
