package config

import (
	"context"
	"time"

	"donation-service/src/internal/delivery/http"
	"donation-service/src/internal/delivery/http/middleware"
	"donation-service/src/internal/delivery/http/route"
	"donation-service/src/internal/gateway/messaging"
	"donation-service/src/internal/gateway/payment"
	"donation-service/src/internal/repository"
	"donation-service/src/internal/search"
	"donation-service/src/internal/usecase"
	"donation-service/src/pkg/databases/rdbms"
	"donation-service/src/pkg/kafka"
	"donation-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// BootstrapConfig carries the infrastructure main has built. DB and Redis
// are optional; PaymentLoader and Seed default from Config when nil.
type BootstrapConfig struct {
	DB            rdbms.DBInterface
	App           *fiber.App
	Log           log.Log
	Validate      *validator.Validate
	Config        *viper.Viper
	Producer      kafka.Producer
	Redis         redis.UniversalClient
	PaymentLoader payment.Loader
	Index         *search.Index
	Seed          *repository.Seed
}

func Bootstrap(config *BootstrapConfig) error {
	v := config.Config
	latency := v.GetDuration("mock.latency")
	seed := repository.DefaultSeed()
	if config.Seed != nil {
		seed = *config.Seed
	}

	// setup repositories
	donationRepository := repository.NewMemoryDonationRepository(seed, latency)
	emergencyRepository := repository.NewMemoryEmergencyRepository(seed, latency)
	var rewardRepository repository.RewardRepository = repository.NewMemoryRewardRepository(seed, latency)
	if config.DB != nil {
		rewardRepository = repository.NewSQLRewardRepository(config.DB)
	}
	var formRepository repository.FormRepository
	var bannerRepository repository.BannerRepository
	if config.Redis != nil {
		sessions := repository.NewRedisSessionRepository(config.Redis)
		formRepository, bannerRepository = sessions, sessions
	} else {
		sessions := repository.NewMemorySessionRepository()
		formRepository, bannerRepository = sessions, sessions
	}

	// setup producers
	producer := config.Producer
	if producer == nil {
		producer = kafka.NewNoopProducer()
	}
	donationProducer := messaging.NewDonationProducer(producer, v.GetString("kafka.topics.donation_created"), config.Log)
	rewardProducer := messaging.NewRewardProducer(producer, messaging.RewardTopics{
		Redeemed:      v.GetString("kafka.topics.reward_redeemed"),
		Assigned:      v.GetString("kafka.topics.reward_assigned"),
		StatusChanged: v.GetString("kafka.topics.user_reward_status_changed"),
	}, config.Log)

	// setup payment bridge
	settings := usecase.NewPaymentSettings(v)
	if err := settings.Check(); err != nil {
		config.Log.Error("bootstrap", err.Error(), "payment", "")
		return err
	}
	loader := config.PaymentLoader
	if loader == nil {
		loader = NewPaymentLoader(v, config.Log)
	}
	bridge := payment.NewBridge(loader, config.Log, v.GetString("payment.script_url"), v.GetString("payment.button_id"))

	index := config.Index
	if index == nil {
		index = search.NewIndex(config.Log)
	}

	// setup use cases
	paymentUseCase := usecase.NewPaymentUseCase(config.Log, config.Validate, bridge, settings)
	donationUseCase := usecase.NewDonationUseCase(
		config.Log,
		config.Validate,
		donationRepository,
		formRepository,
		donationProducer,
		paymentUseCase,
		v.GetDuration("redis.form_ttl"),
	)
	emergencyUseCase := usecase.NewEmergencyUseCase(
		config.Log,
		config.Validate,
		emergencyRepository,
		bannerRepository,
		v.GetDuration("banner.rotation_interval"),
		v.GetDuration("banner.dismiss_ttl"),
	)
	rewardUseCase := usecase.NewRewardUseCase(config.Log, config.Validate, rewardRepository, rewardProducer)
	searchUseCase := usecase.NewSearchUseCase(config.Log, config.Validate, index, emergencyRepository, rewardRepository)
	adminUseCase := usecase.NewAdminUseCase(
		config.Log,
		config.Validate,
		donationRepository,
		rewardRepository,
		rewardProducer,
		searchUseCase,
	)
	siteUseCase := usecase.NewSiteUseCase(v.GetString("site.organization"), v.GetString("payment.remittance_email"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := searchUseCase.Rebuild(ctx); err != nil {
		config.Log.Error("bootstrap", err.Error(), "search", "")
	}

	// setup controller
	routeConfig := route.RouteConfig{
		App:                 config.App,
		DonationController:  http.NewDonationController(donationUseCase, config.Log),
		FormController:      http.NewFormController(donationUseCase, config.Log),
		EmergencyController: http.NewEmergencyController(emergencyUseCase, config.Log),
		RewardController:    http.NewRewardController(rewardUseCase, config.Log),
		AdminController:     http.NewAdminController(adminUseCase, config.Log),
		PaymentController:   http.NewPaymentController(paymentUseCase, config.Log),
		SearchController:    http.NewSearchController(searchUseCase, config.Log),
		SiteController:      http.NewSiteController(siteUseCase),
		IdentityMiddleware:  middleware.NewIdentity(v.GetString("points.current_user")),
		AdminMiddleware:     middleware.VerifyAdminKey(v.GetString("admin.key_hash")),
	}
	routeConfig.Setup()
	return nil
}
