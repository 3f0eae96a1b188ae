package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/limbo/nestling/internal/api"
	"github.com/limbo/nestling/internal/metrics"
	"github.com/limbo/nestling/internal/notification"
	"github.com/limbo/nestling/internal/repository"
	"github.com/limbo/nestling/internal/service"
	"github.com/limbo/nestling/pkg/cleanup"
	"github.com/limbo/nestling/pkg/config"
	jwtservice "github.com/limbo/nestling/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	var sender notification.Sender = notification.NewLogSender(slog.Default())
	if cfg.FCMCredentialsFile != "" {
		fcm, err := notification.NewFCMSender(ctx, cfg.FCMCredentialsFile)
		if err != nil {
			log.Fatal("fcm initialization error: " + err.Error())
		}
		sender = fcm
	}
	dispatcher := notification.NewDispatcher(sender, notification.DispatcherConfig{
		Workers:   cfg.NotifyWorkers,
		QueueSize: cfg.NotifyQueue,
	}, slog.Default(), m)
	cleanup.Register(&cleanup.Job{
		Name: "stopping notification dispatcher",
		F: func() error {
			dispatcher.Stop()
			return nil
		},
	})

	store := repository.NewStore(cfg.PG())
	clock := service.NewClock(loc)
	serv := api.New(&api.ServicesList{
		RewardsService:    service.NewRewardsService(store, clock, m),
		ShopService:       service.NewShopService(store, clock, m),
		MissionsService:   service.NewMissionsService(store, clock, m),
		ChallengesService: service.NewChallengesService(store, clock, m),
		EventsService:     service.NewEventsService(store, clock, m),
		RankingService:    service.NewRankingService(store, clock),
		AIRewardsService:  service.NewAIRewardsService(store, clock, m),
		JwtService:        jwtservice.New(cfg.JWTSecret),
		Notifier:          dispatcher,
		Metrics:           m,
		MetricsHandler:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		RateLimit: api.RateLimitOpts{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		},
	})
	slog.Info("server starting", slog.String("address", cfg.APIAddress))
	err = serv.Run(ctx, cfg.APIAddress)
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	if err = cleanup.CleanUp(); err != nil {
		log.Println("Cleanup error: " + err.Error())
	}
}
