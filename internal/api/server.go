package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/limbo/nestling/internal/metrics"
	"github.com/limbo/nestling/internal/service"
)

type Server struct {
	mx                *chi.Mux
	rewardsService    service.RewardsServiceI
	shopService       service.ShopServiceI
	missionsService   service.MissionsServiceI
	challengesService service.ChallengesServiceI
	eventsService     service.EventsServiceI
	rankingService    service.RankingServiceI
	aiRewardsService  service.AIRewardsServiceI
	jwtService        JWTServiceI
	notifier          NotifierI
	metrics           *metrics.Metrics
	metricsHandler    http.Handler
	limiter           *ipRateLimiter
}

type RateLimitOpts struct {
	RPS   float64
	Burst int
}

type ServicesList struct {
	RewardsService    service.RewardsServiceI
	ShopService       service.ShopServiceI
	MissionsService   service.MissionsServiceI
	ChallengesService service.ChallengesServiceI
	EventsService     service.EventsServiceI
	RankingService    service.RankingServiceI
	AIRewardsService  service.AIRewardsServiceI
	JwtService        JWTServiceI
	Notifier          NotifierI
	Metrics           *metrics.Metrics
	// Served at /metrics when set
	MetricsHandler http.Handler
	// Zero RPS disables rate limiting
	RateLimit RateLimitOpts
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		rewardsService:    servicesOptions.RewardsService,
		shopService:       servicesOptions.ShopService,
		missionsService:   servicesOptions.MissionsService,
		challengesService: servicesOptions.ChallengesService,
		eventsService:     servicesOptions.EventsService,
		rankingService:    servicesOptions.RankingService,
		aiRewardsService:  servicesOptions.AIRewardsService,
		jwtService:        servicesOptions.JwtService,
		notifier:          servicesOptions.Notifier,
		metrics:           servicesOptions.Metrics,
		metricsHandler:    servicesOptions.MetricsHandler,
	}
	if servicesOptions.RateLimit.RPS > 0 {
		s.limiter = newIPRateLimiter(servicesOptions.RateLimit.RPS, servicesOptions.RateLimit.Burst)
	}
	s.MountEndpoints()
	return s
}

func (s *Server) MountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MonitoringMiddleware, s.RateLimitMiddleware)
	if s.metricsHandler != nil {
		s.mx.Handle("/metrics", s.metricsHandler)
	}
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/profile", s.GetProfile)
		r.Post("/actions", s.TriggerAction)

		r.Get("/shop/items", s.ListShopItems)
		r.Post("/shop/items/{id}/purchase", s.PurchaseItem)
		r.Get("/shop/purchases", s.ListPurchases)

		r.Post("/missions/daily", s.GenerateDailyMissions)
		r.Put("/missions/{id}/progress", s.UpdateMissionProgress)

		r.Get("/challenges/weekly", s.GetWeeklyChallenges)
		r.Post("/challenges/{id}/claim", s.ClaimWeeklyChallenge)

		r.Get("/events", s.GetUserEvents)
		r.Post("/events/{id}/join", s.JoinEvent)
		r.Put("/events/{id}/challenges/{challengeID}/progress", s.UpdateEventProgress)

		r.Get("/ranking/weekly", s.GetWeeklyRanking)

		r.Get("/ai-rewards", s.ListAIRewards)
		r.Post("/ai-rewards/{type}/unlock", s.UnlockAIReward)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
