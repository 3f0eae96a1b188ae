package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/nestling/internal/engine"
	errorvalues "github.com/limbo/nestling/internal/error_values"
	"github.com/limbo/nestling/internal/service"
	"github.com/limbo/nestling/pkg/entity"
	"github.com/limbo/nestling/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type TriggerActionRequest struct {
	ActionID string          `json:"action_id"`
	Counters entity.Counters `json:"counters"`
}

type ProgressRequest struct {
	Progress int `json:"progress"`
}

type ProfileResponse struct {
	Profile       *entity.Profile      `json:"profile"`
	LevelProgress engine.LevelProgress `json:"level_progress"`
}

type RankingResponse struct {
	Limit   int                   `json:"limit"`
	Entries []entity.RankingEntry `json:"entries"`
}

// writeServiceError maps engine error categories to status codes.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrNotFound):
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "not found", err)
	case errors.Is(err, errorvalues.ErrInsufficientBalance):
		logger.Error(op + " error: not enough points")
		httputil.WriteErrorResponse(w, http.StatusPaymentRequired, "not enough points", err)
	case errors.Is(err, errorvalues.ErrConflict):
		logger.Error(op+" error: conflict", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, "conflict", err)
	case errors.Is(err, errorvalues.ErrForbidden):
		logger.Error(op+" error: forbidden", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusForbidden, "forbidden", err)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	profile, err := s.rewardsService.GetProfile(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ProfileResponse{
		Profile:       profile,
		LevelProgress: engine.ProgressFor(profile.Points),
	})
	logger.Info("profile provided")
}

func (s *Server) TriggerAction(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("trigger action error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req TriggerActionRequest
	err = httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("trigger action error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	result, err := s.rewardsService.TriggerAction(ctx, uid, &service.TriggerActionRequest{
		ActionID: req.ActionID,
		Counters: req.Counters,
	})
	if err != nil {
		writeServiceError(w, logger, "trigger action", err)
		return
	}
	if s.notifier != nil && len(result.NewBadges) > 0 {
		s.notifier.Notify(uid, result.NewBadges)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("action applied", slog.String("action", req.ActionID), slog.Int("points", result.Points))
}

func (s *Server) ListShopItems(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	items, err := s.shopService.ListItems(ctx)
	if err != nil {
		writeServiceError(w, logger, "list shop items", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"items": items})
	logger.Info("shop items provided")
}

func (s *Server) PurchaseItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("purchase error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("purchase error: invalid item id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	result, err := s.shopService.PurchaseItem(ctx, uid, itemID)
	if err != nil {
		writeServiceError(w, logger, "purchase", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, result)
	logger.Info("item purchased", slog.String("item_id", itemID.String()))
}

func (s *Server) ListPurchases(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list purchases error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	purchases, err := s.shopService.ListPurchases(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list purchases", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"purchases": purchases})
	logger.Info("purchases provided")
}

func (s *Server) GenerateDailyMissions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("daily missions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	missions, err := s.missionsService.GenerateDailyMissions(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "daily missions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"missions": missions})
	logger.Info("daily missions provided")
}

func (s *Server) UpdateMissionProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mission progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	missionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("mission progress error: invalid mission id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mission id in path value", nil)
		return
	}
	var req ProgressRequest
	err = httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("mission progress error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	mission, err := s.missionsService.UpdateMissionProgress(ctx, uid, &service.MissionProgressRequest{
		MissionID: missionID,
		Progress:  req.Progress,
	})
	if err != nil {
		writeServiceError(w, logger, "mission progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, mission)
	logger.Info("mission progress updated")
}

func (s *Server) GetWeeklyChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("weekly challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	challenges, err := s.challengesService.GetWeeklyChallenges(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "weekly challenges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"challenges": challenges})
	logger.Info("weekly challenges provided")
}

func (s *Server) ClaimWeeklyChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("challenge claim error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	claim, err := s.challengesService.ClaimWeeklyChallenge(ctx, uid, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, logger, "challenge claim", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, claim)
	logger.Info("challenge reward claimed", slog.String("challenge_id", claim.ChallengeID))
}

func (s *Server) JoinEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("join event error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("join event error: invalid event id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid event id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	participation, err := s.eventsService.JoinEvent(ctx, uid, eventID)
	if err != nil {
		writeServiceError(w, logger, "join event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, participation)
	logger.Info("event joined", slog.String("event_id", eventID.String()))
}

func (s *Server) UpdateEventProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("event progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("event progress error: invalid event id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid event id in path value", nil)
		return
	}
	var req ProgressRequest
	err = httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("event progress error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	participation, err := s.eventsService.UpdateEventProgress(ctx, uid, &service.EventProgressRequest{
		EventID:     eventID,
		ChallengeID: r.PathValue("challengeID"),
		Progress:    req.Progress,
	})
	if err != nil {
		writeServiceError(w, logger, "event progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, participation)
	logger.Info("event progress updated")
}

func (s *Server) GetUserEvents(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("user events error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	events, err := s.eventsService.GetUserEvents(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "user events", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"events": events})
	logger.Info("user events provided")
}

func (s *Server) GetWeeklyRanking(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entries, err := s.rankingService.GetWeeklyRanking(ctx, limit)
	if err != nil {
		writeServiceError(w, logger, "weekly ranking", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RankingResponse{
		Limit:   limit,
		Entries: entries,
	})
	logger.Info("weekly ranking provided")
}

func (s *Server) UnlockAIReward(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("ai reward error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	result, err := s.aiRewardsService.UnlockReward(ctx, uid, entity.AIRewardType(r.PathValue("type")))
	if err != nil {
		writeServiceError(w, logger, "ai reward", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, result)
	logger.Info("ai reward unlocked", slog.String("type", string(result.Unlock.RewardType)))
}

func (s *Server) ListAIRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("ai rewards list error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	unlocks, err := s.aiRewardsService.ListUnlocks(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "ai rewards list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"unlocks": unlocks})
	logger.Info("ai rewards provided")
}
