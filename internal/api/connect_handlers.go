package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/archerhealth/backend/internal/error_values"
	"github.com/archerhealth/backend/pkg/httputil"
)

type RedeemConnectionCodeRequest struct {
	ConnectionCode string `json:"connectionCode"`
	// Identifier inside the companion app; required but only checked for
	// presence, never stored
	ArcherAquaUserID string `json:"archerAquaUserId"`
}

func (s *Server) GenerateConnectionCode(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("generate connection code error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	code, err := s.connectService.IssueCode(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("generate connection code error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("generate connection code error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while generating connection code", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"connectionCode": code,
	})
	logger.Info("connection code issued")
}

func (s *Server) RedeemConnectionCode(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RedeemConnectionCodeRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("redeem connection code error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.ConnectionCode == "" || req.ArcherAquaUserID == "" {
		logger.Error("redeem connection code error: missing fields")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "connectionCode and archerAquaUserId are required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	uid, err := s.connectService.RedeemCode(ctx, req.ConnectionCode)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCodeNotFound) {
			logger.Error("redeem connection code error: unknown code")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "connection code not found", nil)
			return
		}
		logger.Error("redeem connection code error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while redeeming connection code", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success":            true,
		"archerHealthUserId": uid.String(),
	})
	logger.Info("connection code redeemed")
}

func (s *Server) HydrationGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	code, err := GetTokenFromHeader(r)
	if err != nil {
		logger.Error("hydration goals error: missing bearer code")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, perr := time.Parse("2006-01-02", date); perr != nil {
		logger.Error("hydration goals error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.connectService.ResolveHydrationGoal(ctx, code, date)
	if err != nil {
		// Unknown code reads the same as a malformed one, so the status
		// doesn't leak whether a guessed code exists
		if errors.Is(err, errorvalues.ErrCodeNotFound) {
			logger.Error("hydration goals error: unknown code")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
			return
		}
		logger.Error("hydration goals error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resolving hydration goal", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"waterGoal":     goal.AmountML,
		"waterGoalUnit": "ml",
		"dailyGoal":     goal.FromDaily,
	})
	logger.Info("hydration goal provided")
}

// Answers plain OPTIONS probes; real preflights carrying
// Access-Control-Request-Method are terminated by the cors middleware
func (s *Server) HydrationGoalsOptions(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
	w.WriteHeader(http.StatusOK)
}
