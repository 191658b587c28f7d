package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/archerhealth/backend/internal/error_values"
	"github.com/archerhealth/backend/internal/service"
	"github.com/archerhealth/backend/pkg/httputil"
)

type UpdateGoalsRequest struct {
	WaterGoalOz *float64 `json:"waterGoalOz"`
	Date        string   `json:"date"`
	DailyGoalML *float64 `json:"dailyGoalMl"`
}

type LogWaterIntakeRequest struct {
	Date     string  `json:"date"`
	AmountML float64 `json:"amountMl"`
}

type LogWorkoutRequest struct {
	Activity    string  `json:"activity"`
	DurationMin float64 `json:"durationMin"`
	Calories    float64 `json:"calories"`
	PerformedAt string  `json:"performedAt"`
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	settings, err := s.waterService.GetGoalSettings(ctx, uid, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("get goals error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("get goals error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("get goals error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting goals", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("goals provided")
}

func (s *Server) UpdateGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateGoalsRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update goals error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.WaterGoalOz == nil && req.DailyGoalML == nil {
		logger.Error("update goals error: nothing to update")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "waterGoalOz or dailyGoalMl is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if req.WaterGoalOz != nil {
		if err = s.waterService.SetDefaultGoal(ctx, uid, *req.WaterGoalOz); err != nil {
			logger.Error("update goals error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating goals", nil)
			return
		}
	}
	if req.DailyGoalML != nil {
		date := req.Date
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		if err = s.waterService.SetDailyGoal(ctx, uid, date, *req.DailyGoalML); err != nil {
			if errors.Is(err, errorvalues.ErrInvalidDate) {
				logger.Error("update goals error: invalid date")
				httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", nil)
				return
			}
			logger.Error("update goals error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating goals", nil)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("goals updated")
}

func (s *Server) LogWaterIntake(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log water intake error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogWaterIntakeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log water intake error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.waterService.LogIntake(ctx, uid, date, req.AmountML)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("log water intake error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("log water intake error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("log water intake error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't log water intake", nil)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	logger.Info("water intake logged")
}

func (s *Server) GetWaterIntake(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get water intake error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	total, intakes, err := s.waterService.DailyIntake(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			logger.Error("get water intake error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", nil)
			return
		}
		logger.Error("get water intake error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting water intake", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"date":    date,
		"totalMl": total,
		"intakes": intakes,
	})
	logger.Info("water intake provided")
}

func (s *Server) LogWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogWorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutService.LogWorkout(ctx, uid, &service.LogWorkoutRequest{
		Activity:    req.Activity,
		DurationMin: req.DurationMin,
		Calories:    req.Calories,
		PerformedAt: req.PerformedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("log workout error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "performedAt must be formatted as YYYY-MM-DD", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("log workout error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("log workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	logger.Info("workout logged")
}

func (s *Server) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list workouts error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	workouts, err := s.workoutService.ListWorkouts(ctx, uid)
	if err != nil {
		logger.Error("list workouts error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting workouts list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workouts)
	logger.Info("workouts provided")
}
