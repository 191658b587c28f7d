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
	"github.com/archerhealth/backend/pkg/entity"
	"github.com/archerhealth/backend/pkg/httputil"
)

type LogMealRequest struct {
	Name          string             `json:"name"`
	Foods         []entity.FoodEntry `json:"foods"`
	TotalCalories float64            `json:"totalCalories"`
	TotalProtein  float64            `json:"totalProtein"`
	TotalCarbs    float64            `json:"totalCarbs"`
	TotalFat      float64            `json:"totalFat"`
	IsPublic      bool               `json:"isPublic"`
	ImageURL      string             `json:"imageUrl"`
}

func (s *Server) LogMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log meal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogMealRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log meal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	meal, err := s.mealService.LogMeal(ctx, uid, &service.LogMealRequest{
		Name:          req.Name,
		Foods:         req.Foods,
		TotalCalories: req.TotalCalories,
		TotalProtein:  req.TotalProtein,
		TotalCarbs:    req.TotalCarbs,
		TotalFat:      req.TotalFat,
		IsPublic:      req.IsPublic,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoFoods) {
			logger.Error("log meal error: empty foods")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "meal must contain at least one food item", nil)
			return
		}
		logger.Error("log meal error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging meal", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, meal)
	logger.Info("meal logged")
}

func (s *Server) ListMeals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list meals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	meals, err := s.mealService.ListMeals(ctx, uid)
	if err != nil {
		logger.Error("list meals error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting meals list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, meals)
	logger.Info("meals provided")
}

func (s *Server) TodaysMeals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("todays meals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	summary, err := s.mealService.TodaysSummary(ctx, uid)
	if err != nil {
		logger.Error("todays meals error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting today's meals", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("today's meals provided")
}
