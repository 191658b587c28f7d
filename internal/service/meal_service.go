package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/archerhealth/backend/internal/error_values"
	"github.com/archerhealth/backend/internal/repository"
	"github.com/archerhealth/backend/pkg/entity"
)

type MealService struct {
	repo repository.MealsRepositoryI
}

func NewMealService(mealsRepo repository.MealsRepositoryI) *MealService {
	if mealsRepo == nil {
		log.Fatal("provided nil mealsRepo")
	}
	return &MealService{
		repo: mealsRepo,
	}
}

func (ms *MealService) LogMeal(ctx context.Context, uid uuid.UUID, req *LogMealRequest) (*entity.Meal, error) {
	if len(req.Foods) == 0 {
		return nil, errorvalues.ErrNoFoods
	}
	if err := validate.Struct(*req); err != nil {
		return nil, errors.New("validation error: " + err.Error())
	}
	meal := &entity.Meal{
		ID:            uuid.New(),
		UserID:        uid,
		Name:          req.Name,
		Foods:         req.Foods,
		TotalCalories: req.TotalCalories,
		TotalProtein:  req.TotalProtein,
		TotalCarbs:    req.TotalCarbs,
		TotalFat:      req.TotalFat,
		IsPublic:      req.IsPublic,
		ImageURL:      req.ImageURL,
	}
	if err := ms.repo.Create(ctx, meal); err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	return meal, nil
}

func (ms *MealService) ListMeals(ctx context.Context, uid uuid.UUID) ([]*entity.Meal, error) {
	meals, err := ms.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	return meals, nil
}

func (ms *MealService) TodaysSummary(ctx context.Context, uid uuid.UUID) (*DailySummary, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)
	meals, err := ms.repo.GetByUserAndDateRange(ctx, uid, start, end)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	var total float64
	for _, m := range meals {
		total += m.TotalCalories
	}
	return &DailySummary{
		TotalCalories: total,
		MealEntries:   meals,
		Date:          start.Format(dateLayout),
	}, nil
}
