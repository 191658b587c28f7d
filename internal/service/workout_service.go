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

type WorkoutService struct {
	repo repository.WorkoutsRepositoryI
}

func NewWorkoutService(workoutsRepo repository.WorkoutsRepositoryI) *WorkoutService {
	if workoutsRepo == nil {
		log.Fatal("provided nil workoutsRepo")
	}
	return &WorkoutService{
		repo: workoutsRepo,
	}
}

func (ws *WorkoutService) LogWorkout(ctx context.Context, uid uuid.UUID, req *LogWorkoutRequest) (*entity.Workout, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, errors.New("validation error: " + err.Error())
	}
	performedAt := time.Now()
	if req.PerformedAt != "" {
		day, err := time.ParseInLocation(dateLayout, req.PerformedAt, time.Local)
		if err != nil {
			return nil, errorvalues.ErrInvalidDate
		}
		performedAt = day
	}
	workout := &entity.Workout{
		ID:          uuid.New(),
		UserID:      uid,
		Activity:    req.Activity,
		DurationMin: req.DurationMin,
		Calories:    req.Calories,
		PerformedAt: performedAt,
	}
	if err := ws.repo.Create(ctx, workout); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workout, nil
}

func (ws *WorkoutService) ListWorkouts(ctx context.Context, uid uuid.UUID) ([]*entity.Workout, error) {
	workouts, err := ws.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workouts, nil
}
