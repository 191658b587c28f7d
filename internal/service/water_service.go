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

type WaterService struct {
	waterRepo repository.WaterRepositoryI
	goalsRepo repository.GoalsRepositoryI
	usersRepo repository.UsersRepositoryI
}

func NewWaterService(waterRepo repository.WaterRepositoryI, goalsRepo repository.GoalsRepositoryI, usersRepo repository.UsersRepositoryI) *WaterService {
	if waterRepo == nil || goalsRepo == nil || usersRepo == nil {
		log.Fatal("on water service provided nil repos")
	}
	return &WaterService{
		waterRepo: waterRepo,
		goalsRepo: goalsRepo,
		usersRepo: usersRepo,
	}
}

func (ws *WaterService) LogIntake(ctx context.Context, uid uuid.UUID, date string, amountML float64) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return errorvalues.ErrInvalidDate
	}
	if amountML <= 0 {
		return errors.New("intake amount must be positive")
	}
	err := ws.waterRepo.CreateIntake(ctx, &entity.WaterIntake{
		UserID:     uid,
		IntakeDate: date,
		AmountML:   amountML,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("water repository error: " + err.Error())
	}
	return nil
}

func (ws *WaterService) DailyIntake(ctx context.Context, uid uuid.UUID, date string) (float64, []entity.WaterIntake, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return 0, nil, errorvalues.ErrInvalidDate
	}
	intakes, err := ws.waterRepo.GetIntakesByDate(ctx, uid, date)
	if err != nil {
		return 0, nil, errors.New("water repository error: " + err.Error())
	}
	var total float64
	for _, in := range intakes {
		total += in.AmountML
	}
	return total, intakes, nil
}

func (ws *WaterService) SetDailyGoal(ctx context.Context, uid uuid.UUID, date string, amountML float64) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return errorvalues.ErrInvalidDate
	}
	if amountML <= 0 {
		return errors.New("goal amount must be positive")
	}
	err := ws.goalsRepo.UpsertDailyGoal(ctx, &entity.DailyGoal{
		UserID:   uid,
		GoalDate: date,
		AmountML: amountML,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

func (ws *WaterService) SetDefaultGoal(ctx context.Context, uid uuid.UUID, goalOz float64) error {
	if goalOz <= 0 {
		return errors.New("goal amount must be positive")
	}
	err := ws.usersRepo.SetWaterGoal(ctx, uid, goalOz)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}
	return nil
}

func (ws *WaterService) GetGoalSettings(ctx context.Context, uid uuid.UUID, date string) (*GoalSettings, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	user, err := ws.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	settings := &GoalSettings{
		WaterGoalOz: user.WaterGoalOz,
		Date:        date,
	}
	goal, err := ws.goalsRepo.GetDailyGoal(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return settings, nil
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	settings.DailyGoalML = &goal.AmountML
	return settings, nil
}
