package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/archerhealth/backend/internal/error_values"
	"github.com/archerhealth/backend/internal/repository"
	"github.com/archerhealth/backend/pkg/entity"
)

const (
	connectionCodeBytes = 16
	mlPerFluidOunce     = 29.5735
	fallbackWaterGoalML = 2000
)

// ConnectService runs the pairing handshake with the companion app: code
// issuance, one-shot redemption and the bearer-authenticated hydration-goal
// lookup the companion keeps calling afterwards.
type ConnectService struct {
	usersRepo repository.UsersRepositoryI
	goalsRepo repository.GoalsRepositoryI
}

func NewConnectService(usersRepo repository.UsersRepositoryI, goalsRepo repository.GoalsRepositoryI) *ConnectService {
	if usersRepo == nil || goalsRepo == nil {
		log.Fatal("on connect service provided nil repos")
	}
	return &ConnectService{
		usersRepo: usersRepo,
		goalsRepo: goalsRepo,
	}
}

func (cs *ConnectService) IssueCode(ctx context.Context, uid uuid.UUID) (string, error) {
	buf := make([]byte, connectionCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.New("generating connection code error: " + err.Error())
	}
	code := hex.EncodeToString(buf)
	err := cs.usersRepo.SetConnectionCode(ctx, uid, code)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return "", err
		}
		return "", errors.New("repository error: " + err.Error())
	}
	return code, nil
}

func (cs *ConnectService) RedeemCode(ctx context.Context, code string) (uuid.UUID, error) {
	uid, err := cs.usersRepo.RedeemConnectionCode(ctx, code)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCodeNotFound) {
			return uuid.UUID{}, err
		}
		return uuid.UUID{}, errors.New("repository error: " + err.Error())
	}
	return uid, nil
}

func (cs *ConnectService) ResolveHydrationGoal(ctx context.Context, code, date string) (*entity.HydrationGoal, error) {
	user, err := cs.usersRepo.FindByConnectionCode(ctx, code)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCodeNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	goal, err := cs.goalsRepo.GetDailyGoal(ctx, user.ID, date)
	if err == nil {
		return &entity.HydrationGoal{AmountML: goal.AmountML, FromDaily: true}, nil
	}
	if !errors.Is(err, errorvalues.ErrGoalNotFound) {
		return nil, errors.New("repository error: " + err.Error())
	}
	if user.WaterGoalOz != nil {
		return &entity.HydrationGoal{AmountML: *user.WaterGoalOz * mlPerFluidOunce}, nil
	}
	return &entity.HydrationGoal{AmountML: fallbackWaterGoalML}, nil
}
