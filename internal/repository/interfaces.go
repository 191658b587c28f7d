package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/archerhealth/backend/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Stores a freshly minted connection code, overwriting any prior one
	SetConnectionCode(ctx context.Context, uid uuid.UUID, code string) error
	// Looks up the owner of a live connection code without consuming it
	FindByConnectionCode(ctx context.Context, code string) (*entity.User, error)
	// Atomically clears a live connection code and returns its owner's uid.
	// A single conditional UPDATE, so two racing redeemers cannot both win.
	RedeemConnectionCode(ctx context.Context, code string) (uuid.UUID, error)
	// Updates the user's default hydration target (fluid ounces)
	SetWaterGoal(ctx context.Context, uid uuid.UUID, goalOz float64) error
}

type MealsRepositoryI interface {
	// Inserts a meal with its food lines. Fills in CreatedAt from the row
	Create(ctx context.Context, meal *entity.Meal) error
	// Lists user's meals newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Meal, error)
	// Lists user's meals created inside [from, to), newest first
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.Meal, error)
}

type GoalsRepositoryI interface {
	// Exact (user, date-string) lookup of a per-date hydration override
	GetDailyGoal(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyGoal, error)
	// Inserts or replaces the override for (user, date)
	UpsertDailyGoal(ctx context.Context, goal *entity.DailyGoal) error
}

type WaterRepositoryI interface {
	// Records one intake entry for a date
	CreateIntake(ctx context.Context, intake *entity.WaterIntake) error
	// Lists intake entries of a user for one date
	GetIntakesByDate(ctx context.Context, uid uuid.UUID, date string) ([]entity.WaterIntake, error)
}

type WorkoutsRepositoryI interface {
	// Inserts a workout entry. Fills in CreatedAt from the row
	Create(ctx context.Context, workout *entity.Workout) error
	// Lists user's workouts, most recently performed first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Workout, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
