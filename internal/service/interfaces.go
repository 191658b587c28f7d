package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/archerhealth/backend/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type LogMealRequest struct {
	Name          string             `validate:"max=200"`
	Foods         []entity.FoodEntry `validate:"required,min=1"`
	TotalCalories float64
	TotalProtein  float64
	TotalCarbs    float64
	TotalFat      float64
	IsPublic      bool
	ImageURL      string
}

type LogWorkoutRequest struct {
	Activity    string `validate:"required,max=100"`
	DurationMin float64
	Calories    float64
	PerformedAt string `validate:"omitempty,date_yyyymmdd"`
}

// Meals of one calendar day plus their calorie total
type DailySummary struct {
	TotalCalories float64        `json:"totalCalories"`
	MealEntries   []*entity.Meal `json:"mealEntries"`
	Date          string         `json:"date"`
}

// User's stored hydration targets: the default plus the override for one date
// if there is any
type GoalSettings struct {
	WaterGoalOz *float64 `json:"waterGoalOz"`
	DailyGoalML *float64 `json:"dailyGoalMl"`
	Date        string   `json:"date"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type ConnectServiceI interface {
	// Mints a 32-hex-char pairing code and stores it on the user row,
	// replacing any unredeemed one
	IssueCode(ctx context.Context, uid uuid.UUID) (string, error)
	// Exchanges a live code for its owner's uid and kills the code
	RedeemCode(ctx context.Context, code string) (uuid.UUID, error)
	// Resolves the hydration target for the code's owner on a date without
	// consuming the code
	ResolveHydrationGoal(ctx context.Context, code, date string) (*entity.HydrationGoal, error)
}

type MealServiceI interface {
	LogMeal(ctx context.Context, uid uuid.UUID, req *LogMealRequest) (*entity.Meal, error)
	ListMeals(ctx context.Context, uid uuid.UUID) ([]*entity.Meal, error)
	// Meals logged today (local time) with their calorie total
	TodaysSummary(ctx context.Context, uid uuid.UUID) (*DailySummary, error)
}

type WaterServiceI interface {
	LogIntake(ctx context.Context, uid uuid.UUID, date string, amountML float64) error
	// All intake entries of one date plus their sum
	DailyIntake(ctx context.Context, uid uuid.UUID, date string) (float64, []entity.WaterIntake, error)
	SetDailyGoal(ctx context.Context, uid uuid.UUID, date string, amountML float64) error
	SetDefaultGoal(ctx context.Context, uid uuid.UUID, goalOz float64) error
	GetGoalSettings(ctx context.Context, uid uuid.UUID, date string) (*GoalSettings, error)
}

type WorkoutServiceI interface {
	LogWorkout(ctx context.Context, uid uuid.UUID, req *LogWorkoutRequest) (*entity.Workout, error)
	ListWorkouts(ctx context.Context, uid uuid.UUID) ([]*entity.Workout, error)
}
