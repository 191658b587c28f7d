package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	// Default hydration target in fluid ounces; nil when the user never set one
	WaterGoalOz *float64
	// Live pairing token for the companion app; nil when none was issued or
	// the last one was redeemed
	ConnectionCode *string
}

// A single food line inside a logged meal. Stored as jsonb on the meal row.
type FoodEntry struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity,omitempty"`
	Calories float64 `json:"calories,omitempty"`
}

type Meal struct {
	ID            uuid.UUID   `json:"id"`
	UserID        uuid.UUID   `json:"uid"`
	Name          string      `json:"name"`
	Foods         []FoodEntry `json:"foods"`
	TotalCalories float64     `json:"totalCalories"`
	TotalProtein  float64     `json:"totalProtein"`
	TotalCarbs    float64     `json:"totalCarbs"`
	TotalFat      float64     `json:"totalFat"`
	IsPublic      bool        `json:"isPublic"`
	ImageURL      string      `json:"imageUrl,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Per-date override of the user's default hydration target. GoalDate is the
// calendar day as YYYY-MM-DD; lookups match the string exactly.
type DailyGoal struct {
	UserID   uuid.UUID `json:"uid"`
	GoalDate string    `json:"date"`
	AmountML float64   `json:"amount_ml"`
}

type WaterIntake struct {
	ID         int       `json:"id"`
	UserID     uuid.UUID `json:"uid"`
	IntakeDate string    `json:"date"`
	AmountML   float64   `json:"amount_ml"`
	CreatedAt  time.Time `json:"created_at"`
}

type Workout struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Activity    string    `json:"activity"`
	DurationMin float64   `json:"duration_min"`
	Calories    float64   `json:"calories"`
	PerformedAt time.Time `json:"performed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// Resolved hydration target for one day. FromDaily reports whether a per-date
// override won over the user's default.
type HydrationGoal struct {
	AmountML  float64
	FromDaily bool
}
