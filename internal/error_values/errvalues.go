package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrCodeNotFound = errors.New("connection code doesn't match any user")

	ErrNoFoods      = errors.New("meal must contain at least one food item")
	ErrMealNotFound = errors.New("meal doesn't exist")
	ErrWrongOwner   = errors.New("record belongs to a different user")

	ErrGoalNotFound = errors.New("no daily goal stored for this date")
	ErrInvalidDate  = errors.New("date must be formatted as YYYY-MM-DD")
)
