package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	"github.com/archerhealth/backend/internal/repository"
	"github.com/archerhealth/backend/pkg/entity"
)

var mealColumns = []string{"id", "user_id", "name", "foods", "total_calories", "total_protein", "total_carbs", "total_fat", "is_public", "image_url", "created_at"}

func TestCreateMeal(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewMealsRepoWithConn(conn)
	meal := entity.Meal{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   "lunch",
		Foods: []entity.FoodEntry{
			{Name: "rice", Quantity: "200g", Calories: 260},
		},
		TotalCalories: 260,
		TotalProtein:  5,
		TotalCarbs:    56,
		TotalFat:      0.5,
	}
	foods, err := sonic.Marshal(meal.Foods)
	if err != nil {
		t.Fatal(err)
	}
	query := regexp.QuoteMeta(`INSERT INTO meals (id, user_id, name, foods, total_calories, total_protein, total_carbs, total_fat, is_public, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING created_at;`)
	createdAt := time.Now()
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(meal.ID, meal.UserID, meal.Name, foods, meal.TotalCalories, meal.TotalProtein, meal.TotalCarbs, meal.TotalFat, meal.IsPublic, meal.ImageURL).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))
		err := repo.Create(ctx, &meal)
		assert.NoError(t, err)
		assert.Equal(t, createdAt, meal.CreatedAt)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(meal.ID, meal.UserID, meal.Name, foods, meal.TotalCalories, meal.TotalProtein, meal.TotalCarbs, meal.TotalFat, meal.IsPublic, meal.ImageURL).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &meal)
		assert.Error(t, err)
	})
}

func TestGetMealsByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewMealsRepoWithConn(conn)
	uid := uuid.New()
	newer := entity.Meal{
		ID:            uuid.New(),
		UserID:        uid,
		Name:          "dinner",
		Foods:         []entity.FoodEntry{{Name: "soup"}},
		TotalCalories: 300,
		CreatedAt:     time.Now(),
	}
	older := entity.Meal{
		ID:            uuid.New(),
		UserID:        uid,
		Name:          "breakfast",
		Foods:         []entity.FoodEntry{{Name: "eggs"}},
		TotalCalories: 250,
		CreatedAt:     time.Now().Add(-6 * time.Hour),
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, name, foods, total_calories, total_protein, total_carbs, total_fat, is_public, image_url, created_at
		FROM meals WHERE user_id = $1 ORDER BY created_at DESC;`)
	t.Run("newest first", func(t *testing.T) {
		rows := pgxmock.NewRows(mealColumns)
		for _, m := range []entity.Meal{newer, older} {
			foods, merr := sonic.Marshal(m.Foods)
			if merr != nil {
				t.Fatal(merr)
			}
			rows.AddRow(m.ID, m.UserID, m.Name, foods, m.TotalCalories, m.TotalProtein, m.TotalCarbs, m.TotalFat, m.IsPublic, m.ImageURL, m.CreatedAt)
		}
		conn.ExpectQuery(query).WithArgs(uid).WillReturnRows(rows)
		result, err := repo.GetByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, newer, *result[0])
		assert.Equal(t, older, *result[1])
	})
	t.Run("no meals", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnRows(pgxmock.NewRows(mealColumns))
		result, err := repo.GetByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, uid)
		assert.Error(t, err)
	})
}

func TestGetMealsByUserAndDateRange(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewMealsRepoWithConn(conn)
	uid := uuid.New()
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24 * time.Hour)
	query := regexp.QuoteMeta(`SELECT id, user_id, name, foods, total_calories, total_protein, total_carbs, total_fat, is_public, image_url, created_at
		FROM meals WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at DESC;`)
	t.Run("found", func(t *testing.T) {
		meal := entity.Meal{
			ID:            uuid.New(),
			UserID:        uid,
			Name:          "lunch",
			Foods:         []entity.FoodEntry{{Name: "pasta"}},
			TotalCalories: 450,
			CreatedAt:     now,
		}
		foods, merr := sonic.Marshal(meal.Foods)
		if merr != nil {
			t.Fatal(merr)
		}
		conn.ExpectQuery(query).
			WithArgs(uid, from, to).
			WillReturnRows(pgxmock.NewRows(mealColumns).
				AddRow(meal.ID, meal.UserID, meal.Name, foods, meal.TotalCalories, meal.TotalProtein, meal.TotalCarbs, meal.TotalFat, meal.IsPublic, meal.ImageURL, meal.CreatedAt))
		result, err := repo.GetByUserAndDateRange(ctx, uid, from, to)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, meal, *result[0])
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, from, to).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserAndDateRange(ctx, uid, from, to)
		assert.Error(t, err)
	})
}
