package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archerhealth/backend/pkg/cleanup"
	"github.com/archerhealth/backend/pkg/entity"
)

type MealsRepository struct {
	conn PgConnection
}

func NewMealsRepo(cfg DBConfig) *MealsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for mealsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for mealsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MealsRepository{
		conn: pool,
	}
}

func NewMealsRepoWithConn(conn PgConnection) *MealsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for mealsRepo: " + err.Error())
	}
	return &MealsRepository{
		conn: conn,
	}
}

func (mr *MealsRepository) Create(ctx context.Context, meal *entity.Meal) error {
	if meal == nil {
		return errors.New("meal is nil")
	}
	foods, err := sonic.Marshal(meal.Foods)
	if err != nil {
		return errors.New("marshalling food entries error: " + err.Error())
	}
	row := mr.conn.QueryRow(ctx,
		`INSERT INTO meals (id, user_id, name, foods, total_calories, total_protein, total_carbs, total_fat, is_public, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING created_at;`,
		meal.ID,
		meal.UserID,
		meal.Name,
		foods,
		meal.TotalCalories,
		meal.TotalProtein,
		meal.TotalCarbs,
		meal.TotalFat,
		meal.IsPublic,
		meal.ImageURL,
	)
	if err := row.Scan(&meal.CreatedAt); err != nil {
		return errors.New("creating meal db error: " + err.Error())
	}
	return nil
}

func (mr *MealsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Meal, error) {
	rows, err := mr.conn.Query(ctx,
		`SELECT id, user_id, name, foods, total_calories, total_protein, total_carbs, total_fat, is_public, image_url, created_at
		FROM meals WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting meals by uid error: " + err.Error())
	}
	defer rows.Close()
	return scanMeals(rows)
}

func (mr *MealsRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.Meal, error) {
	rows, err := mr.conn.Query(ctx,
		`SELECT id, user_id, name, foods, total_calories, total_protein, total_carbs, total_fat, is_public, image_url, created_at
		FROM meals WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at DESC;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting meals for period error: " + err.Error())
	}
	defer rows.Close()
	return scanMeals(rows)
}

func scanMeals(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*entity.Meal, error) {
	meals := make([]*entity.Meal, 0)
	for rows.Next() {
		m := entity.Meal{}
		var foods []byte
		err := rows.Scan(&m.ID, &m.UserID, &m.Name, &foods, &m.TotalCalories, &m.TotalProtein, &m.TotalCarbs, &m.TotalFat, &m.IsPublic, &m.ImageURL, &m.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling meal error: " + err.Error())
		}
		if len(foods) > 0 {
			if err = sonic.Unmarshal(foods, &m.Foods); err != nil {
				return nil, errors.New("unmarshalling food entries error: " + err.Error())
			}
		}
		meals = append(meals, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return meals, nil
}
