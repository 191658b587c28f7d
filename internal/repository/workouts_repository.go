package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/archerhealth/backend/internal/error_values"
	"github.com/archerhealth/backend/pkg/cleanup"
	"github.com/archerhealth/backend/pkg/entity"
)

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(cfg DBConfig) *WorkoutsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for workoutsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WorkoutsRepository{
		conn: pool,
	}
}

func NewWorkoutsRepoWithConn(conn PgConnection) *WorkoutsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	return &WorkoutsRepository{
		conn: conn,
	}
}

func (wr *WorkoutsRepository) Create(ctx context.Context, workout *entity.Workout) error {
	if workout == nil {
		return errors.New("workout is nil")
	}
	row := wr.conn.QueryRow(ctx,
		`INSERT INTO workouts (id, user_id, activity, duration_min, calories, performed_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at;`,
		workout.ID,
		workout.UserID,
		workout.Activity,
		workout.DurationMin,
		workout.Calories,
		workout.PerformedAt,
	)
	if err := row.Scan(&workout.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating workout db error: " + err.Error())
	}
	return nil
}

func (wr *WorkoutsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Workout, error) {
	rows, err := wr.conn.Query(ctx,
		`SELECT id, user_id, activity, duration_min, calories, performed_at, created_at
		FROM workouts WHERE user_id = $1 ORDER BY performed_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting workouts by uid error: " + err.Error())
	}
	defer rows.Close()
	workouts := make([]*entity.Workout, 0)
	for rows.Next() {
		w := entity.Workout{}
		err = rows.Scan(&w.ID, &w.UserID, &w.Activity, &w.DurationMin, &w.Calories, &w.PerformedAt, &w.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling workout error: " + err.Error())
		}
		workouts = append(workouts, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return workouts, nil
}
