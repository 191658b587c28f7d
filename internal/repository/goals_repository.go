package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/archerhealth/backend/internal/error_values"
	"github.com/archerhealth/backend/pkg/cleanup"
	"github.com/archerhealth/backend/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(cfg DBConfig) *GoalsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for goalsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GoalsRepository{
		conn: pool,
	}
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) GetDailyGoal(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyGoal, error) {
	goal := entity.DailyGoal{UserID: uid, GoalDate: date}
	row := gr.conn.QueryRow(ctx, `SELECT amount_ml FROM daily_goals WHERE user_id = $1 AND goal_date = $2;`, uid, date)
	if err := row.Scan(&goal.AmountML); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting daily goal error: " + err.Error())
	}
	return &goal, nil
}

func (gr *GoalsRepository) UpsertDailyGoal(ctx context.Context, goal *entity.DailyGoal) error {
	if goal == nil {
		return errors.New("goal is nil")
	}
	_, err := gr.conn.Exec(ctx,
		`INSERT INTO daily_goals (user_id, goal_date, amount_ml) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, goal_date) DO UPDATE SET amount_ml = EXCLUDED.amount_ml;`,
		goal.UserID,
		goal.GoalDate,
		goal.AmountML,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("upserting daily goal error: " + err.Error())
	}
	return nil
}
