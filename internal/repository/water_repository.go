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

type WaterRepository struct {
	conn PgConnection
}

func NewWaterRepo(cfg DBConfig) *WaterRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for waterRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for waterRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WaterRepository{
		conn: pool,
	}
}

func NewWaterRepoWithConn(conn PgConnection) *WaterRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for waterRepo: " + err.Error())
	}
	return &WaterRepository{
		conn: conn,
	}
}

func (wr *WaterRepository) CreateIntake(ctx context.Context, intake *entity.WaterIntake) error {
	if intake == nil {
		return errors.New("intake is nil")
	}
	_, err := wr.conn.Exec(ctx,
		`INSERT INTO water_intakes (user_id, intake_date, amount_ml) VALUES ($1, $2, $3);`,
		intake.UserID,
		intake.IntakeDate,
		intake.AmountML,
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
		return errors.New("creating water intake error: " + err.Error())
	}
	return nil
}

func (wr *WaterRepository) GetIntakesByDate(ctx context.Context, uid uuid.UUID, date string) ([]entity.WaterIntake, error) {
	rows, err := wr.conn.Query(ctx,
		`SELECT id, user_id, intake_date, amount_ml, created_at FROM water_intakes
		WHERE user_id = $1 AND intake_date = $2 ORDER BY created_at;`, uid, date)
	if err != nil {
		return nil, errors.New("getting water intakes error: " + err.Error())
	}
	defer rows.Close()
	intakes := make([]entity.WaterIntake, 0)
	for rows.Next() {
		in := entity.WaterIntake{}
		err = rows.Scan(&in.ID, &in.UserID, &in.IntakeDate, &in.AmountML, &in.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling water intake error: " + err.Error())
		}
		intakes = append(intakes, in)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return intakes, nil
}
