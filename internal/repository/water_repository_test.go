package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/archerhealth/backend/internal/error_values"
	"github.com/archerhealth/backend/internal/repository"
	"github.com/archerhealth/backend/pkg/entity"
)

func TestCreateIntake(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWaterRepoWithConn(conn)
	intake := entity.WaterIntake{
		UserID:     uuid.New(),
		IntakeDate: "2026-08-31",
		AmountML:   250,
	}
	query := regexp.QuoteMeta(`INSERT INTO water_intakes (user_id, intake_date, amount_ml) VALUES ($1, $2, $3);`)
	t.Run("created", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(intake.UserID, intake.IntakeDate, intake.AmountML).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.CreateIntake(ctx, &intake)
		assert.NoError(t, err)
	})
	t.Run("owner not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(intake.UserID, intake.IntakeDate, intake.AmountML).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.CreateIntake(ctx, &intake)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(intake.UserID, intake.IntakeDate, intake.AmountML).
			WillReturnError(errors.New("db error"))
		err := repo.CreateIntake(ctx, &intake)
		assert.Error(t, err)
	})
}

func TestGetIntakesByDate(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWaterRepoWithConn(conn)
	uid := uuid.New()
	date := "2026-08-31"
	query := regexp.QuoteMeta(`SELECT id, user_id, intake_date, amount_ml, created_at FROM water_intakes
		WHERE user_id = $1 AND intake_date = $2 ORDER BY created_at;`)
	t.Run("found", func(t *testing.T) {
		first := entity.WaterIntake{ID: 1, UserID: uid, IntakeDate: date, AmountML: 250, CreatedAt: time.Now().Add(-time.Hour)}
		second := entity.WaterIntake{ID: 2, UserID: uid, IntakeDate: date, AmountML: 500, CreatedAt: time.Now()}
		conn.ExpectQuery(query).
			WithArgs(uid, date).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "intake_date", "amount_ml", "created_at"}).
				AddRow(first.ID, first.UserID, first.IntakeDate, first.AmountML, first.CreatedAt).
				AddRow(second.ID, second.UserID, second.IntakeDate, second.AmountML, second.CreatedAt))
		result, err := repo.GetIntakesByDate(ctx, uid, date)
		assert.NoError(t, err)
		assert.Equal(t, []entity.WaterIntake{first, second}, result)
	})
	t.Run("no intakes", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, date).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "intake_date", "amount_ml", "created_at"}))
		result, err := repo.GetIntakesByDate(ctx, uid, date)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, date).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetIntakesByDate(ctx, uid, date)
		assert.Error(t, err)
	})
}
