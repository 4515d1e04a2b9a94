package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atithi/infras/otel"
	"atithi/infras/postgres"
	"atithi/internal/domains/booking/model"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/logger"
	gRepo "atithi/shared/repository"

	"github.com/rs/zerolog/log"
)

// ErrOverlap is returned by CreateAtomic when a conflicting active booking
// already holds the resource for the requested interval.
var ErrOverlap = errors.New("booking interval overlaps an active booking")

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	CountOverlapping(ctx context.Context, resourceID string, checkIn, checkOut time.Time, strict bool) (int, error)
	CreateAtomic(ctx context.Context, booking model.Booking, strict bool) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// overlapQuery counts active bookings whose interval overlaps the requested
// one. With strict=false (default, no same-day turnover) the comparison is
// date-inclusive so a checkout and a checkin on the same calendar date
// conflict; strict=true applies the half-open test a1 < b2 && b1 < a2.
func overlapQuery(strict bool) string {
	cmp := "check_in <= $3 AND check_out >= $2"
	if strict {
		cmp = "check_in < $3 AND check_out > $2"
	}

	return fmt.Sprintf(
		"SELECT COUNT(id) FROM %s WHERE resource_id = $1 AND status IN ('pending', 'confirmed', 'checked_in') AND %s",
		model.TableName, cmp,
	)
}

func (repo *repositoryImpl) CountOverlapping(ctx context.Context, resourceID string, checkIn, checkOut time.Time, strict bool) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlapping")
	defer scope.End()

	query := overlapQuery(strict)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	err := repo.db.Read.GetContext(ctx, &count, query, resourceID, checkIn, checkOut)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return count, nil
}

// CreateAtomic inserts a booking after re-checking availability inside a
// transaction. An advisory transaction lock on the resource id serializes
// concurrent attempts for the same resource, so two requests for the same
// interval can never both pass the overlap check.
func (repo *repositoryImpl) CreateAtomic(ctx context.Context, booking model.Booking, strict bool) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateAtomic")
	defer scope.End()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	_, err = tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", booking.ResourceID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to acquire resource lock: %w", err)
	}

	var count int

	err = tx.GetContext(ctx, &count, overlapQuery(strict), booking.ResourceID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to re-check availability: %w", err)
	}

	if count > 0 {
		err = ErrOverlap

		return err
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err // nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}
