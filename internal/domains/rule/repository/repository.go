package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atithi/infras/otel"
	"atithi/infras/postgres"
	"atithi/internal/domains/rule/model"
	gDto "atithi/shared/dto"
	gRepo "atithi/shared/repository"
)

type Rule interface {
	Insert(ctx context.Context, model model.Rule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Rule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Rule]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rule](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
