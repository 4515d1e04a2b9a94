package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atithi/infras/otel"
	"atithi/infras/postgres"
	"atithi/internal/domains/garden/model"
	gDto "atithi/shared/dto"
	gRepo "atithi/shared/repository"
)

type Garden interface {
	Insert(ctx context.Context, model model.Garden) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Garden, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Garden, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Garden]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Garden {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Garden](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
