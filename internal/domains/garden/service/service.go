package service

import (
	"context"
	"fmt"

	"atithi/config"
	"atithi/infras/otel"
	"atithi/internal/domains/garden/model"
	"atithi/internal/domains/garden/model/dto"
	"atithi/internal/domains/garden/repository"
	"atithi/shared"
	"atithi/shared/cache"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGarden    = "garden:get"
	cacheGetAllGarden = "garden:gets"
	cacheCountGarden  = "garden:count"
)

type Garden interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGardensResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GardenResponse, error)
	SetStatus(ctx context.Context, req dto.SetGardenStatusRequest, id string) error
}

type serviceImpl struct {
	repo  repository.Garden
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Garden, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Garden {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGardensResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGarden, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gardens")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count gardens")

		return res, fmt.Errorf("failed to count gardens: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gardens")

		return res, fmt.Errorf("failed to get gardens: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gardens to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGarden, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for garden count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count gardens")

		return res, fmt.Errorf("failed to count gardens: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save garden count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GardenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGarden, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for garden")

		return res, nil
	}

	garden, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get garden")

		return res, fmt.Errorf("failed to get garden: %w", err)
	}

	if garden.ID == constant.Empty {
		return res, failure.NotFound("garden not found") // nolint:wrapcheck
	}

	res.FromModel(garden)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save garden to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) SetStatus(ctx context.Context, req dto.SetGardenStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if garden exists")

		return fmt.Errorf("failed to check if garden exists: %w", err)
	}

	if !exist {
		log.Error().Msg("garden not found")

		return failure.NotFound("garden not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update garden status")

		return fmt.Errorf("failed to update garden status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGarden, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete garden from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGarden)
		shared.InvalidateCaches(c, s.cache, cacheCountGarden)
	}()

	return nil
}
