package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"atithi/config"
	"atithi/infras/otel"
	"atithi/internal/domains/rule/model"
	"atithi/internal/domains/rule/model/dto"
	"atithi/internal/domains/rule/repository"
	"atithi/shared"
	"atithi/shared/cache"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllRule = "rule:gets"
)

type Rule interface {
	GetAll(ctx context.Context, ruleType, businessUnit string) (dto.GetRulesResponse, error)
	Validate(ctx context.Context, req dto.ValidateBookingRequest) (dto.ValidationResult, error)
}

type serviceImpl struct {
	repo  repository.Rule
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Rule, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Rule {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func ruleFilter(ruleType, businessUnit string) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if ruleType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    ruleType,
			Table:    model.TableName,
		})
	}

	if businessUnit != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBusinessUnit,
			Operator: gDto.FilterOperatorEq,
			Value:    businessUnit,
			Table:    model.TableName,
		})
	}

	return filterGroup
}

func (s *serviceImpl) GetAll(ctx context.Context, ruleType, businessUnit string) (res dto.GetRulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllRule, ruleType, businessUnit)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rules")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, ruleFilter(ruleType, businessUnit))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rules")

		return res, fmt.Errorf("failed to get rules: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rules to cache")
		}
	}()

	return res, nil
}

// Validate evaluates every rule configured for the (type, business unit) pair
// and reports all violations at once.
func (s *serviceImpl) Validate(ctx context.Context, req dto.ValidateBookingRequest) (res dto.ValidationResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Validate")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := timezone.Parse(constant.DateOnlyFormat, req.CheckIn)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid check_in date: %v", err)) // nolint:wrapcheck
	}

	var checkOut *time.Time

	if req.CheckOut != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, req.CheckOut)
		if err != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid check_out date: %v", err)) // nolint:wrapcheck
		}

		checkOut = &parsed
	}

	rules, err := s.repo.GetAll(ctx, gDto.QueryParams{}, ruleFilter(req.Type, req.BusinessUnit))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rules")

		return res, fmt.Errorf("failed to get rules: %w", err)
	}

	res.Errors = []string{}

	for _, rule := range rules {
		switch rule.Rule {
		case model.KindMinDays:
			if checkOut != nil && ceilDays(checkOut.Sub(checkIn)) < rule.Value {
				res.Errors = append(res.Errors, fmt.Sprintf("Minimum booking period is %d days", rule.Value))
			}
		case model.KindMaxDays:
			if checkOut != nil && ceilDays(checkOut.Sub(checkIn)) > rule.Value {
				res.Errors = append(res.Errors, fmt.Sprintf("Maximum booking period is %d days", rule.Value))
			}
		case model.KindAdvanceBooking:
			if ceilDays(checkIn.Sub(timezone.Now())) < rule.Value {
				res.Errors = append(res.Errors, fmt.Sprintf("Minimum %d days advance booking required", rule.Value))
			}
		}
	}

	res.Valid = len(res.Errors) == 0

	return res, nil
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}
