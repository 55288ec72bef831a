package service

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/rateplan/model"
	"lodge/internal/domains/rateplan/model/dto"
	"lodge/internal/domains/rateplan/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/daterange"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRatePlan    = "rate_plan:get"
	cacheGetAllRatePlan = "rate_plan:gets"
	cacheCountRatePlan  = "rate_plan:count"
)

type RatePlan interface {
	Create(ctx context.Context, req dto.CreateRatePlanRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRatePlansResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RatePlanResponse, error)
	Update(ctx context.Context, req dto.UpdateRatePlanRequest, id string) error
	Delete(ctx context.Context, id string) error
	UpsertPrices(ctx context.Context, id string, req dto.UpsertPricesRequest) error
	GetPrices(ctx context.Context, id, from, to string) (dto.GetPricesResponse, error)
	UpsertRestrictions(ctx context.Context, id string, req dto.UpsertRestrictionsRequest) error
	GetRestrictions(ctx context.Context, id, from, to string) (dto.GetRestrictionsResponse, error)
}

type serviceImpl struct {
	repo            repository.RatePlan
	priceRepo       repository.RatePlanPrice
	restrictionRepo repository.RateRestriction
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	repo repository.RatePlan,
	priceRepo repository.RatePlanPrice,
	restrictionRepo repository.RateRestriction,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) RatePlan {
	return &serviceImpl{
		repo:            repo,
		priceRepo:       priceRepo,
		restrictionRepo: restrictionRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRatePlanRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	existing, err := s.repo.FindByCodeAndRoomType(ctx, req.Code, req.RoomTypeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check rate plan uniqueness")

		return fmt.Errorf("failed to check rate plan uniqueness: %w", err)
	}

	if existing.ID != constant.Empty {
		return failure.Conflict("a rate plan with this code already exists for the room type")
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRatePlan)
		shared.InvalidateCaches(c, s.cache, cacheCountRatePlan)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRatePlansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRatePlan, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rate plans")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rate plans")

		return res, fmt.Errorf("failed to count rate plans: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate plans")

		return res, fmt.Errorf("failed to get rate plans: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rate plans to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRatePlan, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rate plan count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rate plans")

		return res, fmt.Errorf("failed to count rate plans: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rate plan count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RatePlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRatePlan, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rate plan")

		return res, nil
	}

	plan, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate plan")

		return res, fmt.Errorf("failed to get rate plan: %w", err)
	}

	if plan.ID == constant.Empty {
		return res, failure.NotFound("rate plan not found") // nolint:wrapcheck
	}

	res.FromModel(plan)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rate plan to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRatePlanRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check rate plan existence")

		return fmt.Errorf("failed to check rate plan existence: %w", err)
	}

	if !exist {
		log.Error().Msg("rate plan not found")

		return failure.NotFound("rate plan not found")
	}

	updatedFields := shared.TransformFields(req, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update rate plan")

		return fmt.Errorf("failed to update rate plan: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRatePlan, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete rate plan cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRatePlan)
		shared.InvalidateCaches(c, s.cache, cacheCountRatePlan)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if rate plan exists")

		return fmt.Errorf("failed to check if rate plan exists: %w", err)
	}

	if !exist {
		log.Error().Msg("rate plan not found")

		return failure.NotFound("rate plan not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete rate plan")

		return fmt.Errorf("failed to delete rate plan: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRatePlan, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete rate plan from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRatePlan)
		shared.InvalidateCaches(c, s.cache, cacheCountRatePlan)
	}()

	return nil
}

func (s *serviceImpl) UpsertPrices(ctx context.Context, id string, req dto.UpsertPricesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertPrices")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ensurePlanExists(ctx, id); err != nil {
		return err
	}

	models := make([]model.RatePlanPrice, len(req.Prices))

	for i, entry := range req.Prices {
		date, err := daterange.ParseDateOnly(entry.Date, timezone.GetLocation())
		if err != nil {
			return failure.BadRequestFromString("invalid price date: " + entry.Date)
		}

		models[i] = entry.ToModel(id, user, date)
	}

	if err = s.priceRepo.UpsertBulk(ctx, models); err != nil {
		log.Error().Err(err).Msg("failed to upsert rate plan prices")

		return fmt.Errorf("failed to upsert rate plan prices: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetPrices(ctx context.Context, id, from, to string) (res dto.GetPricesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPrices")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensurePlanExists(ctx, id); err != nil {
		return res, err
	}

	dates, err := inclusiveDates(from, to)
	if err != nil {
		return res, err
	}

	prices, err := s.priceRepo.GetByPlanAndDates(ctx, id, dates)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate plan prices")

		return res, fmt.Errorf("failed to get rate plan prices: %w", err)
	}

	res.FromModels(id, prices)

	return res, nil
}

func (s *serviceImpl) UpsertRestrictions(ctx context.Context, id string, req dto.UpsertRestrictionsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertRestrictions")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ensurePlanExists(ctx, id); err != nil {
		return err
	}

	models := make([]model.RateRestriction, len(req.Restrictions))

	for i, entry := range req.Restrictions {
		date, err := daterange.ParseDateOnly(entry.Date, timezone.GetLocation())
		if err != nil {
			return failure.BadRequestFromString("invalid restriction date: " + entry.Date)
		}

		models[i] = entry.ToModel(id, user, date)
	}

	if err = s.restrictionRepo.UpsertBulk(ctx, models); err != nil {
		log.Error().Err(err).Msg("failed to upsert rate restrictions")

		return fmt.Errorf("failed to upsert rate restrictions: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetRestrictions(ctx context.Context, id, from, to string) (res dto.GetRestrictionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRestrictions")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensurePlanExists(ctx, id); err != nil {
		return res, err
	}

	dates, err := inclusiveDates(from, to)
	if err != nil {
		return res, err
	}

	restrictions, err := s.restrictionRepo.GetByPlanAndDates(ctx, id, dates)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate restrictions")

		return res, fmt.Errorf("failed to get rate restrictions: %w", err)
	}

	res.FromModels(id, restrictions)

	return res, nil
}

func (s *serviceImpl) ensurePlanExists(ctx context.Context, id string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check rate plan existence")

		return fmt.Errorf("failed to check rate plan existence: %w", err)
	}

	if !exist {
		return failure.NotFound("rate plan not found") // nolint:wrapcheck
	}

	return nil
}

// inclusiveDates enumerates [from, to] as formatted calendar days.
func inclusiveDates(from, to string) ([]string, error) {
	loc := timezone.GetLocation()

	fromDate, err := daterange.ParseDateOnly(from, loc)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid from date")
	}

	toDate, err := daterange.ParseDateOnly(to, loc)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid to date")
	}

	if toDate.Before(fromDate) {
		return nil, failure.BadRequestFromString("to date must not be before from date")
	}

	return daterange.Nights(fromDate, daterange.AddDays(toDate, 1)), nil
}
