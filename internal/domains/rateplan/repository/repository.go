package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/rateplan/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
	"strings"
)

type RatePlan interface {
	Insert(ctx context.Context, model model.RatePlan) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RatePlan, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RatePlan, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindByCodeAndRoomType(ctx context.Context, code string, roomTypeID *string) (model.RatePlan, error)
	FindAnyByRoomType(ctx context.Context, roomTypeID string) (model.RatePlan, error)
	FindAnyGlobal(ctx context.Context) (model.RatePlan, error)
}

type ratePlanImpl struct {
	gRepo.Repository[model.RatePlan]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RatePlan {
	return &ratePlanImpl{
		Repository: gRepo.NewRepository[model.RatePlan](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func activeFilter() gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldActive,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	}
}

// FindByCodeAndRoomType resolves the unique plan for a (code, room type)
// pair. A nil roomTypeID addresses the global group.
func (repo *ratePlanImpl) FindByCodeAndRoomType(ctx context.Context, code string, roomTypeID *string) (model.RatePlan, error) {
	filters := []any{
		activeFilter(),
		gDto.Filter{
			Field:    model.FieldCode,
			Operator: gDto.FilterOperatorEq,
			Value:    code,
			Table:    model.TableName,
		},
	}

	if roomTypeID == nil {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRoomTypeID,
			Operator: gDto.FilterIsNull,
			Table:    model.TableName,
		})
	} else {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRoomTypeID,
			Operator: gDto.FilterOperatorEq,
			Value:    *roomTypeID,
			Table:    model.TableName,
		})
	}

	return repo.Get(ctx, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters})
}

// FindAnyByRoomType returns the lowest-id active plan bound to the room type.
func (repo *ratePlanImpl) FindAnyByRoomType(ctx context.Context, roomTypeID string) (model.RatePlan, error) {
	return repo.first(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			activeFilter(),
			gDto.Filter{
				Field:    model.FieldRoomTypeID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomTypeID,
				Table:    model.TableName,
			},
		},
	})
}

// FindAnyGlobal returns the lowest-id active plan of the global group.
func (repo *ratePlanImpl) FindAnyGlobal(ctx context.Context) (model.RatePlan, error) {
	return repo.first(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			activeFilter(),
			gDto.Filter{
				Field:    model.FieldRoomTypeID,
				Operator: gDto.FilterIsNull,
				Table:    model.TableName,
			},
		},
	})
}

func (repo *ratePlanImpl) first(ctx context.Context, filter gDto.FilterGroup) (model.RatePlan, error) {
	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  fmt.Sprintf("%s.%s", model.TableName, model.FieldID),
		SortDir: gDto.SortDirAsc,
	}

	plans, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		return model.RatePlan{}, err
	}

	if len(plans) == 0 {
		return model.RatePlan{}, nil
	}

	return plans[0], nil
}

type RatePlanPrice interface {
	Insert(ctx context.Context, model model.RatePlanPrice) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RatePlanPrice, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByPlanAndDates(ctx context.Context, ratePlanID string, dates []string) ([]model.RatePlanPrice, error)
	UpsertBulk(ctx context.Context, models []model.RatePlanPrice) error
}

type priceImpl struct {
	gRepo.Repository[model.RatePlanPrice]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPrice(db *postgres.Connection, otel otel.Otel) RatePlanPrice {
	return &priceImpl{
		Repository: gRepo.NewRepository[model.RatePlanPrice](model.PriceEntityName, model.PriceTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByPlanAndDates bulk-fetches the plan's price rows for the given nights.
func (repo *priceImpl) GetByPlanAndDates(ctx context.Context, ratePlanID string, dates []string) ([]model.RatePlanPrice, error) {
	if len(dates) == 0 {
		return []model.RatePlanPrice{}, nil
	}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.PriceTableName, model.FieldDate),
		SortDir: gDto.SortDirAsc,
	}

	return repo.GetAll(ctx, params, planDatesFilter(model.PriceTableName, ratePlanID, dates))
}

// UpsertBulk inserts price rows, overwriting existing (rate_plan_id, date)
// entries in place.
func (repo *priceImpl) UpsertBulk(ctx context.Context, models []model.RatePlanPrice) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.PriceEntityName+".UpsertBulk")
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	placeholders := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s)
		ON CONFLICT (rate_plan_id, date) DO UPDATE SET
			price_base = EXCLUDED.price_base,
			price_extra_adult = EXCLUDED.price_extra_adult,
			price_extra_child = EXCLUDED.price_extra_child,
			closed = EXCLUDED.closed,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`,
		model.PriceTableName,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, models); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.PriceEntityName, err)
	}

	return nil
}

type RateRestriction interface {
	Insert(ctx context.Context, model model.RateRestriction) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RateRestriction, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByPlanAndDates(ctx context.Context, ratePlanID string, dates []string) ([]model.RateRestriction, error)
	UpsertBulk(ctx context.Context, models []model.RateRestriction) error
}

type restrictionImpl struct {
	gRepo.Repository[model.RateRestriction]
	db   *postgres.Connection
	otel otel.Otel
}

func NewRestriction(db *postgres.Connection, otel otel.Otel) RateRestriction {
	return &restrictionImpl{
		Repository: gRepo.NewRepository[model.RateRestriction](model.RestrictionEntityName, model.RestrictionTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByPlanAndDates bulk-fetches the plan's restriction rows for the nights.
func (repo *restrictionImpl) GetByPlanAndDates(ctx context.Context, ratePlanID string, dates []string) ([]model.RateRestriction, error) {
	if len(dates) == 0 {
		return []model.RateRestriction{}, nil
	}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.RestrictionTableName, model.FieldDate),
		SortDir: gDto.SortDirAsc,
	}

	return repo.GetAll(ctx, params, planDatesFilter(model.RestrictionTableName, ratePlanID, dates))
}

// UpsertBulk inserts restriction rows, overwriting existing
// (rate_plan_id, date) entries in place.
func (repo *restrictionImpl) UpsertBulk(ctx context.Context, models []model.RateRestriction) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.RestrictionEntityName+".UpsertBulk")
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	placeholders := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s)
		ON CONFLICT (rate_plan_id, date) DO UPDATE SET
			min_stay = EXCLUDED.min_stay,
			max_stay = EXCLUDED.max_stay,
			closed_to_arrival = EXCLUDED.closed_to_arrival,
			closed_to_departure = EXCLUDED.closed_to_departure,
			min_advance_days = EXCLUDED.min_advance_days,
			max_advance_days = EXCLUDED.max_advance_days,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`,
		model.RestrictionTableName,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, models); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.RestrictionEntityName, err)
	}

	return nil
}

func planDatesFilter(table, ratePlanID string, dates []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRatePlanID,
				Operator: gDto.FilterOperatorEq,
				Value:    ratePlanID,
				Table:    table,
			},
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorIn,
				Value:    dates,
				Table:    table,
			},
		},
	}
}
