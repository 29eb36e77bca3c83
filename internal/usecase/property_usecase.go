package usecase

import (
	"context"

	"ghargpt/internal/domain/entity"
	"ghargpt/internal/domain/repository"
	"ghargpt/pkg/errors"
)

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
}

func NewPropertyUseCase(propertyRepo repository.PropertyRepository) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
	}
}

type ListPropertiesInput struct {
	City         string
	PropertyType string
	MinBudget    *int64
	MaxBudget    *int64
	IsVerified   *bool
	Skip         int
	Limit        int
}

func (uc *PropertyUseCase) ListProperties(ctx context.Context, input ListPropertiesInput) ([]*entity.Property, error) {
	// Reject an inverted range before touching the store.
	if input.MinBudget != nil && input.MaxBudget != nil && *input.MinBudget > *input.MaxBudget {
		return nil, errors.BadRequest("min_budget cannot be greater than max_budget", nil)
	}

	filter := repository.PropertyFilter{
		City:         input.City,
		PropertyType: input.PropertyType,
		MinBudget:    input.MinBudget,
		MaxBudget:    input.MaxBudget,
		IsVerified:   input.IsVerified,
	}

	return uc.propertyRepo.List(ctx, filter, input.Skip, input.Limit)
}

func (uc *PropertyUseCase) GetPropertyByID(ctx context.Context, id string) (*entity.Property, error) {
	return uc.propertyRepo.GetByID(ctx, id)
}

func (uc *PropertyUseCase) CreateProperty(ctx context.Context, input *entity.PropertyCreate) (*entity.Property, error) {
	status := input.Status
	if status == "" {
		status = entity.StatusActive
	}

	budget := input.Budget
	if budget.Currency == "" {
		budget.Currency = "INR"
	}

	property := &entity.Property{
		Name:              input.Name,
		PropertyType:      input.PropertyType,
		Age:               input.Age,
		Location:          input.Location,
		Landmarks:         emptyIfNil(input.Landmarks),
		Budget:            budget,
		MarketPrice:       input.MarketPrice,
		Specifications:    input.Specifications,
		Benefits:          emptyIfNil(input.Benefits),
		Drawbacks:         emptyIfNil(input.Drawbacks),
		SimilarProperties: emptyIfNil(input.SimilarProperties),
		IsVerified:        input.IsVerified,
		Verification:      input.Verification,
		Owner:             input.Owner,
		Ratings:           input.Ratings,
		Likes:             input.Likes,
		Views:             input.Views,
		Inquiries:         input.Inquiries,
		Comments:          emptyIfNil(input.Comments),
		Images:            emptyIfNil(input.Images),
		Videos:            emptyIfNil(input.Videos),
		Slug:              input.Slug,
		Meta:              input.Meta,
		Status:            status,
		Featured:          input.Featured,
		ExpiresAt:         input.ExpiresAt,
		AIMetadata:        input.AIMetadata,
	}

	if err := property.CheckEnums(); err != nil {
		return nil, errors.BadRequest(err.Error(), err)
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (uc *PropertyUseCase) UpdateProperty(ctx context.Context, id string, update *entity.PropertyUpdate) (*entity.Property, error) {
	// An empty payload is a no-op that still surfaces current state, for both
	// PUT and PATCH callers.
	if update.IsEmpty() {
		return uc.propertyRepo.GetByID(ctx, id)
	}

	return uc.propertyRepo.Update(ctx, id, update)
}

func (uc *PropertyUseCase) DeleteProperty(ctx context.Context, id string) error {
	return uc.propertyRepo.Delete(ctx, id)
}

// emptyIfNil keeps repeated sub-structures as empty arrays in the stored
// document instead of nulls.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
