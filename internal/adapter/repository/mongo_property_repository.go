package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ghargpt/internal/domain/entity"
	"ghargpt/internal/domain/repository"
	"ghargpt/pkg/errors"
	"ghargpt/pkg/logger"
)

type mongoPropertyRepository struct {
	collection *mongo.Collection
}

func NewMongoPropertyRepository(db *mongo.Database, collectionName string) repository.PropertyRepository {
	return &mongoPropertyRepository{
		collection: db.Collection(collectionName),
	}
}

// buildListQuery translates a PropertyFilter into the store's native
// predicate. Budget bounds share one range document so either may stand alone.
func buildListQuery(filter repository.PropertyFilter) bson.M {
	query := bson.M{}

	if filter.City != "" {
		query["location.city"] = filter.City
	}
	if filter.PropertyType != "" {
		query["property_type"] = filter.PropertyType
	}
	if filter.MinBudget != nil || filter.MaxBudget != nil {
		budgetQuery := bson.M{}
		if filter.MinBudget != nil {
			budgetQuery["$gte"] = *filter.MinBudget
		}
		if filter.MaxBudget != nil {
			budgetQuery["$lte"] = *filter.MaxBudget
		}
		query["budget.amount"] = budgetQuery
	}
	if filter.IsVerified != nil {
		query["isVerified"] = *filter.IsVerified
	}

	return query
}

func (r *mongoPropertyRepository) List(ctx context.Context, filter repository.PropertyFilter, skip, limit int) ([]*entity.Property, error) {
	// Stable order so skip/limit pages stay disjoint across requests.
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, buildListQuery(filter), opts)
	if err != nil {
		logger.Error("Failed to list properties: %v", err)
		return nil, errors.Internal("Failed to list properties", err)
	}
	defer cursor.Close(ctx)

	properties := []*entity.Property{}
	for cursor.Next(ctx) {
		var property entity.Property
		if err := cursor.Decode(&property); err != nil {
			return nil, errors.Internal("Failed to decode property document", err)
		}
		if err := property.CheckEnums(); err != nil {
			return nil, errors.Internal("Failed to decode property document", err)
		}
		properties = append(properties, &property)
	}
	if err := cursor.Err(); err != nil {
		logger.Error("Failed to iterate properties: %v", err)
		return nil, errors.Internal("Failed to iterate properties", err)
	}

	return properties, nil
}

func (r *mongoPropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	var property entity.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Property", err)
		}
		logger.Error("Failed to get property %s: %v", id, err)
		return nil, errors.Internal("Failed to get property", err)
	}
	if err := property.CheckEnums(); err != nil {
		return nil, errors.Internal("Failed to decode property document", err)
	}

	return &property, nil
}

func (r *mongoPropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		property.ID = primitive.NewObjectID().Hex()
	}

	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, property); err != nil {
		logger.Error("Failed to create property: %v", err)
		return errors.Internal("Failed to create property", err)
	}

	return nil
}

// buildSetDocument keeps only the fields present on the update; a pointer to
// a zero value is still written, a nil pointer is not.
func buildSetDocument(update *entity.PropertyUpdate) bson.M {
	set := bson.M{}

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.PropertyType != nil {
		set["property_type"] = *update.PropertyType
	}
	if update.Age != nil {
		set["age"] = *update.Age
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Landmarks != nil {
		set["landmarks"] = *update.Landmarks
	}
	if update.Budget != nil {
		set["budget"] = *update.Budget
	}
	if update.MarketPrice != nil {
		set["market_price"] = *update.MarketPrice
	}
	if update.Specifications != nil {
		set["specifications"] = *update.Specifications
	}
	if update.Benefits != nil {
		set["benefits"] = *update.Benefits
	}
	if update.Drawbacks != nil {
		set["drawbacks"] = *update.Drawbacks
	}
	if update.SimilarProperties != nil {
		set["similar_properties"] = *update.SimilarProperties
	}
	if update.IsVerified != nil {
		set["isVerified"] = *update.IsVerified
	}
	if update.Verification != nil {
		set["verification"] = *update.Verification
	}
	if update.Owner != nil {
		set["owner"] = *update.Owner
	}
	if update.Ratings != nil {
		set["ratings"] = *update.Ratings
	}
	if update.Likes != nil {
		set["likes"] = *update.Likes
	}
	if update.Views != nil {
		set["views"] = *update.Views
	}
	if update.Inquiries != nil {
		set["inquiries"] = *update.Inquiries
	}
	if update.Comments != nil {
		set["comments"] = *update.Comments
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}
	if update.Videos != nil {
		set["videos"] = *update.Videos
	}
	if update.Slug != nil {
		set["slug"] = *update.Slug
	}
	if update.Meta != nil {
		set["meta"] = *update.Meta
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}
	if update.ExpiresAt != nil {
		set["expires_at"] = *update.ExpiresAt
	}
	if update.AIMetadata != nil {
		set["ai_metadata"] = *update.AIMetadata
	}

	return set
}

func (r *mongoPropertyRepository) Update(ctx context.Context, id string, update *entity.PropertyUpdate) (*entity.Property, error) {
	set := buildSetDocument(update)
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var property entity.Property
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Property", err)
		}
		logger.Error("Failed to update property %s: %v", id, err)
		return nil, errors.Internal("Failed to update property", err)
	}
	if err := property.CheckEnums(); err != nil {
		return nil, errors.Internal("Failed to decode property document", err)
	}

	return &property, nil
}

func (r *mongoPropertyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error("Failed to delete property %s: %v", id, err)
		return errors.Internal("Failed to delete property", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Property", nil)
	}

	return nil
}
