package repository

import (
	"context"
	"time"

	"github.com/guttosm/tour-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TourPackageDocument is a catalog entry as stored in MongoDB.
// Position keeps the display order of the seed.
type TourPackageDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Position  int                `bson:"position"`
	Package   model.TourPackage  `bson:",inline"`
	CreatedAt time.Time          `bson:"created_at"`
	CreatedBy string             `bson:"created_by,omitempty"`
}

// TourPackagesRepository reads and seeds the tour_packages collection.
type TourPackagesRepository struct {
	collection *mongo.Collection
}

// NewTourPackagesRepository creates a repository over db.TourPackages.
func NewTourPackagesRepository(db *MongoDB) *TourPackagesRepository {
	return &TourPackagesRepository{collection: db.TourPackages}
}

// List returns all packages ordered by position.
func (r *TourPackagesRepository) List(ctx context.Context) ([]model.TourPackage, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []TourPackageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	packages := make([]model.TourPackage, len(docs))
	for i, d := range docs {
		packages[i] = d.Package
	}
	return packages, nil
}

// Count returns the number of stored packages.
func (r *TourPackagesRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Seed inserts the packages in order. It is meant for an empty collection;
// the unique name index rejects duplicates.
func (r *TourPackagesRepository) Seed(ctx context.Context, packages []model.TourPackage, createdBy string) error {
	if len(packages) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, len(packages))
	for i, p := range packages {
		docs[i] = TourPackageDocument{
			ID:        primitive.NewObjectID(),
			Position:  i,
			Package:   p,
			CreatedAt: now,
			CreatedBy: createdBy,
		}
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
