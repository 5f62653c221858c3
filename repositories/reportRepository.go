package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chinmayjoshi03/CivicConnect/models"
)

// ListFilter narrows Find results. A nil User means no owner restriction;
// empty Status/Category (or the literal "all") match everything.
type ListFilter struct {
	User     *primitive.ObjectID
	Status   string
	Category string
}

type ReportRepository struct {
	col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{col: db.Collection("reports")}
}

func (r *ReportRepository) Insert(ctx context.Context, report *models.Report) error {
	_, err := r.col.InsertOne(ctx, report)
	return err
}

func (r *ReportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var report models.Report
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Find returns one page of reports matching f, newest first, along with the
// total match count for pagination.
func (r *ReportRepository) Find(ctx context.Context, f ListFilter, page, limit int) ([]models.Report, int64, error) {
	filter := buildFilter(f)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

// AppendStatus pushes one history entry and moves the current status in a
// single UpdateOne, so concurrent appends interleave without losing entries.
func (r *ReportRepository) AppendStatus(ctx context.Context, id primitive.ObjectID, entry models.StatusEntry) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"statusHistory": entry},
		"$set":  bson.M{"status": entry.Status, "updatedAt": entry.Timestamp},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AppendComment pushes one comment in a single UpdateOne.
func (r *ReportRepository) AppendComment(ctx context.Context, id primitive.ObjectID, comment models.Comment) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updatedAt": comment.Timestamp},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func buildFilter(f ListFilter) bson.M {
	filter := bson.M{}

	if f.User != nil {
		filter["user"] = *f.User
	}
	if f.Status != "" && f.Status != "all" {
		filter["status"] = f.Status
	}
	if f.Category != "" && f.Category != "all" {
		filter["category"] = f.Category
	}

	return filter
}
