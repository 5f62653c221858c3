package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chinmayjoshi03/CivicConnect/models"
)

type DepartmentRepository struct {
	col *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{col: db.Collection("departments")}
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	var dept models.Department
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&dept); err != nil {
		return nil, err
	}
	return &dept, nil
}
