package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilter(t *testing.T) {
	owner := primitive.NewObjectID()

	cases := []struct {
		name string
		in   ListFilter
		want bson.M
	}{
		{"empty matches everything", ListFilter{}, bson.M{}},
		{"all sentinel ignored", ListFilter{Status: "all", Category: "all"}, bson.M{}},
		{
			"owner restriction",
			ListFilter{User: &owner},
			bson.M{"user": owner},
		},
		{
			"status and category exact",
			ListFilter{Status: "Submitted", Category: "Roads & Infrastructure"},
			bson.M{"status": "Submitted", "category": "Roads & Infrastructure"},
		},
		{
			"combined",
			ListFilter{User: &owner, Status: "Resolved"},
			bson.M{"user": owner, "status": "Resolved"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildFilter(tc.in))
		})
	}
}
