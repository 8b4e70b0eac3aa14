package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

// keywordFilter adds a case-insensitive substring match on field.
func keywordFilter(filter bson.M, field, keyword string) bson.M {
	if keyword != "" {
		filter[field] = primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	}
	return filter
}

func pageOptions(q ports.SearchQuery) *options.FindOptions {
	dir := 1
	if q.Descending() {
		dir = -1
	}
	return options.Find().
		SetSort(bson.D{{Key: "_id", Value: dir}}).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Limit))
}
