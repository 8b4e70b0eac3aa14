package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

const collectionMobiles = "mobiles"

// mobileDocument stores the price as Decimal128 so no precision is lost.
type mobileDocument struct {
	ID          int64                `bson:"_id"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
}

func newMobileDocument(m *domain.Mobile) (mobileDocument, error) {
	price, err := primitive.ParseDecimal128(m.Price.String())
	if err != nil {
		return mobileDocument{}, fmt.Errorf("encode price %s: %w", m.Price, err)
	}
	return mobileDocument{ID: m.ID, Name: m.Name, Description: m.Description, Price: price}, nil
}

func (d mobileDocument) toDomain() (domain.Mobile, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return domain.Mobile{}, fmt.Errorf("decode price of mobile %d: %w", d.ID, err)
	}
	return domain.Mobile{ID: d.ID, Name: d.Name, Description: d.Description, Price: price}, nil
}

type MobileRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewMobileRepository(db *mongo.Database) *MobileRepository {
	return &MobileRepository{col: db.Collection(collectionMobiles), seq: newSequence(db, collectionMobiles)}
}

func (r *MobileRepository) Search(ctx context.Context, q ports.SearchQuery) ([]domain.Mobile, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := keywordFilter(bson.M{}, "name", q.Keyword)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cur, err := r.col.Find(ctx, filter, pageOptions(q))
	if err != nil {
		return nil, 0, err
	}
	var docs []mobileDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	out := make([]domain.Mobile, 0, len(docs))
	for _, d := range docs {
		m, err := d.toDomain()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, nil
}

func (r *MobileRepository) FindByID(ctx context.Context, id int64) (*domain.Mobile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d mobileDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMobileNotFound
		}
		return nil, err
	}
	m, err := d.toDomain()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MobileRepository) Create(ctx context.Context, m *domain.Mobile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx)
	if err != nil {
		return err
	}
	doc, err := newMobileDocument(m)
	if err != nil {
		return err
	}
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return err
	}
	m.ID = id
	return nil
}

func (r *MobileRepository) Update(ctx context.Context, m *domain.Mobile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := newMobileDocument(m)
	if err != nil {
		return err
	}
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMobileNotFound
	}
	return nil
}

func (r *MobileRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrMobileNotFound
	}
	return nil
}

func (r *MobileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}})
	return err
}
