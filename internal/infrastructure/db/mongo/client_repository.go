package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

const collectionClients = "clients"

type clientDocument struct {
	ID      int64  `bson:"_id"`
	Name    string `bson:"name"`
	Address string `bson:"address"`
}

func (d clientDocument) toDomain() domain.Client {
	return domain.Client{ID: d.ID, Name: d.Name, Address: d.Address}
}

type ClientRepository struct {
	col   *mongo.Collection
	users *mongo.Collection
	seq   *sequence
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{
		col:   db.Collection(collectionClients),
		users: db.Collection(collectionUsers),
		seq:   newSequence(db, collectionClients),
	}
}

func (r *ClientRepository) Search(ctx context.Context, q ports.SearchQuery) ([]domain.Client, int64, error) {
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
	var docs []clientDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	out := make([]domain.Client, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, total, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d clientDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	c := d.toDomain()
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, clientDocument{ID: id, Name: c.Name, Address: c.Address}); err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, c.ID, bson.M{"$set": bson.M{"name": c.Name, "address": c.Address}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// Delete refuses to remove a client still referenced by users.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.users.CountDocuments(ctx, bson.M{"client_id": id})
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrClientHasUsers
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}})
	return err
}
