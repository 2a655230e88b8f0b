package store

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/errors"
)

const templateCollection = "templates"

// templateDoc wraps the JSON-encoded state. The state keeps its canonical
// JSON shape instead of growing a parallel set of bson tags.
type templateDoc struct {
	ID        string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoTemplates is a mongo-backed template repository.
type MongoTemplates struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoConfig holds connection settings for the template repository.
type MongoConfig struct {
	URI      string
	Database string
}

// NewMongoTemplates connects to mongo and verifies the connection.
func NewMongoTemplates(ctx context.Context, cfg MongoConfig) (*MongoTemplates, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongo")
	}
	db := cfg.Database
	if db == "" {
		db = "deckforge"
	}
	return &MongoTemplates{
		client:     client,
		collection: client.Database(db).Collection(templateCollection),
	}, nil
}

// Put creates or replaces a template document.
func (m *MongoTemplates) Put(ctx context.Context, s brand.State) error {
	if s.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "template id is required")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode template %s", s.ID)
	}
	doc := templateDoc{ID: s.ID, Data: data, UpdatedAt: time.Now().UTC()}
	_, err = m.collection.ReplaceOne(ctx,
		bson.M{"_id": s.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "store template %s", s.ID)
	}
	return nil
}

// Get returns the template or a NOT_FOUND error.
func (m *MongoTemplates) Get(ctx context.Context, id string) (brand.State, error) {
	var doc templateDoc
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return brand.State{}, errors.New(errors.ErrCodeNotFound, "template %s not found", id)
	}
	if err != nil {
		return brand.State{}, errors.Wrap(errors.ErrCodeInternal, err, "load template %s", id)
	}
	return decodeTemplate(doc)
}

// List returns all stored templates.
func (m *MongoTemplates) List(ctx context.Context) ([]brand.State, error) {
	cursor, err := m.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list templates")
	}
	defer cursor.Close(ctx)

	var out []brand.State
	for cursor.Next(ctx) {
		var doc templateDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode template document")
		}
		s, err := decodeTemplate(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "iterate templates")
	}
	return out, nil
}

// Delete removes a template. Deleting an absent ID is not an error.
func (m *MongoTemplates) Delete(ctx context.Context, id string) error {
	if _, err := m.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete template %s", id)
	}
	return nil
}

// Close disconnects from mongo.
func (m *MongoTemplates) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

func decodeTemplate(doc templateDoc) (brand.State, error) {
	var s brand.State
	if err := json.Unmarshal(doc.Data, &s); err != nil {
		return brand.State{}, errors.Wrap(errors.ErrCodeInternal, err, "decode template %s", doc.ID)
	}
	return s, nil
}

var _ TemplateRepository = (*MongoTemplates)(nil)
