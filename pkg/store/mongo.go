package store

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/scene"
)

// Defaults for [MongoOptions].
const (
	DefaultMongoDatabase   = "shapeboard"
	DefaultMongoCollection = "scenes"
)

// MongoOptions configures [NewMongoStore].
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// MongoStore persists records in a MongoDB collection.
type MongoStore struct {
	client  *mongo.Client
	coll    *mongo.Collection
	timeout time.Duration
	now     func() time.Time
}

// sceneDocument is the stored form of a record. The scene is kept as a
// document converted from its JSON encoding so that shape kinds round-trip
// through their text form.
type sceneDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Shapes    int       `bson:"shape_count"`
	CreatedAt time.Time `bson:"created_at"`
	Scene     bson.D    `bson:"scene"`
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.URI == "" {
		return nil, errors.New(errors.ErrCodeInvalidOptions, "mongo URI is required")
	}
	if opts.Database == "" {
		opts.Database = DefaultMongoDatabase
	}
	if opts.Collection == "" {
		opts.Collection = DefaultMongoCollection
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI).SetConnectTimeout(opts.Timeout))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect to mongo")
	}
	pingCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "ping mongo")
	}

	return &MongoStore{
		client:  client,
		coll:    client.Database(opts.Database).Collection(opts.Collection),
		timeout: opts.Timeout,
		now:     time.Now,
	}, nil
}

func (s *MongoStore) Save(ctx context.Context, sc scene.Scene) (Record, error) {
	rec, err := newRecord(sc, s.now())
	if err != nil {
		return Record{}, err
	}
	doc, err := toDocument(rec)
	if err != nil {
		return Record{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStorage, err, "insert scene")
	}
	// Mongo stores milliseconds.
	rec.CreatedAt = rec.CreatedAt.Truncate(time.Millisecond)
	return rec, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (Record, error) {
	if err := errors.ValidateSceneID(id); err != nil {
		return Record{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc sceneDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return Record{}, notFound(id)
	}
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStorage, err, "find scene %s", id)
	}
	return fromDocument(doc)
}

func (s *MongoStore) List(ctx context.Context, limit int) ([]Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(listLimit(limit))).
		SetProjection(bson.M{"scene": 0})
	cur, err := s.coll.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list scenes")
	}
	var docs []sceneDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "decode scenes")
	}

	out := make([]Summary, 0, len(docs))
	for _, d := range docs {
		out = append(out, Summary{ID: d.ID, Name: d.Name, ShapeCount: d.Shapes, CreatedAt: d.CreatedAt.UTC()})
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateSceneID(id); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete scene %s", id)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// toDocument converts a record to its stored form.
func toDocument(rec Record) (sceneDocument, error) {
	data, err := json.Marshal(rec.Scene)
	if err != nil {
		return sceneDocument{}, errors.Wrap(errors.ErrCodeInternal, err, "encode scene")
	}
	var d bson.D
	if err := bson.UnmarshalExtJSON(data, false, &d); err != nil {
		return sceneDocument{}, errors.Wrap(errors.ErrCodeInternal, err, "convert scene")
	}
	return sceneDocument{
		ID:        rec.ID,
		Name:      rec.Name,
		Shapes:    len(rec.Scene.Shapes),
		CreatedAt: rec.CreatedAt,
		Scene:     d,
	}, nil
}

// fromDocument converts a stored document back to a record.
func fromDocument(doc sceneDocument) (Record, error) {
	data, err := bson.MarshalExtJSON(doc.Scene, false, false)
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStorage, err, "convert scene %s", doc.ID)
	}
	sc, err := scene.ReadJSON(bytes.NewReader(data))
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStorage, err, "decode scene %s", doc.ID)
	}
	return Record{ID: doc.ID, Name: doc.Name, Scene: sc, CreatedAt: doc.CreatedAt.UTC()}, nil
}

var _ Store = (*MongoStore)(nil)
