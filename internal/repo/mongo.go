package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

// casAttempts bounds the version-check retry loop. The retries only
// absorb version races: the mutate closure re-validates state on every
// attempt, so a losing writer still fails with the right kind.
const casAttempts = 4

var collectionIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "status", Value: 1}, {Key: "scheduled_at", Value: 1}},
		Options: options.Index().SetName("upcoming"),
	},
	{
		Keys:    bson.D{{Key: "interviewer_id", Value: 1}},
		Options: options.Index().SetName("by_interviewer"),
	},
}

func newMongo(ctx context.Context, cfg MongoConfig, log logger.Logger) (*mongoRepo, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)

	_, err = coll.Indexes().CreateMany(ctx, collectionIndexes)
	if err != nil {
		return nil, errors.WrapFail(err, "create indexes")
	}

	return &mongoRepo{
		coll: coll,
		log:  log.With("mongo_repo"),
	}, nil
}

type mongoRepo struct {
	coll *mongo.Collection
	log  logger.Logger
}

func (m *mongoRepo) Insert(ctx context.Context, i scheduling.Interview) (string, error) {
	if i.ID == "" {
		i.ID = primitive.NewObjectID().Hex()
	}
	i.Version = 1

	_, err := m.coll.InsertOne(ctx, i)
	if err != nil {
		return "", errors.WrapFail(err, "insert interview")
	}

	return i.ID, nil
}

func (m *mongoRepo) Get(ctx context.Context, id string) (*scheduling.Interview, error) {
	r := m.coll.FindOne(ctx, bson.M{"_id": id})

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find interview by id")
	}

	var i scheduling.Interview
	err = r.Decode(&i)
	if err != nil {
		return nil, errors.WrapFail(err, "decode interview")
	}

	return &i, nil
}

func (m *mongoRepo) Update(ctx context.Context, id string, mutate func(*scheduling.Interview) error) (*scheduling.Interview, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		cur, err := m.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if cur == nil {
			return nil, errors.Wrap(scheduling.ErrNotFound, "interview "+id)
		}

		i := *cur
		if err := mutate(&i); err != nil {
			return nil, err
		}
		i.Version = cur.Version + 1

		res, err := m.coll.ReplaceOne(ctx, bson.M{"_id": id, "version": cur.Version}, i)
		if err != nil {
			return nil, errors.WrapFail(err, "replace interview")
		}
		if res.ModifiedCount == 1 {
			return &i, nil
		}

		// Version moved under us, reload and revalidate.
		m.log.Debugf("version conflict on interview %s, attempt %d", id, attempt+1)
	}

	return nil, errors.Failf("update interview %s after %d attempts", id, casAttempts)
}

func (m *mongoRepo) Select(ctx context.Context, match func(scheduling.Interview) bool) ([]scheduling.Interview, error) {
	cur, err := m.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, errors.WrapFail(err, "find interviews")
	}

	defer func() {
		err := cur.Close(ctx)
		if err != nil {
			m.log.Warn(errors.WrapFail(err, "close cursor"))
		}
	}()

	var (
		out  []scheduling.Interview
		errs []error
	)

	for cur.Next(ctx) {
		var i scheduling.Interview
		err := cur.Decode(&i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if match == nil || match(i) {
			out = append(out, i)
		}
	}

	if cur.Err() != nil {
		return nil, errors.WrapFail(cur.Err(), "iterate interviews")
	}

	if len(errs) != 0 {
		m.log.Error(errors.WrapFail(errors.Collapse(errs), "decode some interviews"))
	}

	return out, nil
}

func (m *mongoRepo) Close(ctx context.Context) error {
	err := m.coll.Database().Client().Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}
