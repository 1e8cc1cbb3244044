package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
)

// Collection adapts a mongo collection to store.Collection.
type Collection[T store.Document] struct {
	col *mongo.Collection
}

func NewCollection[T store.Document](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{col: db.Collection(name)}
}

var _ store.Collection[models.User] = (*Collection[models.User])(nil)

func (r *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	return r.FindOne(ctx, store.ByID(id))
}

func (r *Collection[T]) FindOne(ctx context.Context, q store.Query) (T, error) {
	var doc T
	opts := options.FindOne()
	if q.Sort != "" {
		opts.SetSort(sortOf(q))
	}
	err := r.col.FindOne(ctx, filterOf(q), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, store.ErrNotFound
	}
	if err != nil {
		return doc, errors.Wrapf(err, "%s.FindOne", r.col.Name())
	}
	return doc, nil
}

func (r *Collection[T]) Find(ctx context.Context, q store.Query) ([]T, error) {
	opts := options.Find()
	if q.Sort != "" {
		opts.SetSort(sortOf(q))
	}
	if q.Max > 0 {
		opts.SetLimit(q.Max)
	}

	cur, err := r.col.Find(ctx, filterOf(q), opts)
	if err != nil {
		return nil, errors.Wrapf(err, "%s.Find", r.col.Name())
	}
	defer cur.Close(ctx)

	docs := make([]T, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "%s.Find decode", r.col.Name())
	}
	return docs, nil
}

func (r *Collection[T]) Count(ctx context.Context, q store.Query) (int64, error) {
	n, err := r.col.CountDocuments(ctx, filterOf(q))
	if err != nil {
		return 0, errors.Wrapf(err, "%s.Count", r.col.Name())
	}
	return n, nil
}

func (r *Collection[T]) Insert(ctx context.Context, doc T) error {
	_, err := r.col.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	return errors.Wrapf(err, "%s.Insert", r.col.Name())
}

func (r *Collection[T]) Save(ctx context.Context, doc T) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.DocID()}, doc, options.Replace().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	return errors.Wrapf(err, "%s.Save", r.col.Name())
}

func (r *Collection[T]) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "%s.Delete", r.col.Name())
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *Collection[T]) DeleteMany(ctx context.Context, q store.Query) (int64, error) {
	res, err := r.col.DeleteMany(ctx, filterOf(q))
	if err != nil {
		return 0, errors.Wrapf(err, "%s.DeleteMany", r.col.Name())
	}
	return res.DeletedCount, nil
}

func filterOf(q store.Query) bson.M {
	and := bson.A{}
	for _, c := range q.Conds {
		and = append(and, condOf(c))
	}
	for _, group := range q.AnyOf {
		or := bson.A{}
		for _, c := range group {
			or = append(or, condOf(c))
		}
		and = append(and, bson.M{"$or": or})
	}
	if len(and) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": and}
}

func condOf(c store.Cond) bson.M {
	if c.Op == store.OpEq {
		return bson.M{c.Field: c.Value}
	}
	return bson.M{c.Field: bson.M{string(c.Op): c.Value}}
}

func sortOf(q store.Query) bson.D {
	dir := 1
	if q.Desc {
		dir = -1
	}
	return bson.D{{Key: q.Sort, Value: dir}}
}
