// Package inmem keeps collections in process memory. It backs the test
// suites and STORAGE=memory runs; documents are stored BSON-encoded so
// reads never alias the caller's slices and filters see the same field
// names as MongoDB.
package inmem

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"

	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
)

type Table[T store.Document] struct {
	name    string
	mu      sync.RWMutex
	rows    map[string][]byte
	order   []string
	uniques [][]string
}

var _ store.Collection[models.User] = (*Table[models.User])(nil)

// NewTable creates an empty table. Each unique entry lists fields that
// together must be unique, like a compound unique index.
func NewTable[T store.Document](name string, uniques ...[]string) *Table[T] {
	return &Table[T]{name: name, rows: map[string][]byte{}, uniques: uniques}
}

type row struct {
	raw []byte
	m   bson.M
}

func (t *Table[T]) scan(q store.Query) ([]row, error) {
	out := make([]row, 0)
	for _, id := range t.order {
		raw := t.rows[id]
		var m bson.M
		if err := bson.Unmarshal(raw, &m); err != nil {
			return nil, errors.Wrapf(err, "%s: decode %s", t.name, id)
		}
		if matches(m, q) {
			out = append(out, row{raw: raw, m: m})
		}
	}
	if q.Sort != "" {
		sort.SliceStable(out, func(i, j int) bool {
			c, _ := compare(out[i].m[q.Sort], out[j].m[q.Sort])
			if q.Desc {
				return c > 0
			}
			return c < 0
		})
	}
	if q.Max > 0 && int64(len(out)) > q.Max {
		out = out[:q.Max]
	}
	return out, nil
}

func (t *Table[T]) decode(raw []byte) (T, error) {
	var doc T
	err := bson.Unmarshal(raw, &doc)
	return doc, errors.Wrapf(err, "%s: decode", t.name)
}

func (t *Table[T]) Get(ctx context.Context, id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	raw, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, store.ErrNotFound
	}
	return t.decode(raw)
}

func (t *Table[T]) FindOne(ctx context.Context, q store.Query) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rows, err := t.scan(q.Limit(1))
	if err != nil || len(rows) == 0 {
		var zero T
		if err == nil {
			err = store.ErrNotFound
		}
		return zero, err
	}
	return t.decode(rows[0].raw)
}

func (t *Table[T]) Find(ctx context.Context, q store.Query) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rows, err := t.scan(q)
	if err != nil {
		return nil, err
	}
	docs := make([]T, 0, len(rows))
	for _, r := range rows {
		doc, err := t.decode(r.raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (t *Table[T]) Count(ctx context.Context, q store.Query) (int64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rows, err := t.scan(q)
	return int64(len(rows)), err
}

func (t *Table[T]) Insert(ctx context.Context, doc T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[doc.DocID()]; ok {
		return store.ErrDuplicate
	}
	return t.put(doc)
}

func (t *Table[T]) Save(ctx context.Context, doc T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.put(doc)
}

func (t *Table[T]) put(doc T) error {
	id := doc.DocID()
	raw, err := bson.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "%s: encode %s", t.name, id)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return errors.Wrapf(err, "%s: encode %s", t.name, id)
	}
	if err := t.checkUnique(id, m); err != nil {
		return err
	}
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = raw
	return nil
}

func (t *Table[T]) checkUnique(id string, m bson.M) error {
	for _, fields := range t.uniques {
		q := store.Q().Ne("_id", id)
		for _, f := range fields {
			q = q.Eq(f, m[f])
		}
		rows, err := t.scan(q.Limit(1))
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			return store.ErrDuplicate
		}
	}
	return nil
}

func (t *Table[T]) Delete(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return store.ErrNotFound
	}
	t.remove(id)
	return nil
}

func (t *Table[T]) DeleteMany(ctx context.Context, q store.Query) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rows, err := t.scan(q)
	if err != nil {
		return 0, err
	}
	for _, r := range rows {
		t.remove(r.m["_id"].(string))
	}
	return int64(len(rows)), nil
}

func (t *Table[T]) remove(id string) {
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

func matches(m bson.M, q store.Query) bool {
	for _, c := range q.Conds {
		if !match(m, c) {
			return false
		}
	}
	for _, group := range q.AnyOf {
		ok := false
		for _, c := range group {
			if match(m, c) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func match(m bson.M, c store.Cond) bool {
	v := m[c.Field]
	switch c.Op {
	case store.OpEq:
		return matchEq(v, c.Value)
	case store.OpNe:
		return !matchEq(v, c.Value)
	case store.OpIn:
		for _, want := range c.Value.([]string) {
			if matchEq(v, want) {
				return true
			}
		}
		return false
	case store.OpNin:
		for _, want := range c.Value.([]string) {
			if matchEq(v, want) {
				return false
			}
		}
		return true
	case store.OpGte, store.OpLte, store.OpLt:
		if v == nil {
			return false
		}
		n, ok := compare(v, c.Value)
		if !ok {
			return false
		}
		switch c.Op {
		case store.OpGte:
			return n >= 0
		case store.OpLte:
			return n <= 0
		default:
			return n < 0
		}
	}
	return false
}

func matchEq(v, want any) bool {
	if arr, ok := v.(bson.A); ok {
		for _, el := range arr {
			if reflect.DeepEqual(norm(el), norm(want)) {
				return true
			}
		}
		return false
	}
	return reflect.DeepEqual(norm(v), norm(want))
}

func norm(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case time.Time:
		return float64(x.UnixMilli())
	case *time.Time:
		if x == nil {
			return nil
		}
		return float64(x.UnixMilli())
	case bson.DateTime:
		return float64(x)
	}
	return v
}

func compare(a, b any) (int, bool) {
	a, b = norm(a), norm(b)
	if b == nil && a != nil {
		return 1, true
	}
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(x, y), true
	case nil:
		if b == nil {
			return 0, true
		}
		return -1, true
	}
	return 0, false
}
