package store

type Op string

const (
	OpEq  Op = "$eq"
	OpNe  Op = "$ne"
	OpIn  Op = "$in"
	OpNin Op = "$nin"
	OpGte Op = "$gte"
	OpLte Op = "$lte"
	OpLt  Op = "$lt"
)

// Cond compares one top-level field. OpEq against an array field matches
// when any element is equal, as MongoDB does.
type Cond struct {
	Field string
	Op    Op
	Value any
}

// Query is an AND of conditions with optional ordering and limit.
// Builder methods return a copy, so a base query can be reused.
type Query struct {
	Conds []Cond
	Sort  string
	Desc  bool
	Max   int64
	AnyOf [][]Cond
}

func Q() Query { return Query{} }

// ByID matches the primary key.
func ByID(id string) Query { return Q().Eq("_id", id) }

func (q Query) with(c Cond) Query {
	conds := make([]Cond, len(q.Conds), len(q.Conds)+1)
	copy(conds, q.Conds)
	q.Conds = append(conds, c)
	return q
}

func (q Query) Eq(field string, v any) Query  { return q.with(Cond{field, OpEq, v}) }
func (q Query) Ne(field string, v any) Query  { return q.with(Cond{field, OpNe, v}) }
func (q Query) Gte(field string, v any) Query { return q.with(Cond{field, OpGte, v}) }
func (q Query) Lte(field string, v any) Query { return q.with(Cond{field, OpLte, v}) }
func (q Query) Lt(field string, v any) Query  { return q.with(Cond{field, OpLt, v}) }

// In and Nin always carry a non-nil list; MongoDB rejects a null operand.
func (q Query) In(field string, vs []string) Query {
	return q.with(Cond{field, OpIn, append(make([]string, 0, len(vs)), vs...)})
}

func (q Query) Nin(field string, vs []string) Query {
	return q.with(Cond{field, OpNin, append(make([]string, 0, len(vs)), vs...)})
}

// Or adds a disjunction: the document must satisfy at least one of the conds.
func (q Query) Or(conds ...Cond) Query {
	anyOf := make([][]Cond, len(q.AnyOf), len(q.AnyOf)+1)
	copy(anyOf, q.AnyOf)
	q.AnyOf = append(anyOf, append([]Cond(nil), conds...))
	return q
}

func (q Query) SortBy(field string, desc bool) Query {
	q.Sort, q.Desc = field, desc
	return q
}

func (q Query) Limit(n int64) Query {
	q.Max = n
	return q
}

// EqCond is a convenience for building Or arguments.
func EqCond(field string, v any) Cond { return Cond{field, OpEq, v} }
