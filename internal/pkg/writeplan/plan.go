package writeplan

import "cloud.google.com/go/firestore"

// OpKind distinguishes the write operations a plan can carry.
type OpKind int

const (
	OpCreate OpKind = iota
	OpSet
	OpUpdate
	OpDelete
)

// Op is a single buffered document write. Repositories build Ops from
// aggregates but never apply them; the Adapter commits a whole plan in one
// Firestore transaction.
type Op struct {
	Kind       OpKind
	Collection string
	DocID      string
	Data       map[string]interface{} // OpCreate / OpSet
	Merge      bool                   // OpSet: merge fields instead of replacing the document
	Updates    []firestore.Update     // OpUpdate
}

// Plan is an ordered collection of document writes applied atomically.
type Plan struct {
	ops []*Op
}

func NewPlan() *Plan {
	return &Plan{ops: make([]*Op, 0)}
}

// Add appends an op to the plan. Nil ops are ignored so repositories can
// return nil for no-op mutations.
func (p *Plan) Add(op *Op) {
	if op == nil {
		return
	}
	p.ops = append(p.ops, op)
}

func (p *Plan) IsEmpty() bool {
	return len(p.ops) == 0
}

func (p *Plan) Ops() []*Op {
	return p.ops
}
