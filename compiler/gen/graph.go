package gen

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/daogen/schema"
)

// Result is the outcome of mapping one entity. Exactly one of Table and
// Err is set.
type Result struct {
	Entity     string
	Descriptor *schema.Descriptor
	Table      *Table
	Statements *Statements
	Err        error

	graph *Graph
}

// OK reports whether the entity was mapped.
func (r *Result) OK() bool {
	return r.Err == nil && r.Table != nil
}

// Graph returns the generation pass the result belongs to.
func (r *Result) Graph() *Graph {
	return r.graph
}

// Name returns the Go type name of the entity.
func (r *Result) Name() string {
	return pascal(r.Entity)
}

// Receiver returns the receiver name of the entity type.
func (r *Result) Receiver() string {
	return receiver(r.Name())
}

// Graph is one generation pass over a set of entity descriptors.
type Graph struct {
	*Config
	// Pass identifies the generation pass in logs and exported plans.
	Pass uuid.UUID
	// Results holds one result per descriptor, in input order.
	Results []*Result

	once  sync.Once
	order []*Result
}

// NewGraph maps every descriptor independently and in parallel. Mapping
// failures are recorded per entity and never abort the pass; use Err to
// inspect them.
func NewGraph(c *Config, descs ...*schema.Descriptor) *Graph {
	if c == nil {
		c = &Config{}
	}
	g := &Graph{
		Config:  c,
		Pass:    uuid.New(),
		Results: make([]*Result, len(descs)),
	}
	log := c.logger().WithField("pass", g.Pass.String())

	var eg errgroup.Group
	eg.SetLimit(c.workers())
	for i, d := range descs {
		eg.Go(func() error {
			g.Results[i] = g.mapResult(d)
			return nil
		})
	}
	_ = eg.Wait()

	var (
		tables = make(map[string]string, len(g.Results))
		types  = make(map[string]string, len(g.Results))
		files  = make(map[string]string, len(g.Results))
	)
	for _, r := range g.Results {
		if r.OK() {
			if err := g.claim(r, tables, types, files); err != nil {
				r.Err = err
				r.Table, r.Statements = nil, nil
			}
		}
		entry := log.WithField("entity", r.Entity)
		if r.Err != nil {
			entry.WithError(r.Err).Warn("entity skipped")
			continue
		}
		entry.WithFields(logrus.Fields{
			"table":   r.Table.Name,
			"columns": len(r.Table.Columns),
		}).Debug("entity mapped")
	}
	return g
}

// sharedNames are declared once per generated package.
var sharedNames = names("ExecQuerier", "ErrNotFound", "CreateTables")

// claim records the table, type and file names of a mapped entity. Names
// already claimed by an earlier entity of the pass fail the later one.
func (g *Graph) claim(r *Result, tables, types, files map[string]string) error {
	name, file := r.Name(), EntityFile(r)
	if _, ok := sharedNames[name]; ok {
		return NewSchemaError(r.Entity, "", "type name "+name+" is reserved", nil)
	}
	for _, c := range []struct {
		seen      map[string]string
		key, what string
	}{
		{tables, r.Table.Name, "table"},
		{types, name, "type"},
		{files, file, "file"},
	} {
		if prev, ok := c.seen[c.key]; ok {
			return NewSchemaError(r.Entity, "", c.what+" "+c.key+" already declared by entity "+prev, nil)
		}
	}
	tables[r.Table.Name] = r.Entity
	types[name] = r.Entity
	files[file] = r.Entity
	return nil
}

func (g *Graph) mapResult(d *schema.Descriptor) *Result {
	r := &Result{Descriptor: d, graph: g}
	if d != nil {
		r.Entity = d.Name
	}
	t, err := MapEntity(d)
	if err != nil {
		r.Err = err
		return r
	}
	r.Table = t
	r.Statements = NewStatements(t)
	return r
}

// Nodes returns the mapped entities in input order.
func (g *Graph) Nodes() []*Result {
	nodes := make([]*Result, 0, len(g.Results))
	for _, r := range g.Results {
		if r.OK() {
			nodes = append(nodes, r)
		}
	}
	return nodes
}

// Failed returns the entities that failed to map, in input order.
func (g *Graph) Failed() []*Result {
	var failed []*Result
	for _, r := range g.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Err returns an *AggregateError with the mapping failures of the pass,
// or nil if every entity was mapped.
func (g *Graph) Err() error {
	var errs []error
	for _, r := range g.Failed() {
		errs = append(errs, r.Err)
	}
	return NewAggregateError(errs...)
}

// Table returns the mapped entity that owns the given table.
func (g *Graph) Table(name string) (*Result, bool) {
	for _, r := range g.Nodes() {
		if r.Table.Name == name {
			return r, true
		}
	}
	return nil, false
}

// CreateOrder returns the mapped entities ordered so that every table comes
// after the tables its foreign keys reference. References outside the pass
// and self references are ignored. A reference cycle is broken at the
// entity reached first.
func (g *Graph) CreateOrder() []*Result {
	g.once.Do(func() {
		nodes := g.Nodes()
		var (
			visit func(*Result)
			state = make(map[*Result]int, len(nodes))
		)
		visit = func(r *Result) {
			if state[r] != 0 {
				return
			}
			state[r] = 1
			for _, fk := range r.Table.ForeignKeys() {
				if ref, ok := g.Table(fk.RefTable); ok && ref != r {
					visit(ref)
				}
			}
			state[r] = 2
			g.order = append(g.order, r)
		}
		for _, r := range nodes {
			visit(r)
		}
	})
	return g.order
}
