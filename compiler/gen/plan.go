package gen

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is an encoding of exported plans.
type Format string

// Supported plan formats.
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat parses a format name. "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatMsgpack:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("daogen: unknown plan format %q", s)
	}
}

// Plan is the exported table and statements of one entity.
type Plan struct {
	Entity     string      `json:"entity" yaml:"entity"`
	Table      *Table      `json:"table" yaml:"table"`
	Statements *Statements `json:"statements" yaml:"statements"`
}

// PlanSet is the serialisable outcome of a generation pass. Plans are in
// table creation order.
type PlanSet struct {
	Pass    string  `json:"pass" yaml:"pass"`
	Package string  `json:"package,omitempty" yaml:"package,omitempty"`
	Plans   []*Plan `json:"plans" yaml:"plans"`
}

// Plans exports the mapped entities of the pass.
func (g *Graph) Plans() *PlanSet {
	ps := &PlanSet{Pass: g.Pass.String(), Package: g.Output().Package}
	for _, r := range g.CreateOrder() {
		ps.Plans = append(ps.Plans, &Plan{
			Entity:     r.Entity,
			Table:      r.Table,
			Statements: r.Statements,
		})
	}
	return ps
}

// Plan returns the plan of the given entity.
func (ps *PlanSet) Plan(entity string) (*Plan, bool) {
	for _, p := range ps.Plans {
		if p.Entity == entity {
			return p, true
		}
	}
	return nil, false
}

// Encode writes the plan set to w in the given format.
func (ps *PlanSet) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ps)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ps); err != nil {
			return err
		}
		return enc.Close()
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(ps)
	default:
		return fmt.Errorf("daogen: unknown plan format %q", f)
	}
}

// ReadPlanSet decodes a plan set written by Encode.
func ReadPlanSet(r io.Reader, f Format) (*PlanSet, error) {
	ps := &PlanSet{}
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(ps)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(ps)
	case FormatMsgpack:
		dec := msgpack.NewDecoder(r)
		dec.SetCustomStructTag("json")
		err = dec.Decode(ps)
	default:
		return nil, fmt.Errorf("daogen: unknown plan format %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("daogen: decode %s plan: %w", f, err)
	}
	for i, p := range ps.Plans {
		if p == nil || p.Table == nil || p.Statements == nil {
			return nil, fmt.Errorf("daogen: decode %s plan: incomplete plan at index %d", f, i)
		}
		p.Table.link()
		if p.Table.PrimaryKey == nil {
			return nil, &MissingPrimaryKeyError{Entity: p.Entity}
		}
	}
	return ps, nil
}
