package load

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/daogen/dialect/sqltype"
	"github.com/syssam/daogen/schema"
	"github.com/syssam/daogen/schema/field"
)

// Format is the encoding of a descriptor file.
type Format string

// Descriptor file formats.
const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// File is the layout of a declarative descriptor file.
type File struct {
	Entities []*EntityDecl `json:"entities" yaml:"entities"`
}

// EntityDecl declares one entity.
type EntityDecl struct {
	Name   string       `json:"name" yaml:"name"`
	Table  string       `json:"table,omitempty" yaml:"table,omitempty"`
	Fields []*FieldDecl `json:"fields" yaml:"fields"`
}

// FieldDecl declares one field.
type FieldDecl struct {
	Name       string         `json:"name" yaml:"name"`
	Column     string         `json:"column,omitempty" yaml:"column,omitempty"`
	Type       string         `json:"type" yaml:"type"`
	SQLType    string         `json:"sql_type,omitempty" yaml:"sql_type,omitempty"`
	Size       int64          `json:"size,omitempty" yaml:"size,omitempty"`
	PrimaryKey bool           `json:"pk,omitempty" yaml:"pk,omitempty"`
	Unique     bool           `json:"unique,omitempty" yaml:"unique,omitempty"`
	References *ReferenceDecl `json:"references,omitempty" yaml:"references,omitempty"`
	Comment    string         `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// ReferenceDecl declares a foreign key.
type ReferenceDecl struct {
	Table    string `json:"table" yaml:"table"`
	Column   string `json:"column" yaml:"column"`
	OnDelete string `json:"on_delete,omitempty" yaml:"on_delete,omitempty"`
	OnUpdate string `json:"on_update,omitempty" yaml:"on_update,omitempty"`
}

// FormatOf returns the format of a file by its extension. Files that are
// not JSON are read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// ReadFile reads the descriptors declared in the file at path.
func ReadFile(path string) ([]*schema.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer f.Close()
	descs, err := Decode(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return descs, nil
}

// Decode reads the descriptors declared in r.
func Decode(r io.Reader, format Format) ([]*schema.Descriptor, error) {
	var (
		file File
		err  error
	)
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&file)
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	default:
		return nil, fmt.Errorf("load: unknown descriptor format %q", format)
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("load: decode %s: %w", format, err)
	}
	return file.Descriptors()
}

// Descriptors converts the declarations into schema descriptors.
func (f *File) Descriptors() ([]*schema.Descriptor, error) {
	descs := make([]*schema.Descriptor, 0, len(f.Entities))
	for i, e := range f.Entities {
		if e == nil || e.Name == "" {
			return nil, fmt.Errorf("load: entity at index %d has no name", i)
		}
		d, err := e.descriptor()
		if err != nil {
			return nil, fmt.Errorf("load: entity %s: %w", e.Name, err)
		}
		descs = append(descs, d)
	}
	return descs, nil
}

func (e *EntityDecl) descriptor() (*schema.Descriptor, error) {
	b := schema.Entity(e.Name).Table(e.Table)
	for i, fd := range e.Fields {
		if fd == nil {
			return nil, fmt.Errorf("field at index %d is empty", i)
		}
		t, err := field.ParseType(strings.ToLower(fd.Type))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fd.Name, err)
		}
		fb := fieldOf(fd.Name, t).Column(fd.Column).Size(fd.Size).Comment(fd.Comment)
		if fd.SQLType != "" {
			fb.SQLType(sqltype.Parse(fd.SQLType))
		}
		if fd.PrimaryKey {
			fb.PrimaryKey()
		}
		if fd.Unique {
			fb.Unique()
		}
		if ref := fd.References; ref != nil {
			onDelete, err := field.ParseAction(ref.OnDelete)
			if err != nil {
				return nil, fmt.Errorf("field %s: on_delete: %w", fd.Name, err)
			}
			onUpdate, err := field.ParseAction(ref.OnUpdate)
			if err != nil {
				return nil, fmt.Errorf("field %s: on_update: %w", fd.Name, err)
			}
			fb.References(ref.Table, ref.Column).OnDelete(onDelete).OnUpdate(onUpdate)
		}
		b.Fields(fb)
	}
	return b.Descriptor(), nil
}
