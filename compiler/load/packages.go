package load

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/syssam/daogen/schema"
)

// Packages loads the Go packages matching the patterns and returns the
// descriptors of their exported structs marked with "daogen:entity". The
// marker accepts a table override, e.g. "daogen:entity table=users".
func Packages(ctx context.Context, patterns ...string) ([]*schema.Descriptor, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load: loading packages: %w", err)
	}
	var descs []*schema.Descriptor
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("load: package %s: %w", pkg.PkgPath, pkg.Errors[0])
		}
		for _, file := range pkg.Syntax {
			ds, err := fileEntities(pkg, file)
			if err != nil {
				return nil, err
			}
			descs = append(descs, ds...)
		}
	}
	return descs, nil
}

// fileEntities returns the marked entities declared in one file.
func fileEntities(pkg *packages.Package, file *ast.File) ([]*schema.Descriptor, error) {
	var descs []*schema.Descriptor
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}
			opts, ok := marker(doc)
			if !ok || !ts.Name.IsExported() {
				continue
			}
			obj := pkg.TypesInfo.Defs[ts.Name]
			if obj == nil {
				continue
			}
			st, ok := obj.Type().Underlying().(*types.Struct)
			if !ok {
				return nil, fmt.Errorf("load: %s.%s: %s marker on non-struct type", pkg.Name, ts.Name.Name, Marker)
			}
			d, err := entity(ts.Name.Name, structFields(st), opts...)
			if err != nil {
				return nil, err
			}
			descs = append(descs, d)
		}
	}
	return descs, nil
}

func structFields(st *types.Struct) []structField {
	qualifier := func(p *types.Package) string { return p.Name() }
	fields := make([]structField, 0, st.NumFields())
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Exported() {
			continue
		}
		fields = append(fields, structField{
			name:   f.Name(),
			goType: types.TypeString(f.Type(), qualifier),
			tag:    reflect.StructTag(st.Tag(i)).Get("db"),
		})
	}
	return fields
}

// marker reports if the doc comment carries the entity marker and returns
// the options it declares.
func marker(doc *ast.CommentGroup) ([]Option, bool) {
	if doc == nil {
		return nil, false
	}
	for _, c := range doc.List {
		line := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(c.Text, "//"), "/*"))
		rest, ok := strings.CutPrefix(line, Marker)
		if !ok || (rest != "" && rest[0] != ' ') {
			continue
		}
		var opts []Option
		for _, arg := range strings.Fields(rest) {
			if table, ok := strings.CutPrefix(arg, "table="); ok {
				opts = append(opts, WithTable(table))
			}
		}
		return opts, true
	}
	return nil, false
}
