package sql

import (
	"context"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/daogen/compiler/gen"
	"github.com/syssam/daogen/schema"
	"github.com/syssam/daogen/schema/field"
)

func TestGenShared(t *testing.T) {
	g := gen.NewGraph(nil, postsEntity(), usersEntity())
	require.NoError(t, g.Err())
	code := NewDialect().GenShared(g).GoString()

	assert.Contains(t, code, "type ExecQuerier interface")
	assert.Contains(t, code, "ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)")
	assert.Contains(t, code, "QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)")
	assert.Contains(t, code, `var ErrNotFound = errors.New("dao: not found")`)
	assert.Contains(t, code, "func CreateTables(ctx context.Context, db ExecQuerier) error")
	assert.Contains(t, code, "CreateUserTable, CreatePostTable")
}

func TestGenerate(t *testing.T) {
	bad := schema.Entity("Broken", field.String("name")).Descriptor()
	g := gen.NewGraph(gen.MustNewConfig(gen.WithPackage("store")), usersEntity(), postsEntity(), bad)
	sink := gen.NewMemSink()

	err := Generate(context.Background(), g, sink)
	require.Error(t, err)
	assert.True(t, gen.IsMissingPrimaryKeyError(err))
	assert.Equal(t, []string{"daogen.go", "post.go", "user.go"}, sink.Names())

	fset := token.NewFileSet()
	for _, name := range sink.Names() {
		t.Run(name, func(t *testing.T) {
			src, ok := sink.File(name)
			require.True(t, ok)
			file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
			require.NoError(t, err)
			assert.Equal(t, "store", file.Name.Name)
		})
	}
}

func TestGenerateFailFast(t *testing.T) {
	bad := schema.Entity("Broken", field.String("name")).Descriptor()
	g := gen.NewGraph(gen.MustNewConfig(gen.WithFailFast(true)), usersEntity(), bad)
	sink := gen.NewMemSink()

	require.Error(t, Generate(context.Background(), g, sink))
	assert.Empty(t, sink.Names())
}

func TestGenerateDir(t *testing.T) {
	dir := t.TempDir()
	g := gen.NewGraph(gen.MustNewConfig(gen.WithTarget(dir)), usersEntity(), postsEntity())

	require.NoError(t, Generate(context.Background(), g, gen.NewDirSink(g.Target)))
}
