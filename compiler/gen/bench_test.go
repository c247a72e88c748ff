package gen_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/daogen/compiler/gen"
	"github.com/syssam/daogen/compiler/gen/sql"
	"github.com/syssam/daogen/schema"
	"github.com/syssam/daogen/schema/field"
)

// entities returns n entities, each referencing the previous one.
func entities(n int) []*schema.Descriptor {
	descs := make([]*schema.Descriptor, n)
	for i := range descs {
		b := schema.Entity(fmt.Sprintf("Entity%d", i),
			field.Long("id").PrimaryKey(),
			field.String("name").Size(100).Unique(),
			field.Int("count").Size(11),
			field.Double("score"),
			field.Time("created_at"),
		)
		if i > 0 {
			b.Fields(field.Long("parent_id").References(fmt.Sprintf("entity%d", i-1), "id"))
		}
		descs[i] = b.Descriptor()
	}
	return descs
}

func BenchmarkNewGraph(b *testing.B) {
	descs := entities(50)
	cfg := gen.MustNewConfig()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := gen.NewGraph(cfg, descs...)
		require.NoError(b, g.Err())
	}
}

func BenchmarkGraph_Gen(b *testing.B) {
	descs := entities(50)
	cfg := gen.MustNewConfig(gen.WithPackage("bench"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := gen.NewGraph(cfg, descs...)
		err := sql.Generate(context.Background(), g, gen.NewMemSink())
		require.NoError(b, err)
	}
}
