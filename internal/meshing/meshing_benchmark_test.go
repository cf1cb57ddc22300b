package meshing

import (
	"context"
	"testing"

	"mcmodel/pkg/blockmodel"
	"mcmodel/pkg/mesh"
)

func BenchmarkCompileCube(b *testing.B) {
	model, err := blockmodel.Parse([]byte(cubeAll))
	if err != nil {
		b.Fatal(err)
	}
	ancestors := map[string]*blockmodel.Model{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mesh.New(model, ancestors)
	}
}

func BenchmarkWorkerPool(b *testing.B) {
	model, err := blockmodel.Parse([]byte(cubeAll))
	if err != nil {
		b.Fatal(err)
	}
	pool := NewWorkerPool(4, 64, nil)
	defer pool.Shutdown()

	results := make(chan CompileResult, 64)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := pool.SubmitJobBlocking(ctx, CompileJob{Name: "cube", Model: model, ResultChan: results}); err != nil {
			b.Fatal(err)
		}
		<-results
	}
}
