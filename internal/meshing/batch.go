package meshing

import (
	"context"

	"mcmodel/internal/profiling"
	"mcmodel/pkg/blockmodel"
)

// CompileAll loads every named model with loader and compiles them on the
// pool. Loading stays on the calling goroutine since a Loader is not safe
// for concurrent use. Results come back in the order of names; a model that
// fails to load reports the load error in its result.
func (p *WorkerPool) CompileAll(ctx context.Context, loader *blockmodel.Loader, names []string) ([]CompileResult, error) {
	results := make([]CompileResult, len(names))
	index := make(map[string][]int, len(names))
	resultChan := make(chan CompileResult, len(names))

	pending := 0
	for i, name := range names {
		stop := profiling.Track("blockmodel.load")
		model, err := loader.LoadModel(name)
		var ancestors map[string]*blockmodel.Model
		if err == nil {
			ancestors = loader.LoadAncestors(model)
		}
		stop()

		if err != nil {
			results[i] = CompileResult{Name: name, Error: err}
			continue
		}

		index[name] = append(index[name], i)
		job := CompileJob{Name: name, Model: model, Ancestors: ancestors, ResultChan: resultChan}
		if err := p.SubmitJobBlocking(ctx, job); err != nil {
			return nil, err
		}
		pending++
	}

	for ; pending > 0; pending-- {
		select {
		case res := <-resultChan:
			slots := index[res.Name]
			results[slots[0]] = res
			index[res.Name] = slots[1:]
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return results, nil
}
