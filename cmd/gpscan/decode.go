package main

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/Garik-/gpscore/pkg/importer"
	"github.com/Garik-/gpscore/pkg/model"
)

type result struct {
	name  string
	score *model.Score
	err   error
}

func decodeFile(name string) *result {
	out := &result{name: name}
	data, err := os.ReadFile(name)
	if err != nil {
		out.err = err
		return out
	}

	out.score, out.err = importer.Import(data, importer.FormatUnknown, nil,
		importer.WithLogger(decoderLog.With(zap.String("file", name))))
	return out
}

func decodeWorker(ctx context.Context, paths <-chan string, cntRoutines int) (<-chan *result, <-chan struct{}) {
	log := decoderLog.Named("decodeWorker")
	out := make(chan *result)
	done := make(chan struct{}, 1)

	go func() {
		var wg sync.WaitGroup
		goroutines := make(chan struct{}, cntRoutines)

	loop:
		for path := range paths {
			select {
			case goroutines <- struct{}{}:
			case <-ctx.Done():
				log.Debug("context done")
				break loop
			}
			wg.Add(1)
			go func(ctx context.Context, path string, goroutines <-chan struct{}, out chan<- *result, wg *sync.WaitGroup) {
				defer wg.Done()

				select {
				case out <- decodeFile(path):
				case <-ctx.Done():
					log.Debug("decodeFile context done", zap.String("path", path))
				}
				<-goroutines

			}(ctx, path, goroutines, out, &wg)
		}

		wg.Wait()
		close(goroutines)
		close(out)

		done <- struct{}{}
		close(done)
	}()

	return out, done
}
