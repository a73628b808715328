package transcribe

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// TranscribeAll transcribes multiple chunk files in parallel.
// Results are returned in input order. Windows are independent once planned,
// so the only coupling between requests is the concurrency cap. If any chunk
// fails, the whole operation is aborted and that error is returned.
func TranscribeAll(
	ctx context.Context,
	paths []string,
	t Transcriber,
	maxParallel int,
) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	if maxParallel < 1 {
		maxParallel = 1
	}

	results := make([]string, len(paths))
	sem := make(chan struct{}, maxParallel)

	g, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			defer func() { <-sem }()

			text, err := t.Transcribe(ctx, path)
			if err != nil {
				return fmt.Errorf("chunk %d (%s): %w", i, filepath.Base(path), err)
			}
			results[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
