package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chazu/lineal/pkg/scene"
)

// DefaultTimeout is the hard limit for a single evaluation.
const DefaultTimeout = 5 * time.Second

var (
	ErrTimeout    = errors.New("evaluation timed out")
	ErrSuperseded = errors.New("evaluation superseded by newer request")
)

type evalResult struct {
	scene  *scene.Scene
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch, giving up after timeout or
// when ctx is done. A result whose generation is no longer current is
// discarded.
//
// On timeout the evaluating goroutine may still be running; the generation
// check discards its result when it eventually completes.
func waitWithTimeout(
	ctx context.Context,
	ch <-chan evalResult,
	timeout time.Duration,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (*scene.Scene, []EvalError, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return nil, nil, ErrSuperseded
		}
		return res.scene, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("%w after %s", ErrTimeout, timeout)

	case <-ctx.Done():
		return nil, nil, fmt.Errorf("evaluation cancelled: %w", ctx.Err())
	}
}
