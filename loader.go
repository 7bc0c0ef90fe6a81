package scrollreel

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// loadRequest identifies the frame set a load sequence fetches.
type loadRequest struct {
	generation uint64
	category   Category
	theme      Theme
}

// Loader fetches frame sets. Fetching and decoding happen on goroutines;
// results are posted as events on a channel that the Viewer drains on its
// update goroutine, so the FrameSet is only ever touched from there.
type Loader struct {
	source        FrameSource
	layout        FrameLayout
	count         int
	maxConcurrent int
	log           *zap.Logger

	results chan event
	cancel  context.CancelFunc
}

func newLoader(source FrameSource, layout FrameLayout, count, maxConcurrent int, log *zap.Logger) *Loader {
	return &Loader{
		source:        source,
		layout:        layout,
		count:         count,
		maxConcurrent: maxConcurrent,
		log:           log,
		results:       make(chan event, count+1),
	}
}

// loadFirst fetches frame 1. The settlement arrives as evFirstFrame. There
// is no deadline: a hung source keeps the load pending.
func (l *Loader) loadFirst(req loadRequest) {
	l.cancelBackground()

	path := l.layout.Path(req.category, req.theme, 1)
	l.log.Info("attempting to load first frame",
		zap.String("path", path),
		zap.Uint64("generation", req.generation))

	go func() {
		img, err := l.source.Fetch(context.Background(), path)
		l.results <- event{
			kind:       evFirstFrame,
			generation: req.generation,
			index:      0,
			path:       path,
			image:      img,
			err:        err,
		}
	}()
}

// loadRest fans out frames 2..N. Completions arrive as evFrame in any order,
// followed by one evBackgroundDone carrying the combined failures. The
// fan-out is cancelled by the next loadFirst.
func (l *Loader) loadRest(req loadRequest) {
	l.cancelBackground()
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel

	go func() {
		g, gctx := errgroup.WithContext(ctx)
		if l.maxConcurrent > 0 {
			g.SetLimit(l.maxConcurrent)
		}

		var (
			mu   sync.Mutex
			errs error
		)
		for i := 2; i <= l.count; i++ {
			path := l.layout.Path(req.category, req.theme, i)
			index := i - 1
			g.Go(func() error {
				img, err := l.source.Fetch(gctx, path)
				if err != nil {
					if !errors.Is(err, context.Canceled) {
						mu.Lock()
						errs = multierr.Append(errs, err)
						mu.Unlock()
					}
					return nil
				}
				select {
				case l.results <- event{kind: evFrame, generation: req.generation, index: index, path: path, image: img}:
				case <-gctx.Done():
				}
				return nil
			})
		}
		_ = g.Wait()
		if ctx.Err() != nil {
			return
		}

		select {
		case l.results <- event{kind: evBackgroundDone, generation: req.generation, err: errs}:
		case <-ctx.Done():
		}
	}()
}

// cancelBackground stops the running fan-out, if any.
func (l *Loader) cancelBackground() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// poll returns the next pending result without blocking.
func (l *Loader) poll() (event, bool) {
	select {
	case ev := <-l.results:
		return ev, true
	default:
		return event{}, false
	}
}
