package errbus

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-group-sync/internal/logger"
	"github.com/MKhiriev/go-group-sync/models"
)

const defaultBufferSize = 16

type subscription struct {
	id      uint64
	handler Handler
}

// Bus is a buffered, fire-and-forget [Reporter] that fans events out to its
// subscribers in subscription order.
type Bus struct {
	queue  chan models.GlobalError
	logger *logger.Logger

	subsMu sync.RWMutex
	subs   []subscription
	nextID uint64

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBus creates an idle Bus holding up to bufferSize undelivered events.
// Events reported before Start are kept and delivered once it runs.
func NewBus(bufferSize int, log *logger.Logger) *Bus {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Bus{
		queue:  make(chan models.GlobalError, bufferSize),
		logger: log,
	}
}

// Subscribe registers h and returns a function removing it again.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.subsMu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, handler: h})
	b.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.subsMu.Lock()
			defer b.subsMu.Unlock()
			for i, s := range b.subs {
				if s.id == id {
					b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Report implements [Reporter]. When the queue is full the event is dropped
// and a warning is logged.
func (b *Bus) Report(_ context.Context, event models.GlobalError) {
	select {
	case b.queue <- event:
	default:
		b.logger.Warn().
			Str("func", "*Bus.Report").
			Str("kind", event.Kind.String()).
			Str("call", event.Call).
			Msg("error bus is full, event dropped")
	}
}

// Start launches the dispatcher goroutine, stopping a previous one first.
// The dispatcher exits when ctx is cancelled or Stop is called, delivering
// whatever is already queued before it returns.
func (b *Bus) Start(ctx context.Context) {
	b.Stop()

	b.mu.Lock()
	busCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.wg.Add(1)
	b.mu.Unlock()

	handlerCtx := b.logger.WithContext(context.WithoutCancel(ctx))

	go func() {
		defer b.wg.Done()
		for {
			select {
			case <-busCtx.Done():
				b.drain(handlerCtx)
				return
			case event := <-b.queue:
				b.dispatch(handlerCtx, event)
			}
		}
	}()
}

// Stop cancels the dispatcher and blocks until it has drained the queue and
// exited. Safe to call when the bus is not running.
func (b *Bus) Stop() {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	b.wg.Wait()
}

func (b *Bus) drain(ctx context.Context) {
	for {
		select {
		case event := <-b.queue:
			b.dispatch(ctx, event)
		default:
			return
		}
	}
}

func (b *Bus) dispatch(ctx context.Context, event models.GlobalError) {
	b.subsMu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.subsMu.RUnlock()

	b.logger.Debug().
		Str("func", "*Bus.dispatch").
		Str("kind", event.Kind.String()).
		Str("call", event.Call).
		Int("subscribers", len(subs)).
		Msg("dispatching global error")

	for _, s := range subs {
		b.safeCall(ctx, s.handler, event)
	}
}

func (b *Bus) safeCall(ctx context.Context, h Handler, event models.GlobalError) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("func", "*Bus.safeCall").
				Interface("panic", r).
				Str("kind", event.Kind.String()).
				Msg("error bus handler panicked")
		}
	}()
	h(ctx, event)
}
