package session

import (
	"context"
	"log"
	"sync/atomic"
)

// Watcher caches the latest session snapshot so request handling never
// blocks on the identity provider. Refresh is driven by the scheduler.
type Watcher struct {
	provider Provider
	val      atomic.Value // stores Session
	onChange func(Session)
}

func NewWatcher(p Provider, onChange func(Session)) *Watcher {
	w := &Watcher{provider: p, onChange: onChange}
	w.val.Store(Session{})
	return w
}

func (w *Watcher) Snapshot() Session {
	return w.val.Load().(Session)
}

// Refresh queries the provider and stores the result. A transient
// provider error keeps the previous snapshot; signed-in state only
// changes on a definitive answer.
func (w *Watcher) Refresh(ctx context.Context) error {
	prev := w.Snapshot()
	cur, err := w.provider.Current(ctx)
	if err != nil {
		log.Printf("[session] refresh failed: %v", err)
		return err
	}
	w.val.Store(cur)
	if cur.SignedIn != prev.SignedIn && w.onChange != nil {
		w.onChange(cur)
	}
	return nil
}
