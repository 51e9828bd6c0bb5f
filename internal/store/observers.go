package store

import "sync"

// observers is the subscribe/notify mechanism shared by the stores.
// Subscribers are invoked synchronously after every mutation, outside the
// store's own lock so a callback may read back from the store.
type observers struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

// subscribe registers fn and returns a function that removes it again.
func (o *observers) subscribe(fn func()) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.subs == nil {
		o.subs = make(map[int]func())
	}
	id := o.next
	o.next++
	o.subs[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs, id)
	}
}

func (o *observers) broadcast() {
	o.mu.Lock()
	fns := make([]func(), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
