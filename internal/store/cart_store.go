package store

import (
	"encoding/json"
	"sync"

	"shopwave/internal/domain"
	applog "shopwave/internal/log"
	"shopwave/internal/storage"
)

// CartStore owns the cart: an insertion-ordered list of cart lines with at
// most one line per product id. Every mutation re-serializes the whole cart
// to durable storage and notifies subscribers. Derived values are
// recomputed from the current lines on every read.
type CartStore struct {
	mu       sync.Mutex
	lines    []domain.CartLine
	records  storage.Store
	notifier Notifier
	observers
}

// NewCartStore loads any prior snapshot from records. A missing record
// starts an empty cart; a corrupt one is logged and discarded, never
// surfaced to the caller.
func NewCartStore(records storage.Store, notifier Notifier) *CartStore {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	s := &CartStore{records: records, notifier: notifier}

	raw, err := records.Get(storage.KeyCart)
	if err == nil {
		var lines []domain.CartLine
		if jerr := json.Unmarshal(raw, &lines); jerr != nil {
			applog.Warn(nil, "cart.load.corrupt", map[string]any{"err": jerr.Error()})
		} else {
			s.lines = lines
		}
	} else if err != storage.ErrNotFound {
		applog.Error(nil, "cart.load", err, nil)
	}
	return s
}

// AddItem merges quantity into the existing line for the product, or
// appends a new line at the end. No stock cap is enforced here; clamping
// against product stock is a view-level concern.
func (s *CartStore) AddItem(p domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, domain.CartLine{Product: p, Quantity: quantity})
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notifier.Notify(Notification{Title: "Added to cart", Description: p.Name + " added to your cart"})
	s.broadcast()
}

// RemoveItem deletes the line for productID. Absent id is a silent no-op,
// so the call is idempotent.
func (s *CartStore) RemoveItem(productID string) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.persistLocked()
	s.mu.Unlock()
	s.broadcast()
}

// UpdateQuantity replaces the quantity of the line for productID.
// A quantity below 1 is ignored entirely: the line is neither changed nor
// removed. That mirrors the long-standing storefront behavior; use
// RemoveItem to drop a line.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.persistLocked()
	s.mu.Unlock()
	s.broadcast()
}

func (s *CartStore) ClearCart() {
	s.mu.Lock()
	s.lines = nil
	s.persistLocked()
	s.mu.Unlock()
	s.broadcast()
}

// Items returns a copy of the cart lines in insertion order.
func (s *CartStore) Items() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

func (s *CartStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// Subscribe registers fn to run after every mutation; the returned function
// unsubscribes it.
func (s *CartStore) Subscribe(fn func()) func() { return s.subscribe(fn) }

// persistLocked snapshots the whole cart to durable storage. Write failures
// are logged, never propagated: the in-memory cart stays authoritative.
func (s *CartStore) persistLocked() {
	lines := s.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		applog.Error(nil, "cart.persist.encode", err, nil)
		return
	}
	if err := s.records.Put(storage.KeyCart, raw); err != nil {
		applog.Error(nil, "cart.persist", err, nil)
	}
}
