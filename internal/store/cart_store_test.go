package store_test

import (
	"math"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"shopwave/internal/domain"
	"shopwave/internal/storage"
	"shopwave/internal/store"
)

func memrecords(t *testing.T) *storage.SQLite {
	t.Helper()
	s, err := storage.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// capture collects notifications for assertions.
type capture struct{ got []store.Notification }

func (c *capture) Notify(n store.Notification) { c.got = append(c.got, n) }

var headphones = domain.Product{ID: "1", Name: "Premium Wireless Headphones", Price: 149.99, Category: "electronics", Stock: 15}
var tshirt = domain.Product{ID: "3", Name: "Organic Cotton T-Shirt", Price: 29.99, Category: "clothing", Stock: 25}

func about(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAddItemMergesByProductID(t *testing.T) {
	cart := store.NewCartStore(memrecords(t), nil)
	cart.AddItem(headphones, 1)
	cart.AddItem(headphones, 2)

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("want one line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("want quantity 3, got %d", items[0].Quantity)
	}
	if !about(cart.Subtotal(), 449.97) {
		t.Fatalf("want subtotal 449.97, got %v", cart.Subtotal())
	}
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	cart := store.NewCartStore(memrecords(t), nil)
	cart.AddItem(headphones, 1)
	cart.AddItem(tshirt, 1)
	cart.AddItem(headphones, 1) // merge must not reorder

	items := cart.Items()
	if len(items) != 2 || items[0].Product.ID != "1" || items[1].Product.ID != "3" {
		t.Fatalf("order broken: %+v", items)
	}
}

func TestUpdateQuantityBelowOneIsIgnored(t *testing.T) {
	cart := store.NewCartStore(memrecords(t), nil)
	cart.AddItem(headphones, 2)

	cart.UpdateQuantity("1", 0)
	cart.UpdateQuantity("1", -4)

	items := cart.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("quantity<1 must be a no-op, got %+v", items)
	}

	cart.UpdateQuantity("1", 5)
	if cart.Items()[0].Quantity != 5 {
		t.Fatal("valid update lost")
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	cart := store.NewCartStore(memrecords(t), nil)
	cart.AddItem(headphones, 1)
	cart.UpdateQuantity("missing", 7)
	if n := cart.TotalItems(); n != 1 {
		t.Fatalf("want 1 item, got %d", n)
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	cart := store.NewCartStore(memrecords(t), nil)
	cart.AddItem(headphones, 1)
	cart.AddItem(tshirt, 2)

	cart.RemoveItem("1")
	cart.RemoveItem("1") // second call is a silent no-op

	items := cart.Items()
	if len(items) != 1 || items[0].Product.ID != "3" {
		t.Fatalf("want only the t-shirt line, got %+v", items)
	}
}

func TestDerivedTotals(t *testing.T) {
	cart := store.NewCartStore(memrecords(t), nil)
	cart.AddItem(headphones, 2)
	cart.AddItem(tshirt, 3)

	if n := cart.TotalItems(); n != 5 {
		t.Fatalf("want 5 total items, got %d", n)
	}
	want := 149.99*2 + 29.99*3
	if !about(cart.Subtotal(), want) {
		t.Fatalf("want subtotal %v, got %v", want, cart.Subtotal())
	}

	cart.ClearCart()
	if cart.TotalItems() != 0 || cart.Subtotal() != 0 {
		t.Fatal("clear did not reset derived values")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	records := memrecords(t)

	cart := store.NewCartStore(records, nil)
	cart.AddItem(headphones, 2)
	cart.AddItem(tshirt, 1)

	// A fresh store over the same records picks up the snapshot.
	reloaded := store.NewCartStore(records, nil)
	items := reloaded.Items()
	if len(items) != 2 || items[0].Product.ID != "1" || items[0].Quantity != 2 {
		t.Fatalf("reload mismatch: %+v", items)
	}
	if !about(reloaded.Subtotal(), cart.Subtotal()) {
		t.Fatal("subtotal lost in roundtrip")
	}
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	records := memrecords(t)
	if err := records.Put(storage.KeyCart, []byte(`{"this is": not json`)); err != nil {
		t.Fatal(err)
	}
	cart := store.NewCartStore(records, nil)
	if n := len(cart.Items()); n != 0 {
		t.Fatalf("corrupt snapshot must yield empty cart, got %d lines", n)
	}
	// And the store still works afterwards.
	cart.AddItem(tshirt, 1)
	if cart.TotalItems() != 1 {
		t.Fatal("store unusable after corrupt load")
	}
}

func TestSubscribersFirePerMutation(t *testing.T) {
	cart := store.NewCartStore(memrecords(t), nil)

	calls := 0
	unsubscribe := cart.Subscribe(func() { calls++ })

	cart.AddItem(headphones, 1)
	cart.UpdateQuantity("1", 2)
	cart.RemoveItem("1")
	cart.ClearCart()
	if calls != 4 {
		t.Fatalf("want 4 notifications, got %d", calls)
	}

	unsubscribe()
	cart.AddItem(tshirt, 1)
	if calls != 4 {
		t.Fatal("subscriber fired after unsubscribe")
	}
}

func TestAddItemNotifies(t *testing.T) {
	sink := &capture{}
	cart := store.NewCartStore(memrecords(t), sink)
	cart.AddItem(headphones, 1)

	if len(sink.got) != 1 {
		t.Fatalf("want one notification, got %d", len(sink.got))
	}
	n := sink.got[0]
	if n.Title != "Added to cart" || n.Failure {
		t.Fatalf("unexpected notification: %+v", n)
	}
}
