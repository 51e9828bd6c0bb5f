package store_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"shopwave/internal/storage"
	"shopwave/internal/store"
)

func TestLoginEmptyFieldsFails(t *testing.T) {
	sink := &capture{}
	auth := store.NewAuthStore(memrecords(t), sink, 0)

	for _, creds := range [][2]string{{"", "x"}, {"a@b.com", ""}, {"", ""}} {
		ok, err := auth.Login(context.Background(), creds[0], creds[1])
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatalf("login %q/%q should fail", creds[0], creds[1])
		}
	}
	if auth.IsAuthenticated() {
		t.Fatal("user must stay unset after failed logins")
	}
	if len(sink.got) != 3 || !sink.got[0].Failure || sink.got[0].Title != "Login failed" {
		t.Fatalf("want 3 failure notifications, got %+v", sink.got)
	}
}

func TestLoginSucceedsWithSampleIdentity(t *testing.T) {
	records := memrecords(t)
	sink := &capture{}
	auth := store.NewAuthStore(records, sink, 0)

	ok, err := auth.Login(context.Background(), "anyone@example.com", "anything")
	if err != nil || !ok {
		t.Fatalf("mock login must succeed: ok=%v err=%v", ok, err)
	}
	u := auth.User()
	if u == nil || u.ID != store.SampleUser.ID || u.Name != "John Doe" {
		t.Fatalf("want sample identity, got %+v", u)
	}
	if !auth.IsAuthenticated() {
		t.Fatal("IsAuthenticated should be true")
	}
	if len(sink.got) != 1 || sink.got[0].Failure {
		t.Fatalf("want success notification, got %+v", sink.got)
	}

	// Session mirrored to durable storage.
	if _, err := records.Get(storage.KeyUser); err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
}

func TestSessionRestoredOnConstruction(t *testing.T) {
	records := memrecords(t)
	auth := store.NewAuthStore(records, nil, 0)
	if _, err := auth.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatal(err)
	}

	reloaded := store.NewAuthStore(records, nil, 0)
	u := reloaded.User()
	if u == nil || u.ID != store.SampleUser.ID {
		t.Fatalf("session not restored: %+v", u)
	}
}

func TestRegisterCreatesFreshUser(t *testing.T) {
	auth := store.NewAuthStore(memrecords(t), nil, 0)

	ok, err := auth.Register(context.Background(), "Jane", "jane@example.com", "pw")
	if err != nil || !ok {
		t.Fatalf("register must succeed: ok=%v err=%v", ok, err)
	}
	u := auth.User()
	if u == nil || u.Name != "Jane" || u.Email != "jane@example.com" {
		t.Fatalf("bad registered user: %+v", u)
	}
	if !strings.HasPrefix(u.ID, "user-") || u.ID == store.SampleUser.ID {
		t.Fatalf("want freshly generated id, got %q", u.ID)
	}
}

func TestRegisterEmptyFieldFails(t *testing.T) {
	auth := store.NewAuthStore(memrecords(t), nil, 0)
	ok, err := auth.Register(context.Background(), "Jane", "", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if ok || auth.IsAuthenticated() {
		t.Fatal("register with empty field must fail")
	}
}

func TestLogoutClearsSessionAndRecord(t *testing.T) {
	records := memrecords(t)
	auth := store.NewAuthStore(records, nil, 0)
	if _, err := auth.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatal(err)
	}

	auth.Logout()
	if auth.IsAuthenticated() {
		t.Fatal("still authenticated after logout")
	}
	if _, err := records.Get(storage.KeyUser); err != storage.ErrNotFound {
		t.Fatalf("persisted session should be removed, got %v", err)
	}
}

// Pending logins are cancellable: a cancelled context aborts the simulated
// delay and leaves the user unset.
func TestLoginCancelledMidDelay(t *testing.T) {
	auth := store.NewAuthStore(memrecords(t), nil, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok, err := auth.Login(ctx, "a@b.com", "pw")
	if err == nil || ok {
		t.Fatalf("cancelled login must not succeed: ok=%v err=%v", ok, err)
	}
	if auth.IsAuthenticated() {
		t.Fatal("cancelled login must leave user unset")
	}
}

func TestCorruptSessionSnapshotStartsSignedOut(t *testing.T) {
	records := memrecords(t)
	if err := records.Put(storage.KeyUser, []byte(`not json`)); err != nil {
		t.Fatal(err)
	}
	auth := store.NewAuthStore(records, nil, 0)
	if auth.IsAuthenticated() {
		t.Fatal("corrupt session must start signed out")
	}
}

func TestAuthSubscribers(t *testing.T) {
	auth := store.NewAuthStore(memrecords(t), nil, 0)
	calls := 0
	auth.Subscribe(func() { calls++ })

	if _, err := auth.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatal(err)
	}
	auth.Logout()
	if calls != 2 {
		t.Fatalf("want 2 notifications, got %d", calls)
	}
}
