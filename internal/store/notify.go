package store

import applog "shopwave/internal/log"

// Notification is a user-visible, non-blocking message emitted by a store
// (the equivalent of a toast). Failure marks validation failures; they
// never propagate as errors.
type Notification struct {
	Title       string
	Description string
	Failure     bool
}

type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// LogNotifier writes notifications to the structured log. It is the
// default sink when no presentation-layer notifier is wired in.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	fields := map[string]any{"title": n.Title, "description": n.Description}
	if n.Failure {
		applog.Warn(nil, "notify.failure", fields)
		return
	}
	applog.Info(nil, "notify", fields)
}
