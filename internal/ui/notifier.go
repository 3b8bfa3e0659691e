package ui

import (
	"sync"

	"fyne.io/fyne/v2"

	"github.com/dishalabs/disha/internal/search"
)

// Notifier is the notification sink for the search pipeline. It always sends
// a system notification; once the root UI attaches, messages also land in the
// in-window notification panel.
type Notifier struct {
	app fyne.App

	mu   sync.Mutex
	show func(search.Notification)
}

// NewNotifier creates a notifier bound to the app.
func NewNotifier(app fyne.App) *Notifier {
	return &Notifier{app: app}
}

// Notify implements search.Sink.
func (n *Notifier) Notify(nt search.Notification) {
	n.app.SendNotification(&fyne.Notification{
		Title:   nt.Title,
		Content: nt.Description,
	})

	n.mu.Lock()
	show := n.show
	n.mu.Unlock()

	if show != nil {
		show(nt)
	}
}

// attach registers the in-window display for notifications.
func (n *Notifier) attach(show func(search.Notification)) {
	n.mu.Lock()
	n.show = show
	n.mu.Unlock()
}
