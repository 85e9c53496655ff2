// Package share dispatches "send text" requests to platform share targets.
package share

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// ActionSend is the only supported share action.
const ActionSend = "send"

// ChooserTitle is the heading of every chooser request.
const ChooserTitle = "Share post"

// ErrNoTargets is returned when a chooser has nothing to dispatch to.
var ErrNoTargets = errors.New("no share targets available")

// Intent is a platform share request.
type Intent struct {
	Action string
	Type   string
	Title  string
	Text   string
}

// NewSendText builds a plain text send intent.
func NewSendText(title, text string) Intent {
	return Intent{Action: ActionSend, Type: "text/plain", Title: title, Text: text}
}

// Payload renders the intent as a single text blob.
func (i Intent) Payload() string {
	switch {
	case i.Title == "":
		return i.Text
	case i.Text == "":
		return i.Title
	default:
		return i.Title + "\n" + i.Text
	}
}

// Target handles a share intent.
type Target interface {
	Name() string
	Send(Intent) error
}

// Request is one chooser presentation.
type Request struct {
	Title   string
	Intent  Intent
	Targets []string
}

// Chooser offers a fixed set of targets for share intents.
type Chooser struct {
	targets []Target
}

// NewChooser constructs a Chooser. Nil targets are dropped.
func NewChooser(targets ...Target) *Chooser {
	c := &Chooser{}
	for _, t := range targets {
		if t != nil {
			c.targets = append(c.targets, t)
		}
	}
	return c
}

// Request builds the chooser request for an intent.
func (c *Chooser) Request(intent Intent) Request {
	names := make([]string, len(c.targets))
	for i, t := range c.targets {
		names[i] = t.Name()
	}
	return Request{Title: ChooserTitle, Intent: intent, Targets: names}
}

// Send dispatches the intent to the target at index.
func (c *Chooser) Send(index int, intent Intent) error {
	if len(c.targets) == 0 {
		return ErrNoTargets
	}
	if index < 0 || index >= len(c.targets) {
		return fmt.Errorf("invalid share target index: %d", index)
	}
	return c.targets[index].Send(intent)
}

// ClipboardTarget copies the intent payload to the system clipboard.
type ClipboardTarget struct {
	// WriteAll allows mocking the clipboard.
	WriteAll func(string) error
}

// NewClipboardTarget returns a target backed by the system clipboard.
func NewClipboardTarget() ClipboardTarget {
	return ClipboardTarget{WriteAll: clipboard.WriteAll}
}

// Name implements Target.
func (ClipboardTarget) Name() string { return "Copy to clipboard" }

// Send implements Target.
func (t ClipboardTarget) Send(intent Intent) error {
	write := t.WriteAll
	if write == nil {
		if clipboard.Unsupported {
			return errors.New("clipboard is not supported on this platform")
		}
		write = clipboard.WriteAll
	}
	if err := write(intent.Payload()); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// BrowserTarget opens the shared link in the default browser.
type BrowserTarget struct {
	// OpenURL allows mocking the browser launch.
	OpenURL func(string) error
}

// NewBrowserTarget returns a target backed by the system browser.
func NewBrowserTarget() BrowserTarget {
	return BrowserTarget{OpenURL: browser.OpenURL}
}

// Name implements Target.
func (BrowserTarget) Name() string { return "Open in browser" }

// Send implements Target.
func (t BrowserTarget) Send(intent Intent) error {
	url := strings.TrimSpace(intent.Text)
	if url == "" {
		return errors.New("nothing to open")
	}
	open := t.OpenURL
	if open == nil {
		open = browser.OpenURL
	}
	if err := open(url); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}
