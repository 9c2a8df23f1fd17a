// Package page holds the behaviour of the site's interactive controls,
// bound to the browsing environment through a small capability interface.
package page

import (
	"context"
	"slices"
)

// Element IDs used by the site markup.
const (
	IDBurgerMenu      = "burgerMenu"
	IDNavLinks        = "navLinks"
	IDJoinButton      = "joinButton"
	IDModalOverlay    = "modalOverlay"
	IDModalClose      = "modalClose"
	IDCancelButton    = "cancelButton"
	IDJoinForm        = "joinForm"
	IDDownloadButton  = "downloadButton"
	IDSubmissionCount = "submissionCount"
)

const KeyEscape = "Escape"

// Click describes one click. Path lists the target's ID followed by the IDs of its ancestors.
type Click struct {
	Target string
	Path   []string
}

// Within reports whether the click landed on id or inside it.
func (c Click) Within(id string) bool {
	return c.Target == id || slices.Contains(c.Path, id)
}

// Events is the event-dispatch capability of the environment.
type Events interface {
	OnClick(id string, fn func(ctx context.Context, click Click))
	OnDocumentClick(fn func(ctx context.Context, click Click))
	OnKeyDown(fn func(ctx context.Context, key string))
	OnSubmit(formID string, fn func(ctx context.Context))
}

// Notifier shows a blocking notice to the user.
type Notifier interface {
	Alert(message string)
}
