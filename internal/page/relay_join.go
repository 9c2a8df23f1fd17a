package page

import (
	"context"

	"go.uber.org/zap"

	"github.com/vincentbai/watss-forms/internal/relay"
	"github.com/vincentbai/watss-forms/internal/submissions"
)

const MessageRelaySuccess = "Thanks for your submission! We'll be in touch soon."

// RelayJoinPage is the landing page variant that sends submissions to a form-relay service.
type RelayJoinPage struct {
	Nav   *NavMenu
	Form  *Form
	Modal *Modal

	client   *relay.Client
	notifier Notifier
	logger   *zap.Logger
}

func NewRelayJoinPage(client *relay.Client, notifier Notifier, eventLabels []string, logger *zap.Logger, navLinkIDs ...string) *RelayJoinPage {
	if logger == nil {
		logger = zap.NewNop()
	}
	form := NewForm(eventLabels...)
	return &RelayJoinPage{
		Nav:      NewNavMenu(navLinkIDs...),
		Form:     form,
		Modal:    NewModal(form),
		client:   client,
		notifier: notifier,
		logger:   logger,
	}
}

func (p *RelayJoinPage) Bind(events Events) {
	p.Nav.Bind(events)
	p.Modal.Bind(events)
	events.OnSubmit(IDJoinForm, p.Submit)
}

// Submit sends the form once. On failure the modal stays open for another try.
func (p *RelayJoinPage) Submit(ctx context.Context) {
	name, email, err := submissions.Validate(p.Form.Name, p.Form.Email)
	if err != nil {
		p.notifier.Alert(err.Error())
		return
	}
	err = p.client.Submit(ctx, relay.Fields{Name: name, Email: email, Events: p.Form.Selected()})
	if err != nil {
		p.logger.Warn("relay submission failed", zap.Error(err))
		p.notifier.Alert(relay.UserMessage(err))
		return
	}
	p.notifier.Alert(MessageRelaySuccess)
	p.Modal.Close()
}
