package page

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vincentbai/watss-forms/internal/export"
	"github.com/vincentbai/watss-forms/internal/submissions"
)

const (
	MessageStorageUnreadable = "Your saved submissions could not be read, so nothing was saved. Please clear this site's stored data and try again."
	MessageSaveFailed        = "Sorry, your submission could not be saved. Please try again."
)

// DownloadButton is visible (join page) or enabled (download page) only when submissions exist.
type DownloadButton struct {
	Visible  bool
	Disabled bool
}

// JoinPage is the landing page variant that keeps submissions in local storage.
type JoinPage struct {
	Nav      *NavMenu
	Form     *Form
	Modal    *Modal
	Download DownloadButton

	store      *submissions.Store
	downloader export.Downloader
	notifier   Notifier
	filename   string
	logger     *zap.Logger
}

type JoinPageConfig struct {
	Store       *submissions.Store
	Downloader  export.Downloader
	Notifier    Notifier
	Filename    string
	EventLabels []string
	NavLinkIDs  []string
	Logger      *zap.Logger
}

func NewJoinPage(cfg JoinPageConfig) *JoinPage {
	form := NewForm(cfg.EventLabels...)
	p := &JoinPage{
		Nav:        NewNavMenu(cfg.NavLinkIDs...),
		Form:       form,
		Modal:      NewModal(form),
		store:      cfg.Store,
		downloader: cfg.Downloader,
		notifier:   cfg.Notifier,
		filename:   cfg.Filename,
		logger:     cfg.Logger,
	}
	if p.filename == "" {
		p.filename = export.DefaultFilename
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// Bind registers every handler and runs the page-load refresh.
func (p *JoinPage) Bind(ctx context.Context, events Events) {
	p.Nav.Bind(events)
	p.Modal.Bind(events)
	events.OnClick(IDDownloadButton, func(ctx context.Context, _ Click) { p.downloadAll(ctx) })
	events.OnSubmit(IDJoinForm, p.Submit)
	p.Refresh(ctx)
}

// Refresh shows the download button only when submissions exist.
func (p *JoinPage) Refresh(ctx context.Context) {
	status, err := p.store.Status(ctx)
	if err != nil {
		p.logger.Warn("cannot read submissions", zap.Error(err))
		p.Download.Visible = false
		return
	}
	p.Download.Visible = status.DownloadEnabled
}

func (p *JoinPage) Submit(ctx context.Context) {
	name := p.Form.Name
	list, err := p.store.Append(ctx, name, p.Form.Email, p.Form.Selected())
	if err != nil {
		var (
			validation *submissions.ValidationError
			corrupt    *submissions.CorruptStorageError
		)
		switch {
		case errors.As(err, &validation):
			p.notifier.Alert(validation.Message)
		case errors.As(err, &corrupt):
			p.notifier.Alert(MessageStorageUnreadable)
		default:
			p.logger.Error("failed to save submission", zap.Error(err))
			p.notifier.Alert(MessageSaveFailed)
		}
		return
	}

	if err := export.Download(ctx, p.downloader, list, p.filename); err != nil {
		p.logger.Warn("automatic csv download failed", zap.Error(err))
	}
	p.Refresh(ctx)

	p.logger.Info("form submitted and saved", zap.Int("count", len(list)))
	p.notifier.Alert(fmt.Sprintf("Thank you for joining us, %s! Your information has been saved.", list[len(list)-1].Name))
	p.Modal.Close()
}

func (p *JoinPage) downloadAll(ctx context.Context) {
	downloadAll(ctx, p.store, p.downloader, p.notifier, p.filename, p.logger)
}

func downloadAll(ctx context.Context, store *submissions.Store, d export.Downloader, notifier Notifier, filename string, logger *zap.Logger) {
	list, err := store.List(ctx)
	if err != nil {
		logger.Error("failed to read submissions", zap.Error(err))
		notifier.Alert(MessageStorageUnreadable)
		return
	}
	if err := export.Download(ctx, d, list, filename); err != nil {
		if errors.Is(err, export.ErrNothingToDownload) {
			notifier.Alert(export.MessageNothingToDownload)
			return
		}
		logger.Error("csv download failed", zap.Error(err))
		notifier.Alert(MessageSaveFailed)
	}
}
