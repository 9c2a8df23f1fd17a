package page

import (
	"context"

	"go.uber.org/zap"

	"github.com/vincentbai/watss-forms/internal/export"
	"github.com/vincentbai/watss-forms/internal/models"
	"github.com/vincentbai/watss-forms/internal/submissions"
)

// CountDisplay is the submission counter text. Dimmed marks the empty state.
type CountDisplay struct {
	Text   string
	Dimmed bool
}

// DownloadPage shows how many submissions exist and exports them.
type DownloadPage struct {
	Nav      *NavMenu
	Count    CountDisplay
	Download DownloadButton

	store      *submissions.Store
	downloader export.Downloader
	notifier   Notifier
	filename   string
	logger     *zap.Logger
}

func NewDownloadPage(store *submissions.Store, downloader export.Downloader, notifier Notifier, filename string, logger *zap.Logger, navLinkIDs ...string) *DownloadPage {
	if filename == "" {
		filename = export.DefaultFilename
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DownloadPage{
		Nav:        NewNavMenu(navLinkIDs...),
		store:      store,
		downloader: downloader,
		notifier:   notifier,
		filename:   filename,
		logger:     logger,
	}
}

func (p *DownloadPage) Bind(ctx context.Context, events Events) {
	p.Nav.Bind(events)
	events.OnClick(IDDownloadButton, func(ctx context.Context, _ Click) {
		downloadAll(ctx, p.store, p.downloader, p.notifier, p.filename, p.logger)
	})
	p.Refresh(ctx)
}

func (p *DownloadPage) Refresh(ctx context.Context) {
	status, err := p.store.Status(ctx)
	if err != nil {
		p.logger.Warn("cannot read submissions", zap.Error(err))
		status = submissions.StatusOf(0)
	}
	p.apply(status)
}

func (p *DownloadPage) apply(status models.Status) {
	p.Count = CountDisplay{Text: status.Label, Dimmed: status.Empty()}
	p.Download = DownloadButton{Visible: true, Disabled: !status.DownloadEnabled}
}
