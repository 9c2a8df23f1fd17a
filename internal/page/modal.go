package page

import "context"

// Modal is the "join us" dialog. Closing it always resets the form.
type Modal struct {
	form         *Form
	open         bool
	scrollLocked bool
}

func NewModal(form *Form) *Modal {
	return &Modal{form: form}
}

func (m *Modal) IsOpen() bool { return m.open }

// ScrollLocked reports whether background scrolling is disabled.
func (m *Modal) ScrollLocked() bool { return m.scrollLocked }

func (m *Modal) Open() {
	m.open = true
	m.scrollLocked = true
}

func (m *Modal) Close() {
	m.open = false
	m.scrollLocked = false
	m.form.Reset()
}

func (m *Modal) Bind(events Events) {
	events.OnClick(IDJoinButton, func(context.Context, Click) { m.Open() })
	events.OnClick(IDModalClose, func(context.Context, Click) { m.Close() })
	events.OnClick(IDCancelButton, func(context.Context, Click) { m.Close() })
	events.OnClick(IDModalOverlay, func(_ context.Context, click Click) {
		// only the backdrop itself, not the dialog content
		if click.Target == IDModalOverlay {
			m.Close()
		}
	})
	events.OnKeyDown(func(_ context.Context, key string) {
		if key == KeyEscape && m.open {
			m.Close()
		}
	})
}
