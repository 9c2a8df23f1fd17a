package page

import "context"

// NavMenu is the collapsible navigation. It is either open or closed.
type NavMenu struct {
	open  bool
	links []string
}

func NewNavMenu(linkIDs ...string) *NavMenu {
	return &NavMenu{links: linkIDs}
}

func (n *NavMenu) IsOpen() bool { return n.open }

func (n *NavMenu) Toggle() { n.open = !n.open }

func (n *NavMenu) Close() { n.open = false }

func (n *NavMenu) Bind(events Events) {
	events.OnClick(IDBurgerMenu, func(context.Context, Click) {
		n.Toggle()
	})
	for _, id := range n.links {
		events.OnClick(id, func(context.Context, Click) {
			n.Close()
		})
	}
	events.OnDocumentClick(func(_ context.Context, click Click) {
		if n.open && !click.Within(IDNavLinks) && !click.Within(IDBurgerMenu) {
			n.Close()
		}
	})
}
