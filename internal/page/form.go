package page

import "strings"

type Checkbox struct {
	Label   string
	Checked bool
}

// Form mirrors the join form's inputs.
type Form struct {
	Name   string
	Email  string
	Events []Checkbox // markup order
}

func NewForm(eventLabels ...string) *Form {
	f := &Form{Events: make([]Checkbox, 0, len(eventLabels))}
	for _, label := range eventLabels {
		f.Events = append(f.Events, Checkbox{Label: label})
	}
	return f
}

// Check ticks the checkbox with the given label; unknown labels are ignored.
func (f *Form) Check(label string) {
	for i := range f.Events {
		if f.Events[i].Label == label {
			f.Events[i].Checked = true
		}
	}
}

// Selected returns checked labels in markup order.
func (f *Form) Selected() []string {
	selected := make([]string, 0, len(f.Events))
	for _, cb := range f.Events {
		if cb.Checked {
			selected = append(selected, cb.Label)
		}
	}
	return selected
}

func (f *Form) Reset() {
	f.Name = ""
	f.Email = ""
	for i := range f.Events {
		f.Events[i].Checked = false
	}
}

func (f *Form) IsEmpty() bool {
	return strings.TrimSpace(f.Name) == "" && strings.TrimSpace(f.Email) == "" && len(f.Selected()) == 0
}
