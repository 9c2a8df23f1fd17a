package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vincentbai/watss-forms/internal/models"
)

func TestSerializeEmpty(t *testing.T) {
	assert.Equal(t, "Name,Email,Events,Date,Time\n", Serialize(nil))
	assert.Equal(t, "Name,Email,Events,Date,Time\n", Serialize([]models.Submission{}))
}

func TestSerializeEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []string
		want   string
	}{
		{name: "none selected", events: []string{}, want: `"None"`},
		{name: "nil events", events: nil, want: `"None"`},
		{name: "single", events: []string{"Talk"}, want: `"Talk"`},
		{name: "two in order", events: []string{"A", "B"}, want: `"A; B"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Serialize([]models.Submission{{Name: "n", Email: "e", Events: tt.events, Date: "d", Time: "t"}})
			lines := strings.Split(out, "\n")
			assert.Len(t, lines, 2)
			assert.Equal(t, `"n","e",`+tt.want+`,"d","t"`, lines[1])
		})
	}
}

func TestSerializeScenario(t *testing.T) {
	list := []models.Submission{
		{ID: 1, Name: "Ada", Email: "ada@x.com", Events: []string{"Talk"}, Date: "10/18/2026", Time: "3:04:05 PM"},
	}

	want := "Name,Email,Events,Date,Time\n" + `"Ada","ada@x.com","Talk","10/18/2026","3:04:05 PM"`
	assert.Equal(t, want, Serialize(list))
}

func TestSerializeRowOrderAndNoTrailingNewline(t *testing.T) {
	list := []models.Submission{
		{Name: "first", Email: "1@x.co"},
		{Name: "second", Email: "2@x.co"},
		{Name: "third", Email: "3@x.co"},
	}

	out := Serialize(list)
	assert.False(t, strings.HasSuffix(out, "\n"))

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], `"first"`))
	assert.True(t, strings.HasPrefix(lines[2], `"second"`))
	assert.True(t, strings.HasPrefix(lines[3], `"third"`))
}

func TestSerializeDoesNotEscapeQuotes(t *testing.T) {
	out := Serialize([]models.Submission{{Name: `Ada "The Countess"`, Email: "a@b.co", Date: "d", Time: "t"}})
	assert.Contains(t, out, `"Ada "The Countess"","a@b.co"`)
}
