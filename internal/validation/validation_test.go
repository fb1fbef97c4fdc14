package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type columnInput struct {
	Title string `json:"title" validate:"required,max=120"`
}

type cardInput struct {
	Title      string  `json:"title" validate:"required,max=500"`
	LabelColor *string `json:"label_color" validate:"omitnil,labelcolor"`
}

func strPtr(s string) *string { return &s }

func TestIsLabelColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		color string
		want  bool
	}{
		{"#abc", true},
		{"#aabbcc", true},
		{"#ggg", true}, // length-based rule, non-hex passes
		{"red", false},
		{"#ab", false},
		{"#abcd", false},
		{"aabbcc7", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLabelColor(tt.color))
		})
	}
}

func TestCheck_Title(t *testing.T) {
	t.Parallel()

	_, failed := Check(columnInput{Title: strings.Repeat("a", 120)})
	assert.False(t, failed)

	f, failed := Check(columnInput{Title: strings.Repeat("a", 121)})
	assert.True(t, failed)
	assert.Equal(t, Failure{Field: "title", Rule: "max"}, f)

	f, failed = Check(columnInput{Title: Title("   ")})
	assert.True(t, failed)
	assert.Equal(t, Failure{Field: "title", Rule: "required"}, f)
}

func TestCheck_TitleCountsRunes(t *testing.T) {
	t.Parallel()

	// 120 multi-byte characters are within the limit
	_, failed := Check(columnInput{Title: strings.Repeat("é", 120)})
	assert.False(t, failed)
}

func TestCheck_LabelColor(t *testing.T) {
	t.Parallel()

	_, failed := Check(cardInput{Title: "A"})
	assert.False(t, failed, "nil label color is allowed")

	_, failed = Check(cardInput{Title: "A", LabelColor: strPtr("#fff")})
	assert.False(t, failed)

	f, failed := Check(cardInput{Title: "A", LabelColor: strPtr("red")})
	assert.True(t, failed)
	assert.Equal(t, Failure{Field: "label_color", Rule: "labelcolor"}, f)

	f, failed = Check(cardInput{Title: strings.Repeat("x", 501)})
	assert.True(t, failed)
	assert.Equal(t, "max", f.Rule)
}

func TestTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "To Do", Title("  To Do \n"))
	assert.Equal(t, "", Title("\t "))
}
