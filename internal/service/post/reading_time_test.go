package post_service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int32
	}{
		{
			name:    "Empty content",
			content: "",
			want:    0,
		},
		{
			name:    "Whitespace only",
			content: "   \n\t  ",
			want:    0,
		},
		{
			name:    "Single word",
			content: "hello",
			want:    1,
		},
		{
			name:    "Short paragraph rounds up to one minute",
			content: "a quick story about a dragon and a wizard",
			want:    1,
		},
		{
			name:    "Exactly two hundred words",
			content: strings.Repeat("word ", 200),
			want:    1,
		},
		{
			name:    "Just over two hundred words",
			content: strings.Repeat("word ", 201),
			want:    2,
		},
		{
			name:    "Five hundred words",
			content: strings.Repeat("word ", 500),
			want:    3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateReadingTime(tt.content))
		})
	}
}
