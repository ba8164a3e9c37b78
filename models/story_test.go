package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostname(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "scheme with www", url: "http://www.example.com/x", want: "example.com"},
		{name: "scheme without www", url: "https://news.ycombinator.com/item?id=1", want: "news.ycombinator.com"},
		{name: "no scheme", url: "example.com/some/path", want: "example.com"},
		{name: "no scheme with www", url: "www.example.com", want: "example.com"},
		{name: "bare host", url: "example.com", want: "example.com"},
		{name: "www only in path", url: "http://example.com/www.other.com", want: "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hostname(tt.url))
		})
	}
}

func TestStory_Hostname(t *testing.T) {
	s := Story{StoryID: "s1", URL: "http://www.example.com/x"}
	assert.Equal(t, "example.com", s.Hostname())
}
