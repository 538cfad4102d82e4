package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageResolver_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		pageURL string
		body    string
		want    string
		wantOK  bool
	}{
		{
			name:    "root relative src",
			pageURL: "https://example.com/news/1",
			body:    `<p>text</p><img src="/img/x.jpg">`,
			want:    "https://example.com/img/x.jpg",
			wantOK:  true,
		},
		{
			name:    "absolute src kept",
			pageURL: "https://example.com/news/1",
			body:    `<img src="https://cdn.example.org/a.png">`,
			want:    "https://cdn.example.org/a.png",
			wantOK:  true,
		},
		{
			name:    "protocol relative src",
			pageURL: "https://example.com/news/1",
			body:    `<img src="//cdn.example.org/a.png">`,
			want:    "https://cdn.example.org/a.png",
			wantOK:  true,
		},
		{
			name:    "bare relative src",
			pageURL: "http://example.com:8080/news/1",
			body:    `<img src="img/a.png">`,
			want:    "http://example.com:8080/img/a.png",
			wantOK:  true,
		},
		{
			name:    "first non-empty src wins",
			pageURL: "https://example.com/",
			body:    `<img src=""><img alt="none"><img src="/second.jpg"><img src="/third.jpg">`,
			want:    "https://example.com/second.jpg",
			wantOK:  true,
		},
		{
			name:    "no image",
			pageURL: "https://example.com/news/1",
			body:    `<p>just text</p>`,
		},
		{
			name:    "empty body",
			pageURL: "https://example.com/news/1",
		},
		{
			name:    "relative src with unusable page url",
			pageURL: "not a url",
			body:    `<img src="/img/x.jpg">`,
		},
	}

	r := NewImageResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.pageURL, tt.body)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
