package crawler

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestDetectSPA(t *testing.T) {
	tests := []struct {
		name         string
		html         string
		wordCount    int
		headingCount int
		want         bool
	}{
		{
			name:      "react mount point with sparse text",
			html:      `<html><body><div id="root"></div></body></html>`,
			wordCount: 12,
			want:      true,
		},
		{
			name:      "vue mount point",
			html:      `<html><body><div id="app"></div></body></html>`,
			wordCount: 40,
			want:      true,
		},
		{
			name:      "next.js mount point",
			html:      `<html><body><div id="__next"></div></body></html>`,
			wordCount: 5,
			want:      true,
		},
		{
			name:      "angular version attribute",
			html:      `<html><body><div ng-version="17.0.1"></div></body></html>`,
			wordCount: 30,
			want:      true,
		},
		{
			name:      "module script",
			html:      `<html><body><script type="module" src="/main.js"></script></body></html>`,
			wordCount: 8,
			want:      true,
		},
		{
			name:         "marker but plenty of static content",
			html:         `<html><body><div id="root"></div></body></html>`,
			wordCount:    500,
			headingCount: 4,
			want:         false,
		},
		{
			name:      "no markers but nearly empty page",
			html:      `<html><body><p>Loading...</p></body></html>`,
			wordCount: 3,
			want:      true,
		},
		{
			name:         "sparse page with headings is trusted",
			html:         `<html><body><h1>Hi</h1></body></html>`,
			wordCount:    20,
			headingCount: 1,
			want:         false,
		},
		{
			name:         "ordinary server-rendered page",
			html:         `<html><body><h1>Welcome</h1><p>text</p></body></html>`,
			wordCount:    350,
			headingCount: 3,
			want:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromHTML(t, tt.html)
			got, reason := DetectSPA(doc, tt.wordCount, tt.headingCount)
			if got != tt.want {
				t.Errorf("DetectSPA = %v, want %v", got, tt.want)
			}
			if got && reason == "" {
				t.Error("detection reported without a reason")
			}
			if !got && reason != "" {
				t.Errorf("reason %q reported without detection", reason)
			}
		})
	}
}
