package extract

import (
	"strings"
	"testing"
)

func TestFromTextATXHeadings(t *testing.T) {
	ext := FromText(strings.Join([]string{
		"# What is Widgetry",
		"",
		"Widgetry is a method for organizing widgets at scale.",
		"",
		"## Background",
		"Some context about the topic.",
		"### Deep dive",
	}, "\n"))

	if len(ext.Headings) != 3 {
		t.Fatalf("got %d headings, want 3: %+v", len(ext.Headings), ext.Headings)
	}
	if ext.Headings[0].Level != 1 || ext.Headings[0].Text != "What is Widgetry" {
		t.Errorf("headings[0] = %+v", ext.Headings[0])
	}
	if !ext.Headings[0].HasDirectAnswer {
		t.Error("definition line should classify as a direct answer")
	}
	if ext.Headings[1].Level != 2 || ext.Headings[2].Level != 3 {
		t.Errorf("levels = %d, %d; want 2, 3", ext.Headings[1].Level, ext.Headings[2].Level)
	}
	if ext.Headings[2].FollowingContent != "" {
		t.Errorf("trailing heading has FollowingContent %q", ext.Headings[2].FollowingContent)
	}
}

func TestFromTextSetextHeadings(t *testing.T) {
	ext := FromText(strings.Join([]string{
		"Main Title",
		"==========",
		"Intro paragraph under the title.",
		"",
		"Subsection",
		"----------",
		"Subsection content.",
	}, "\n"))

	if len(ext.Headings) != 2 {
		t.Fatalf("got %d headings, want 2: %+v", len(ext.Headings), ext.Headings)
	}
	if ext.Headings[0].Level != 1 {
		t.Errorf("setext === heading level = %d, want 1", ext.Headings[0].Level)
	}
	if ext.Headings[1].Level != 2 {
		t.Errorf("setext --- heading level = %d, want 2", ext.Headings[1].Level)
	}
	if !strings.Contains(ext.Headings[0].FollowingContent, "Intro paragraph") {
		t.Errorf("headings[0].FollowingContent = %q", ext.Headings[0].FollowingContent)
	}
}

func TestFromTextStripsPreamble(t *testing.T) {
	ext := FromText(strings.Join([]string{
		"Title: Some Site",
		"URL Source: https://example.com",
		"Markdown Content:",
		"# Real Heading",
		"Actual content line after the heading.",
	}, "\n"))

	if len(ext.Headings) != 1 {
		t.Fatalf("got %d headings, want 1: %+v", len(ext.Headings), ext.Headings)
	}
	if ext.Headings[0].Text != "Real Heading" {
		t.Errorf("heading = %q", ext.Headings[0].Text)
	}
	if strings.Contains(ext.Text, "URL Source") {
		t.Errorf("preamble kept in text: %q", ext.Text)
	}
}

func TestFromTextParagraphApproximation(t *testing.T) {
	ext := FromText(strings.Join([]string{
		"This line is comfortably longer than fifty characters and counts once.",
		"short line",
		"Another line that is comfortably longer than the fifty character bar.",
		"--------------------------------------------------------------------",
	}, "\n"))

	if ext.ParagraphCount != 2 {
		t.Errorf("ParagraphCount = %d, want 2", ext.ParagraphCount)
	}
}

func TestFromTextWordCount(t *testing.T) {
	ext := FromText("one two three\nfour five")
	if ext.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", ext.WordCount)
	}
}

// The DOM and flat-text pipelines must agree on equivalent content.
func TestExtractorEquivalence(t *testing.T) {
	html := `
		<html><body>
			<h1>Widget Guide</h1>
			<p>Widgetry is a method for organizing widgets at scale.</p>
			<h2>Getting Started</h2>
			<p>To begin with widgets, install the toolkit and run the wizard.</p>
			<h3>Troubleshooting</h3>
			<p>Check the logs first whenever a widget refuses to spin.</p>
		</body></html>`
	markdown := strings.Join([]string{
		"# Widget Guide",
		"",
		"Widgetry is a method for organizing widgets at scale.",
		"",
		"## Getting Started",
		"",
		"To begin with widgets, install the toolkit and run the wizard.",
		"",
		"### Troubleshooting",
		"",
		"Check the logs first whenever a widget refuses to spin.",
	}, "\n")

	domHeadings := HeadingsFromDoc(docFromHTML(t, html))
	textHeadings := FromText(markdown).Headings

	if len(domHeadings) != len(textHeadings) {
		t.Fatalf("DOM found %d headings, text found %d", len(domHeadings), len(textHeadings))
	}
	for i := range domHeadings {
		if domHeadings[i].Level != textHeadings[i].Level {
			t.Errorf("heading %d: DOM level %d, text level %d", i, domHeadings[i].Level, textHeadings[i].Level)
		}
		if domHeadings[i].Text != textHeadings[i].Text {
			t.Errorf("heading %d: DOM text %q, text variant %q", i, domHeadings[i].Text, textHeadings[i].Text)
		}
		if domHeadings[i].HasDirectAnswer != textHeadings[i].HasDirectAnswer {
			t.Errorf("heading %d: direct-answer flags disagree (DOM %v, text %v)",
				i, domHeadings[i].HasDirectAnswer, textHeadings[i].HasDirectAnswer)
		}
	}
}
