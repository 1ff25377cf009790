package extract

import (
	"bufio"
	"strings"

	"github.com/aireadyhq/crawler/models"
	"github.com/aireadyhq/crawler/pkg/score"
)

// markdownPreamble marks the start of the content section in rendering-proxy
// output; everything before it is response metadata.
const markdownPreamble = "Markdown Content:"

// paragraphLineThreshold approximates paragraphs in flat text: lines longer
// than this that are not heading underlines count as one paragraph each.
const paragraphLineThreshold = 50

// TextExtraction is the flat-text counterpart of the DOM extraction pass.
type TextExtraction struct {
	Headings       []models.Heading
	WordCount      int
	ParagraphCount int
	Text           string
}

// FromText parses pre-rendered markdown or plain text: ATX (`#`..`######`)
// and setext (`===`/`---` underline) headings, with following content taken
// from the next non-empty non-heading lines. Behaviorally equivalent to
// HeadingsFromDoc for matching content.
func FromText(raw string) TextExtraction {
	if idx := strings.Index(raw, markdownPreamble); idx >= 0 {
		raw = raw[idx+len(markdownPreamble):]
	}

	lines := readLines(raw)
	ext := TextExtraction{Text: strings.TrimSpace(raw)}
	ext.WordCount = len(strings.Fields(ext.Text))

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if isUnderline(trimmed) {
			continue
		}
		if trimmed != "" && len(trimmed) > paragraphLineThreshold {
			ext.ParagraphCount++
		}

		level, text := headingAt(lines, i)
		if level == 0 {
			continue
		}

		following := followingLines(lines, i)
		ext.Headings = append(ext.Headings, models.Heading{
			Level:            level,
			Text:             text,
			HasDirectAnswer:  score.IsDirectAnswer(following),
			FollowingContent: following,
		})
	}

	return ext
}

// headingAt reports the heading level and text if lines[i] is a heading
// line, either ATX-style or setext-style (underlined by the next line).
func headingAt(lines []string, i int) (int, string) {
	trimmed := strings.TrimSpace(lines[i])
	if trimmed == "" {
		return 0, ""
	}

	if strings.HasPrefix(trimmed, "#") {
		level := 0
		for level < len(trimmed) && trimmed[level] == '#' && level < 6 {
			level++
		}
		text := strings.TrimSpace(trimmed[level:])
		if text == "" {
			return 0, ""
		}
		return level, text
	}

	if i+1 < len(lines) {
		underline := strings.TrimSpace(lines[i+1])
		if isUnderline(underline) {
			if underline[0] == '=' {
				return 1, trimmed
			}
			return 2, trimmed
		}
	}

	return 0, ""
}

// followingLines concatenates the non-empty, non-heading lines after a
// heading, up to the storage cap.
func followingLines(lines []string, headingIdx int) string {
	var b strings.Builder

	start := headingIdx + 1
	// skip the setext underline itself
	if start < len(lines) && isUnderline(strings.TrimSpace(lines[start])) {
		start++
	}

	for j := start; j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" {
			continue
		}
		if level, _ := headingAt(lines, j); level > 0 {
			break
		}
		if isUnderline(trimmed) {
			break
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(trimmed)
		if b.Len() >= followingStoreLimit {
			break
		}
	}

	return truncate(b.String(), followingStoreLimit)
}

// isUnderline reports whether a line is a setext heading underline: at least
// three characters, all '=' or all '-'.
func isUnderline(line string) bool {
	if len(line) < 3 {
		return false
	}
	ch := line[0]
	if ch != '=' && ch != '-' {
		return false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != ch {
			return false
		}
	}
	return true
}

func readLines(raw string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
