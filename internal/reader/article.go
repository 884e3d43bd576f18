package reader

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/readerstyle/internal/catalog"
)

// Article is the text shown in the reader.
type Article struct {
	Title string
	Body  string
}

// SampleArticle is shown when no article file is given.
var SampleArticle = Article{
	Title: "On Reading Comfortably",
	Body: `Most of what we read on screens was laid out by someone else. The font, the size of the type, the colour of the page and how far the eye has to travel before the next line all arrive as a package, and the reader takes it or leaves it.

A reading view turns that around. The words stay the same but the page is yours: a heavier face when the light is poor, larger type late in the evening, a tinted background that is easier on tired eyes, or a narrow column that keeps each line short enough to follow without losing your place.

None of these choices should be permanent by accident. Try a combination, look at it against the text you are actually reading, and only then commit to it. Until you apply your changes the page keeps its current look, and if you close the settings halfway through, your unfinished choices will still be waiting when you open them again.

Open the settings with the arrow in the top-left corner, or press tab. Press escape or click anywhere on the page to put them away.`,
}

// LoadArticle reads an article from a text file. A first line of the form
// "# Title" becomes the title; otherwise the file name is used.
func LoadArticle(path string) (Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Article{}, fmt.Errorf("failed to read article: %w", err)
	}
	if !utf8.Valid(data) {
		return Article{}, fmt.Errorf("article %s is not valid UTF-8", path)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	first, rest, _ := strings.Cut(text, "\n")
	if title, ok := strings.CutPrefix(first, "# "); ok {
		return Article{Title: strings.TrimSpace(title), Body: strings.TrimSpace(rest)}, nil
	}

	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return Article{Title: name, Body: strings.TrimSpace(text)}, nil
}

// Wrap breaks text into lines no wider than width cells. Paragraphs are
// separated by blank lines and kept apart by one empty line. Words wider
// than width are split.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	for i, para := range splitParagraphs(text) {
		if i > 0 {
			lines = append(lines, "")
		}

		var (
			line      strings.Builder
			lineWidth int
		)
		flush := func() {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}

		for _, word := range strings.Fields(para) {
			w := runewidth.StringWidth(word)

			for w > width {
				if lineWidth > 0 {
					flush()
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				lines = append(lines, head)
				word = word[len(head):]
				w = runewidth.StringWidth(word)
			}
			if w == 0 {
				continue
			}

			switch {
			case lineWidth == 0:
				line.WriteString(word)
				lineWidth = w
			case lineWidth+1+w <= width:
				line.WriteByte(' ')
				line.WriteString(word)
				lineWidth += 1 + w
			default:
				flush()
				line.WriteString(word)
				lineWidth = w
			}
		}
		if lineWidth > 0 {
			flush()
		}
	}
	return lines
}

func splitParagraphs(text string) []string {
	var paras []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if strings.TrimSpace(p) != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// articlePadding is the horizontal padding inside the article page.
const articlePadding = 2

// RenderArticle renders a as a page styled by cfg. The page is
// cfg.ContentWidth.Columns wide, capped to maxWidth.
func RenderArticle(a Article, cfg catalog.Configuration, maxWidth int) string {
	cols := cfg.ContentWidth.Columns
	if cols <= 0 || cols > maxWidth {
		cols = maxWidth
	}
	textWidth := cols - 2*articlePadding
	if textWidth < 1 {
		textWidth = 1
	}

	gap := strings.Repeat("\n", cfg.FontSize.Spacing+1)
	body := strings.Join(Wrap(a.Body, textWidth), gap)

	style := ArticleStyle(cfg)
	title := style.Bold(true).Render(runewidth.Truncate(a.Title, textWidth, "…"))

	page := style.
		Width(cols).
		Padding(1, articlePadding)

	return page.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}
