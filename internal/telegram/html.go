package telegram

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainInstruction reduces a server-provided rich-text task instruction to
// plain text safe to embed in a message. Links keep their target so the task
// stays actionable; block boundaries become line breaks.
func PlainInstruction(raw string) string {
	if !strings.ContainsRune(raw, '<') {
		return strings.TrimSpace(raw)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}

	doc.Find("script, style").Remove()

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		label := strings.TrimSpace(sel.Text())
		if label == "" || label == href {
			sel.SetText(href)
			return
		}
		sel.SetText(label + " (" + href + ")")
	})

	doc.Find("br").Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithHtml("\n")
	})
	doc.Find("p, li, div, h1, h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	return collapseBlank(doc.Text())
}

func collapseBlank(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
