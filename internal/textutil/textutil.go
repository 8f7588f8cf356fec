// Package textutil cleans up model output before it is shown to parents.
package textutil

import (
	"errors"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// markupPattern matches tags the model actually emits. Anything else in angle
// brackets (autolinks, "x<y and y>z") is plain text.
var markupPattern = regexp.MustCompile(`(?i)</?(?:` + tagAlternation + `)(?:\s[^>]*)?/?>`)

const tagAlternation = `p|br|b|strong|em|i|u|span|a|ul|ol|li|div|h[1-6]|blockquote|pre|code|table|thead|tbody|tr|td|th|section|article|html|head|body|script|style|noscript`

// Tags whose contents never belong in an answer.
var ignoreTags = map[string]bool{
	"script": true, "style": true, "head": true, "noscript": true,
}

// Block-level tags become line breaks.
var blockTags = map[string]bool{
	"p": true, "div": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "br": true, "blockquote": true, "pre": true,
	"table": true, "tr": true, "section": true, "article": true,
}

var knownTag = regexp.MustCompile(`^(?:` + tagAlternation + `)$`)

// StripHTML removes markup the model sometimes emits despite being told to
// answer in plain text. Block elements become line breaks. Text without any
// recognised tags is only trimmed, so stray entities and angle brackets in
// plain answers survive. Unrecognised tags inside markup are kept verbatim.
func StripHTML(s string) string {
	s = strings.TrimSpace(s)
	if !markupPattern.MatchString(s) {
		return s
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				log.Warnf("Failed to parse answer markup, returning it unchanged: %v", err)
				return s
			}
			return normalizeLines(b.String())
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch {
			case !knownTag.MatchString(tag):
				if skip == 0 {
					b.Write(z.Raw())
				}
			case ignoreTags[tag]:
				if tt == html.StartTagToken {
					skip++
				} else if tt == html.EndTagToken && skip > 0 {
					skip--
				}
			case skip == 0 && blockTags[tag]:
				b.WriteString("\n")
			}
		}
	}
}

// normalizeLines collapses whitespace inside each line and drops blank lines.
func normalizeLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
)

func sentenceTokenizer() *sentences.DefaultSentenceTokenizer {
	tokenizerOnce.Do(func() {
		t, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			log.Errorf("Failed to load English sentence tokenizer: %v", err)
			return
		}
		tokenizer = t
	})
	return tokenizer
}

// FirstSentences keeps the first n sentences of text. n <= 0 keeps everything.
func FirstSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	if n <= 0 || text == "" {
		return text
	}

	t := sentenceTokenizer()
	if t == nil {
		return text
	}

	sents := t.Tokenize(text)
	if len(sents) <= n {
		return text
	}
	kept := make([]string, 0, n)
	for _, s := range sents {
		if st := strings.TrimSpace(s.Text); st != "" {
			kept = append(kept, st)
		}
		if len(kept) == n {
			break
		}
	}
	return strings.Join(kept, " ")
}

// Preview returns the first sentence of text, cut to at most maxRunes runes.
func Preview(text string, maxRunes int) string {
	p := FirstSentences(StripHTML(text), 1)
	p = strings.Join(strings.Fields(p), " ")
	if maxRunes <= 0 {
		return p
	}
	r := []rune(p)
	if len(r) <= maxRunes {
		return p
	}
	if maxRunes == 1 {
		return "…"
	}
	return string(r[:maxRunes-1]) + "…"
}
