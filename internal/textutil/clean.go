package textutil

import (
	"bytes"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Characters editors paste into prompt files that the model treats as noise.
var charReplacer = strings.NewReplacer(
	"\u00a0", " ",
	"\u200b", "",
	"\ufeff", "",
	"\r\n", "\n",
)

// CleanFileContent prepares a hand-edited text file for use as model input.
// It drops a leading BOM, replaces invalid UTF-8 and normalizes line endings.
// src only labels the warning.
func CleanFileContent(content []byte, src string) string {
	content = bytes.TrimPrefix(content, utf8BOM)

	if !utf8.Valid(content) {
		log.WithField("source", src).Warn("Invalid UTF-8, replacing invalid characters")
		content = bytes.ToValidUTF8(content, []byte(string(utf8.RuneError)))
	}
	return charReplacer.Replace(string(content))
}
