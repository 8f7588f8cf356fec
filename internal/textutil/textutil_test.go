package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "  Fish & chips for Year 8.  ", "Fish & chips for Year 8."},
		{"paragraphs become lines", "<p>Hello <b>there</b></p><p>Second</p>", "Hello there\nSecond"},
		{"list items", "<ul><li>Algebra</li><li>Physics</li></ul>", "Algebra\nPhysics"},
		{"script dropped", "<p>Safe</p><script>alert(1)</script>", "Safe"},
		{"entities decoded inside markup", "<p>Maths &amp; Science</p>", "Maths & Science"},
		{"empty", "   ", ""},
		{"autolink is not markup", "Book here: <https://rightsteps.example/tutors/emily>.", "Book here: <https://rightsteps.example/tutors/emily>."},
		{"comparison is not markup", "If x<y and y>z, start with Algebra.", "If x<y and y>z, start with Algebra."},
		{"unknown tags kept inside markup", "<p>If x<y and y>z, see <https://rightsteps.example>.</p>", "If x<y and y>z, see <https://rightsteps.example>."},
		{"links keep their text", "<p>See <a href=\"/tutors/emily\">Dr. Emily</a>.</p>", "See Dr. Emily."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}

func TestFirstSentences(t *testing.T) {
	text := "Maths is improving. Science needs work. Book a tutor today."

	assert.Equal(t, "Maths is improving. Science needs work.", FirstSentences(text, 2))
	assert.Equal(t, text, FirstSentences(text, 0))
	assert.Equal(t, text, FirstSentences(text, 5))
	assert.Equal(t, "", FirstSentences("   ", 1))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "First sen…", Preview("<p>First sentence here. Second one.</p>", 10))
	assert.Equal(t, "First sentence here.", Preview("First sentence here. Second one.", 0))
	assert.Equal(t, "Short.", Preview("Short.", 50))
}

func TestCleanFileContent(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("You are a\u00a0helpful advisor.\r\nBe kind\xff.")...)
	assert.Equal(t, "You are a helpful advisor.\nBe kind\uFFFD.", CleanFileContent(in, "prompt.txt"))

	assert.Equal(t, "plain", CleanFileContent([]byte("plain"), "x"))
}
