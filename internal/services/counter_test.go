package services

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountLinesAndWords(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLines int64
		wantWords int64
	}{
		{"empty", "", 0, 0},
		{"two lines", "Hello world\nThis is a test", 2, 6},
		{"trailing newline is not an extra line", "one two\n", 1, 2},
		{"single newline", "\n", 1, 0},
		{"blank lines count as lines", "a\n\n   \n\tb c\n", 4, 3},
		{"runs of whitespace collapse", "  alpha   beta\t\tgamma  ", 1, 3},
		{"crlf", "a b\r\nc d\r\n", 2, 4},
		{"lone carriage return", "a\rb\rc", 3, 3},
		{"cr then lf across lines", "a\r\n\r\nb", 3, 2},
		{"trailing cr", "x\r", 1, 1},
		{"csv row is one word without spaces", "id,name,age\n1,bob,42", 2, 2},
		{"unicode words", "héllo wörld\n日本 語", 2, 4},
		{"no-break space joins words", "a\u00A0b", 1, 1},
		{"next line char joins words", "a\u0085b", 1, 1},
		{"em space joins words", "a\u2003b c", 1, 2},
		{"em space only line is blank", "\u2003\u2003\nx", 2, 1},
		{"no-break space only line is a word", "\u00A0", 1, 1},
		{"vertical tab and form feed split", "a\tb\vc\fd", 1, 4},
		{"control characters only", "\x01\x02", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts, err := CountLinesAndWords(strings.NewReader(tt.content))
			require.NoError(t, err)

			assert.Equal(t, tt.wantLines, counts.Lines, "lines")
			assert.Equal(t, tt.wantWords, counts.Words, "words")
		})
	}
}

func TestCountLinesAndWords_LongLine(t *testing.T) {
	line := strings.Repeat("word ", 300_000)

	counts, err := CountLinesAndWords(strings.NewReader(line))
	require.NoError(t, err)

	assert.Equal(t, int64(1), counts.Lines)
	assert.Equal(t, int64(300_000), counts.Words)
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestCountLinesAndWords_ReadError(t *testing.T) {
	boom := errors.New("boom")

	counts, err := CountLinesAndWords(&failingReader{data: []byte("partial line\nmore"), err: boom})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Counts{}, counts)
}

func TestCountLinesAndWords_ReadErrorAfterCarriageReturn(t *testing.T) {
	_, err := CountLinesAndWords(&failingReader{data: []byte("a\r"), err: io.ErrUnexpectedEOF})

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
