package services

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// Counts holds the result of scanning a file.
type Counts struct {
	Lines int64
	Words int64
}

// CountLinesAndWords reads r to the end in a single pass.
//
// "\n", "\r\n" and a lone "\r" all terminate a line, and trailing content
// without a terminator is a line too. Words are counted per line: the line is
// trimmed of control characters and split on runs of ASCII whitespace
// (space, \t, \n, \v, \f, \r). Blank lines add nothing. Non-breaking spaces
// and U+0085 are word characters.
func CountLinesAndWords(r io.Reader) (Counts, error) {
	var counts Counts
	var line []byte

	flush := func() {
		counts.Lines++
		counts.Words += countWords(string(line))
		line = line[:0]
	}

	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				flush()
			}
			return counts, nil
		}
		if err != nil {
			return Counts{}, err
		}

		switch b {
		case '\n':
			flush()
		case '\r':
			flush()
			next, err := br.Peek(1)
			if err != nil && !errors.Is(err, io.EOF) {
				return Counts{}, err
			}
			if len(next) == 1 && next[0] == '\n' {
				_, _ = br.ReadByte()
			}
		default:
			line = append(line, b)
		}
	}
}

func countWords(line string) int64 {
	if isBlank(line) {
		return 0
	}
	trimmed := strings.TrimFunc(line, func(r rune) bool { return r <= ' ' })
	words := int64(len(strings.FieldsFunc(trimmed, isASCIISpace)))
	// A non-blank line made only of control characters still holds one word.
	if words == 0 {
		return 1
	}
	return words
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isBlank reports whether line holds only whitespace. The information
// separators U+001C..U+001F count as whitespace; non-breaking spaces do not.
func isBlank(line string) bool {
	for _, r := range line {
		if !isWhitespace(r) {
			return false
		}
	}
	return true
}

func isWhitespace(r rune) bool {
	switch {
	case isASCIISpace(r), r >= 0x1C && r <= 0x1F:
		return true
	case r == '\u00A0', r == '\u2007', r == '\u202F':
		return false
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}
