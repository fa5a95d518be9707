// Package record decodes the line-oriented text records of the catalog.
//
// A record is a fixed sequence of newline-terminated fields. Text fields are
// bounded and silently truncated; numeric fields are parsed best effort, so a
// malformed value reads as zero rather than failing the record.
package record

import (
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/agentstation/skycatalog/pkg/constants"
	"github.com/agentstation/skycatalog/pkg/sky"
)

// ReadLine reads one line from r, consuming bytes up to and including the
// next '\n'. A trailing '\r' is dropped. Lines longer than capacity are read
// to the end and truncated to at most capacity bytes without splitting a
// UTF-8 sequence. A capacity of zero or less means no bound.
//
// The error is io.EOF when the stream ended before a newline, or the error
// returned by r.
func ReadLine(r io.ByteReader, capacity int) (string, error) {
	// Keep room for a trailing '\r' plus one byte to find a rune boundary.
	keep := capacity + 2
	buf := make([]byte, 0, min(max(keep, 0), 64))
	overflow := false

	var err error
	for {
		var c byte
		c, err = r.ReadByte()
		if err != nil || c == '\n' {
			break
		}
		if capacity > 0 && len(buf) >= keep {
			overflow = true
			continue
		}
		buf = append(buf, c)
	}

	if !overflow && len(buf) > 0 && buf[len(buf)-1] == '\r' {
		buf = buf[:len(buf)-1]
	}
	if capacity > 0 && len(buf) > capacity {
		buf = truncate(buf, capacity)
	}
	return string(buf), err
}

// truncate cuts b to at most n bytes on a rune boundary.
func truncate(b []byte, n int) []byte {
	cut := n
	for cut > 0 && !utf8.RuneStart(b[cut]) {
		cut--
	}
	return b[:cut]
}

// ParseObject decodes one object record of the given category. Stars carry
// three more lines than other categories: RA drift, Dec drift and parallax.
// For other categories those fields are nil.
//
// A nil reader, or a read failure other than end of stream, yields the zero
// sentinel Object. A record that ends early leaves the remaining fields empty
// or zero.
func ParseObject(r io.ByteReader, id int64, cat sky.Category) sky.Object {
	if r == nil {
		return sky.Object{}
	}

	p := parser{r: r}
	obj := sky.Object{
		ID:            id,
		Category:      cat,
		Designation:   p.text(constants.DesignationCapacity),
		Name:          p.text(constants.NameCapacity),
		Constellation: p.text(constants.AbbreviationCapacity),
		RA:            p.number(),
		Dec:           p.number(),
		Magnitude:     p.number(),
	}
	if cat.HasStellarMotion() {
		obj.RADrift = sky.Measured(p.number())
		obj.DecDrift = sky.Measured(p.number())
		obj.Parallax = sky.Measured(p.number())
	}

	if p.err != nil {
		return sky.Object{}
	}
	return obj
}

// ParseCount decodes a count file: the leading decimal integer of its first
// line. A nil reader, a failed read, or a line without digits yields
// sky.CountUnknown.
func ParseCount(r io.ByteReader) sky.Count {
	if r == nil {
		return sky.CountUnknown
	}
	line, err := ReadLine(r, constants.CountCapacity)
	if err != nil && err != io.EOF {
		return sky.CountUnknown
	}
	n, ok := ParseInt(line)
	if !ok || n < 0 {
		return sky.CountUnknown
	}
	return sky.Count(n)
}

// ParseTranslation decodes a translation file: its first line, bounded to
// the full name capacity. A nil reader yields "".
func ParseTranslation(r io.ByteReader) string {
	if r == nil {
		return ""
	}
	line, err := ReadLine(r, constants.FullNameCapacity)
	if err != nil && err != io.EOF {
		return ""
	}
	return line
}

// parser reads successive fields and remembers the first hard read error.
// End of stream is not an error: later fields read as empty.
type parser struct {
	r   io.ByteReader
	err error
	eof bool
}

func (p *parser) text(capacity int) string {
	if p.err != nil || p.eof {
		return ""
	}
	line, err := ReadLine(p.r, capacity)
	switch {
	case err == io.EOF:
		p.eof = true
	case err != nil:
		p.err = err
		return ""
	}
	return line
}

func (p *parser) number() float64 {
	return ParseFloat(p.text(constants.NumberCapacity))
}

// ParseFloat converts the longest numeric prefix of s, after leading
// whitespace, to a float64. It returns 0 when there is none.
func ParseFloat(s string) float64 {
	i := skipSpace(s, 0)
	start := i
	i = skipSign(s, i)

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	end := i

	// An exponent only counts when it has digits.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := skipSign(s, i+1)
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			end = j
		}
	}

	f, err := strconv.ParseFloat(s[start:end], 64)
	if err != nil {
		// Out of range values come back as ±Inf with an error; keep them.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return 0
	}
	return f
}

// ParseInt converts the leading decimal integer of s, after leading
// whitespace. It reports false when s has no leading digits.
func ParseInt(s string) (int64, bool) {
	i := skipSpace(s, 0)
	start := i
	i = skipSign(s, i)
	digitsStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digitsStart {
		return 0, false
	}
	n, err := strconv.ParseInt(s[start:i], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\v' || s[i] == '\f' || s[i] == '\r' || s[i] == '\n') {
		i++
	}
	return i
}

func skipSign(s string, i int) int {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
