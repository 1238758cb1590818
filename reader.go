package sexpr

import (
	"strconv"
	"strings"
)

func isNum(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isAlpha(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isAlphanumeric(ch byte) bool {
	return isAlpha(ch) || isNum(ch)
}

// cursor is the read position into the source of one evaluation. It only
// ever moves forward.
type cursor struct {
	src string
	pos int
}

func newCursor(src string) *cursor {
	return &cursor{src: src}
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.src)
}

// peek returns the current byte, or 0 at the end of the source.
func (c *cursor) peek() byte {
	if c.atEnd() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) rest() string {
	return c.src[c.pos:]
}

// skipSpaces skips the space character only; tabs and newlines are not
// separators.
func (c *cursor) skipSpaces() {
	for c.peek() == ' ' {
		c.pos++
	}
}

// consumePrefix advances past prefix if the source continues with it.
func (c *cursor) consumePrefix(prefix string) bool {
	if !strings.HasPrefix(c.rest(), prefix) {
		return false
	}
	c.pos += len(prefix)
	return true
}

// identifierEnd returns the offset just past the identifier starting at the
// cursor, without moving it. The cursor must be on an alphabetic byte.
func (c *cursor) identifierEnd() int {
	end := c.pos + 1
	for end < len(c.src) && isAlphanumeric(c.src[end]) {
		end++
	}
	return end
}

func (c *cursor) readIdentifier() string {
	end := c.identifierEnd()
	name := c.src[c.pos:end]
	c.pos = end
	return name
}

// readNumber reads an optionally negative run of decimal digits.
func (c *cursor) readNumber() (Number, error) {
	start := c.pos
	end := start
	if end < len(c.src) && c.src[end] == '-' {
		end++
	}
	digits := end
	for end < len(c.src) && isNum(c.src[end]) {
		end++
	}
	if end == digits {
		return 0, newError(SyntaxError, start, "expected digits after '-'")
	}

	n, err := strconv.ParseInt(c.src[start:end], 10, 64)
	if err != nil {
		return 0, newError(SyntaxError, start, "invalid number %q: %v", c.src[start:end], err)
	}
	c.pos = end
	return Number(n), nil
}

func (c *cursor) expect(ch byte) error {
	if c.peek() != ch {
		return newError(SyntaxError, c.pos, "expected '%c': %s", ch, c.rest())
	}
	c.pos++
	return nil
}
