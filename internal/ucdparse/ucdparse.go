/*
Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Every data line starts with a code point or a code point range, followed by
fields separated by semicolons. Comments start with '#'. Ranges in
UnicodeData.txt, given as pairs of "<..., First>" and "<..., Last>" lines,
are joined into a single item.

    err := ucdparse.Parse(file, func(t *ucdparse.Token) {
        from, to := t.Range()
        class := t.Field(1)
        ...
    })

The decancer table generator reads its own curated data files with this
package as well; they are written in the same format.
*/
package ucdparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Token is a data item, i.e. a line of an UCD file.
type Token struct {
	LineNo   int      // line of the item within the input source
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // fields following the code point, trimmed
	Comment  string   // rest-of-line comment
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#U..%#U %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// Field gets field #i (1…n) from the current data item. Field #0 would be
// the code point (range) and is accessed with Range.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Runes interprets field #i as a space-separated sequence of hex code
// points. An empty field is an empty sequence.
func (token *Token) Runes(i int) ([]rune, error) {
	var runes []rune
	for _, hex := range strings.Fields(token.Field(i)) {
		r, err := parseHexRune(hex)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d, field %d", token.LineNo, i)
		}
		runes = append(runes, r)
	}
	return runes, nil
}

// Scanner reads data items from an UCD file.
type Scanner struct {
	lines  *bufio.Scanner
	lineNo int
	Token  *Token // last token produced by scanner
	err    error
}

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Scanner{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data item of an UCD file and calls callback f
// on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.Err()
}

// Next advances to the next data item. It returns false at the end of the
// input or after an error.
func (sc *Scanner) Next() bool {
	if sc.err != nil {
		return false
	}
	token, ok := sc.scanItem()
	if !ok {
		return false
	}
	name := token.Field(1)
	if strings.HasPrefix(name, "<") && strings.HasSuffix(name, ", First>") {
		last, ok := sc.scanItem()
		if !ok || !strings.HasSuffix(last.Field(1), ", Last>") {
			if sc.err == nil {
				sc.err = errors.Errorf("line %d: range %s not closed", token.LineNo, name)
			}
			return false
		}
		token.runeTo = last.runeFrom
		token.Fields[0] = strings.TrimSuffix(name, ", First>") + ">"
	}
	sc.Token = token
	return true
}

// Err returns the first error encountered, if any.
func (sc *Scanner) Err() error {
	if sc.err != nil {
		return sc.err
	}
	return sc.lines.Err()
}

// scanItem reads lines up to the next data line.
func (sc *Scanner) scanItem() (*Token, bool) {
	for sc.lines.Scan() {
		sc.lineNo++
		text := sc.lines.Text()
		token := &Token{LineNo: sc.lineNo}
		if i := strings.IndexByte(text, '#'); i >= 0 {
			token.Comment = strings.TrimSpace(text[i+1:])
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if err := token.parseRange(fields[0]); err != nil {
			sc.err = err
			return nil, false
		}
		token.Fields = fields[1:]
		return token, true
	}
	return nil, false
}

func (token *Token) parseRange(field string) (err error) {
	from, to := field, field
	if i := strings.Index(field, ".."); i >= 0 {
		from, to = field[:i], field[i+2:]
	}
	if token.runeFrom, err = parseHexRune(from); err != nil {
		return errors.Wrapf(err, "line %d", token.LineNo)
	}
	if token.runeTo, err = parseHexRune(to); err != nil {
		return errors.Wrapf(err, "line %d", token.LineNo)
	}
	if token.runeTo < token.runeFrom {
		return errors.Errorf("line %d: invalid range %s", token.LineNo, field)
	}
	return nil
}

func parseHexRune(hex string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(hex), 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "hex decoding error")
	}
	if n > 0x10ffff {
		return 0, errors.Errorf("code point %s out of range", hex)
	}
	return rune(n), nil
}
