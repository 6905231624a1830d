package gridfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const maxLineSize = 1 << 20

type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineReader{sc: sc}
}

// next returns the following line; ok is false at end of input.
func (lr *lineReader) next() (string, bool, error) {
	if !lr.sc.Scan() {
		return "", false, lr.sc.Err()
	}
	lr.line++
	return lr.sc.Text(), true, nil
}

// ints reads the next line as exactly n integers.
func (lr *lineReader) ints(n int, what string) ([]int, error) {
	text, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, parseErr(lr.line+1, "unexpected end of input, want %s", what)
	}
	return parseInts(text, n, lr.line, what)
}

func parseInts(text string, n, line int, what string) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) != n {
		return nil, parseErr(line, "%s: want %d values, got %d", what, n, len(fields))
	}
	vals := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, parseErr(line, "%s: %q is not an integer", what, f)
		}
		vals[i] = v
	}
	return vals, nil
}

func formatInts(b *strings.Builder, vals []int) {
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('\n')
}
