// Package puzzleio reads and writes the textual puzzle formats the CLI and
// HTTP layers accept: a newline-delimited "plain" format (one flat string
// of characters per puzzle, N*N of them) and a "formatted" grid (N lines
// of N characters). Grounded on the teacher's internal/puzzles loader for
// the file-reading shape, generalized from a fixed-width JSON puzzle bank
// to arbitrary-N text.
package puzzleio

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strings"

	"humansudoku/internal/engine"
)

// InputError reports a malformed or unreadable puzzle file.
type InputError struct {
	Path string
	Msg  string
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// ErrNotPerfectSquare is returned (wrapped) by DecodeFlat when a line's
// length is not a perfect square. LoadPlain reports the same failure as an
// InputError whose Msg holds that error's text; the InputError does not
// wrap ErrNotPerfectSquare, so errors.Is does not match it.
var ErrNotPerfectSquare = fmt.Errorf("line length is not a perfect square")

// LoadPlain reads path and returns the givens for the 1-indexed lineIndex
// puzzle among its non-blank, non-comment ("#...") lines. lineIndex is
// clamped to the last present line. Each character maps '.'/'0' to empty,
// '1'-'9' to that digit, and 'a'-'z'/'A'-'Z' to a base-26 value starting at
// 10 ('a'/'A' == 10), so boards wider than 9 can be expressed in one line.
func LoadPlain(path string, lineIndex int) ([]int, int, error) {
	lines, err := readSignificantLines(path)
	if err != nil {
		return nil, 0, err
	}
	if len(lines) == 0 {
		return nil, 0, &InputError{Path: path, Msg: "no puzzle lines found"}
	}
	if lineIndex < 1 {
		lineIndex = 1
	}
	if lineIndex > len(lines) {
		lineIndex = len(lines)
	}
	givens, n, err := DecodeFlat(lines[lineIndex-1])
	if err != nil {
		return nil, 0, &InputError{Path: path, Msg: err.Error()}
	}
	return givens, n, nil
}

// DecodeFlat parses a single flat line (no file involved) the same way
// LoadPlain decodes a puzzle line -- used directly by HTTP handlers that
// receive a puzzle string in a JSON request body instead of a file path.
func DecodeFlat(line string) ([]int, int, error) {
	root := math.Sqrt(float64(len(line)))
	n := int(root)
	if n*n != len(line) {
		return nil, 0, fmt.Errorf("%w: length %d", ErrNotPerfectSquare, len(line))
	}

	givens := make([]int, len(line))
	for i, ch := range line {
		v, err := decodeChar(ch)
		if err != nil {
			return nil, 0, fmt.Errorf("cell %d: %w", i, err)
		}
		givens[i] = v
	}
	return givens, n, nil
}

// LoadFormatted reads path as N lines of N characters each ('.' or a digit
// for N<=9; the base-26 letter encoding for N>9), returning the flattened
// givens. N is the number of rows; any row whose length differs from N is
// an InputError.
func LoadFormatted(path string) ([]int, int, error) {
	lines, err := readSignificantLines(path)
	if err != nil {
		return nil, 0, err
	}
	if len(lines) == 0 {
		return nil, 0, &InputError{Path: path, Msg: "no puzzle lines found"}
	}
	n := len(lines)
	givens := make([]int, 0, n*n)
	for row, line := range lines {
		if len(line) != n {
			return nil, 0, &InputError{Path: path, Msg: fmt.Sprintf("row %d has %d characters, want %d", row, len(line), n)}
		}
		for col, ch := range line {
			v, err := decodeChar(ch)
			if err != nil {
				return nil, 0, &InputError{Path: path, Msg: fmt.Sprintf("row %d col %d: %v", row, col, err)}
			}
			givens = append(givens, v)
		}
	}
	return givens, n, nil
}

func readSignificantLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Msg: err.Error()}
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &InputError{Path: path, Msg: err.Error()}
	}
	return lines, nil
}

func decodeChar(ch rune) (int, error) {
	switch {
	case ch == '.' || ch == '0':
		return 0, nil
	case ch >= '1' && ch <= '9':
		return int(ch - '0'), nil
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10, nil
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10, nil
	default:
		return 0, fmt.Errorf("invalid character %q", ch)
	}
}

// encodeValue renders a resolved value using the same digit/letter scheme
// decodeChar accepts, for Render's output.
func encodeValue(v int) string {
	if v <= 9 {
		return fmt.Sprintf("%d", v)
	}
	return string(rune('a' + v - 10))
}

// Render prints f as a column-numbered grid: resolved cells show their
// value, unresolved cells show "{d1d2...}" with their remaining candidates
// in ascending order.
func Render(f *engine.Field) string {
	n := f.N()
	var b strings.Builder

	b.WriteString("   ")
	for col := 1; col <= n; col++ {
		fmt.Fprintf(&b, "%3s", encodeValue(col))
	}
	b.WriteString("\n")

	for row := 1; row <= n; row++ {
		fmt.Fprintf(&b, "%2d ", row)
		for col := 1; col <= n; col++ {
			c := f.Cell(engine.NewCoord(n, row, col))
			if c.IsResolved() {
				fmt.Fprintf(&b, "%3s", encodeValue(c.Value()))
				continue
			}
			var digits strings.Builder
			digits.WriteString("{")
			for _, d := range c.Candidates().ToSlice() {
				digits.WriteString(encodeValue(d))
			}
			digits.WriteString("}")
			fmt.Fprintf(&b, "%3s", digits.String())
		}
		b.WriteString("\n")
	}
	return b.String()
}
