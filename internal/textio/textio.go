// Package textio reads points from and writes centroids to line-oriented text.
//
// Input: one point per line, coordinates separated by commas and/or
// whitespace. A comma must separate two values, so "1,,2" and "1,2," are
// syntax errors. Blank lines are skipped and the last line does not need a
// trailing newline.
//
// Output: one centroid per line, coordinates formatted with four decimals and
// separated by commas.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/kmeans/internal/pointset"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 64 << 20

// ErrSyntax reports a value that is not a number.
type ErrSyntax struct {
	Line  int
	Field int
	Value string
	cause error
}

func (e *ErrSyntax) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("line %d field %d: empty value", e.Line, e.Field)
	}
	return fmt.Sprintf("line %d field %d: invalid number %q", e.Line, e.Field, e.Value)
}

func (e *ErrSyntax) Unwrap() error { return e.cause }

// splitFields splits a line on commas, then each comma-separated part on
// whitespace. A part holding no value yields an empty field.
func splitFields(line string, dst []string) []string {
	dst = dst[:0]
	if strings.TrimSpace(line) == "" {
		return dst
	}
	for _, part := range strings.Split(line, ",") {
		values := strings.Fields(part)
		if len(values) == 0 {
			dst = append(dst, "")
			continue
		}
		dst = append(dst, values...)
	}
	return dst
}

// ReadPoints parses r line by line and appends each point to b.
// It returns the number of lines consumed.
func ReadPoints(r io.Reader, b *pointset.Builder) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	var (
		row    []float64
		fields []string
	)
	for sc.Scan() {
		line++
		fields = splitFields(sc.Text(), fields)
		if len(fields) == 0 {
			continue
		}

		row = row[:0]
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return line, &ErrSyntax{Line: line, Field: i + 1, Value: f, cause: err}
			}
			row = append(row, v)
		}

		if err := b.Append(row); err != nil {
			return line, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return line, fmt.Errorf("read input: %w", err)
	}

	return line, nil
}

// WriteCentroids writes one line per row, each value formatted as %.4f.
func WriteCentroids(w io.Writer, rows [][]float64) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, row := range rows {
		buf = buf[:0]
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendFloat(buf, v, 'f', 4, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
