// Package pointio reads and writes point sets in the plain-text format the
// CLI and tests share: one "x, y" record per line, blank lines and lines
// starting with '#' ignored. A line may also carry several records
// separated by ';'.
package pointio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlarea/geom"
)

var (
	// ErrMalformedRecord indicates a record that is not two comma-separated integers.
	ErrMalformedRecord = errors.New("pointio: malformed record")
	// ErrNegativeCoordinate indicates a record with x < 0 or y < 0.
	ErrNegativeCoordinate = errors.New("pointio: negative coordinate")
)

const (
	commentPrefix   = "#"
	recordSeparator = ";"
	fieldSeparator  = ","
)

// Parse reads every record from r in order.
// Errors carry the 1-based line number and wrap ErrMalformedRecord or
// ErrNegativeCoordinate.
func Parse(r io.Reader) ([]geom.Coordinate, error) {
	var out []geom.Coordinate
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		for _, rec := range strings.Split(text, recordSeparator) {
			rec = strings.TrimSpace(rec)
			if rec == "" {
				continue
			}
			c, err := ParseRecord(rec)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, c)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pointio: read: %w", err)
	}
	return out, nil
}

// ParseRecord parses a single "x, y" record.
func ParseRecord(rec string) (geom.Coordinate, error) {
	fields := strings.Split(rec, fieldSeparator)
	if len(fields) != 2 {
		return geom.Coordinate{}, fmt.Errorf("%q: %w", rec, ErrMalformedRecord)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(fields[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(fields[1]))
	if errX != nil || errY != nil {
		return geom.Coordinate{}, fmt.Errorf("%q: %w", rec, ErrMalformedRecord)
	}
	if x < 0 || y < 0 {
		return geom.Coordinate{}, fmt.Errorf("%q: %w", rec, ErrNegativeCoordinate)
	}
	return geom.C(x, y), nil
}

// ReadFile parses the file at path; "-" reads standard input.
func ReadFile(path string) ([]geom.Coordinate, error) {
	if path == "-" || path == "" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointio: open: %w", err)
	}
	defer f.Close()

	pts, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}

// Write emits one "x, y" line per point.
func Write(w io.Writer, points []geom.Coordinate) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%d, %d\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}
