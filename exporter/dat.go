// Package exporter 将翼型坐标序列化为 .dat 文本（Selig 格式）。
package exporter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"naca/airfoil"
)

const MIMEType = "text/plain"

var ErrNoHeader = errors.New("exporter: missing designation line")

// FileName returns the download name for designation.
func FileName(designation string) string {
	return ASCII(designation) + ".dat"
}

// ToDat formats the export profile of cs under a designation header.
func ToDat(cs *airfoil.CurveSet, designation string) string {
	var sb strings.Builder
	// strings.Builder 写入不会失败
	_ = WriteDat(&sb, cs, designation)
	return sb.String()
}

// WriteDat writes the same text as ToDat to w.
func WriteDat(w io.Writer, cs *airfoil.CurveSet, designation string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, ASCII(designation)); err != nil {
		return err
	}
	for _, pt := range airfoil.ExportProfile(cs) {
		if _, err := fmt.Fprintf(bw, "%.6f  %.6f\n", pt.X, pt.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ASCII folds accented letters to their base letter and drops every
// other non-ASCII rune.
func ASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(t, s)
	if err != nil {
		// 退化为逐字符过滤
		var sb strings.Builder
		for _, r := range s {
			if r <= unicode.MaxASCII {
				sb.WriteRune(r)
			}
		}
		return sb.String()
	}
	return out
}

// ParseDat reads a profile written by WriteDat. Blank lines are skipped
// and columns may be separated by any whitespace.
func ParseDat(r io.Reader) (string, []airfoil.Point, error) {
	sc := bufio.NewScanner(r)
	var (
		name   string
		header bool
		pts    []airfoil.Point
		line   int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if !header {
			name, header = text, true
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return "", nil, fmt.Errorf("exporter: line %d: want 2 columns, got %d", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return "", nil, fmt.Errorf("exporter: line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return "", nil, fmt.Errorf("exporter: line %d: %w", line, err)
		}
		pts = append(pts, airfoil.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return "", nil, err
	}
	if !header {
		return "", nil, ErrNoHeader
	}
	return name, pts, nil
}
