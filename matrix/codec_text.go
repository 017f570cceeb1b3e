package matrix

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// decodeYAML reads a list of rows. JSON is accepted as YAML flow syntax.
// Entries may be integers, integral floats or booleans.
func decodeYAML(r io.Reader) ([][]int64, error) {
	var raw [][]interface{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, ErrEmpty
		}
		return nil, err
	}
	rows := make([][]int64, len(raw))
	for i, row := range raw {
		rows[i] = make([]int64, len(row))
		for j, v := range row {
			x, err := entry(v)
			if err != nil {
				return nil, fmt.Errorf("[%d][%d]: %w", i, j, err)
			}
			rows[i][j] = x
		}
	}

	return rows, nil
}

func entry(v interface{}) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, ErrNonBinary
		}
		return int64(x), nil
	case float64:
		return integral(x)
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("value %v (%T): %w", v, v, ErrNonBinary)
	}
}

// integral converts a whole float; fractions and NaN are not adjacency
// entries.
func integral(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("value %v: %w", f, ErrNonBinary)
	}

	return int64(f), nil
}

// encodeYAML writes one flow sequence per row.
func encodeYAML(w io.Writer, rows [][]int64) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range rows {
		row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range r {
			row.Content = append(row.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!int",
				Value: strconv.FormatInt(v, 10),
			})
		}
		doc.Content = append(doc.Content, row)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// encodeJSON writes the rows as a JSON array, one row per line.
func encodeJSON(w io.Writer, rows [][]int64) error {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, r := range rows {
		b, err := json.Marshal(r)
		if err != nil {
			return err
		}
		buf.WriteString("  ")
		buf.Write(b)
		if i < len(rows)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	_, err := w.Write(buf.Bytes())

	return err
}

// decodeText reads one row per line; blanks and commas separate values,
// '#' starts a comment, empty lines are skipped.
func decodeText(r io.Reader) ([][]int64, error) {
	var rows [][]int64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if k := strings.IndexByte(text, '#'); k >= 0 {
			text = text[:k]
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		row := make([]int64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", line, f, ErrNonBinary)
			}
			if row[j], err = integral(v); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}

// encodeText writes space-separated rows.
func encodeText(w io.Writer, rows [][]int64) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		for j, v := range r {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatInt(v, 10))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
