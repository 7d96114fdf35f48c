package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

const maxLineBytes = 1 << 20

// ParseText reads the line-oriented text format.
//
// Everything after '#' is a comment. An optional "label:" prefix names the
// item, so a label cannot contain '#', ':' or a line break, and surrounding
// whitespace is dropped.
func ParseText(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	m := &Matrix{}
	var labels []string
	labeled := false

	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		label := ""
		if i := strings.IndexByte(text, ':'); i >= 0 {
			label = strings.TrimSpace(text[:i])
			text = strings.TrimSpace(text[i+1:])
			labeled = true
		}

		row, err := parseValues(text)
		if err != nil {
			return nil, &ParseError{Line: line, Reason: err.Error()}
		}
		if len(row) == 0 {
			return nil, &ParseError{Line: line, Reason: "no values"}
		}

		if m.Features == 0 {
			m.Features = len(row)
		} else if len(row) != m.Features {
			return nil, &ParseError{Line: line, Reason: fmt.Sprintf("%d values, want %d", len(row), m.Features)}
		}

		m.Rows = append(m.Rows, row)
		labels = append(labels, label)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(m.Rows) == 0 {
		return nil, &ParseError{Reason: "no rows"}
	}
	if labeled {
		m.Labels = labels
	}
	return m, nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func parseValues(text string) ([]uint8, error) {
	if strings.IndexFunc(text, isSeparator) < 0 {
		row := make([]uint8, len(text))
		for j := 0; j < len(text); j++ {
			v, err := parseBit(text[j : j+1])
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		return row, nil
	}

	fields := strings.FieldsFunc(text, isSeparator)
	row := make([]uint8, len(fields))
	for j, f := range fields {
		v, err := parseBit(f)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}
	return row, nil
}

func parseBit(s string) (uint8, error) {
	switch s {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	default:
		return 0, fmt.Errorf("value %q is not 0 or 1", s)
	}
}

// WriteText writes m in the text format with contiguous 0/1 rows. It fails
// with ErrFormat, before writing anything, if a label could not be read back
// by ParseText; use the JSON format for such labels.
func WriteText(w io.Writer, m *Matrix) error {
	for i, label := range m.Labels {
		if !textLabel(label) {
			return fmt.Errorf("%w: label %q of item %d is not representable as text", ErrFormat, label, i)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d items, %d features\n", m.Len(), m.Features)

	buf := make([]byte, 0, m.Features)
	for i, row := range m.Rows {
		if m.Labels != nil {
			bw.WriteString(m.Labels[i])
			bw.WriteString(": ")
		}
		buf = buf[:0]
		for _, v := range row {
			buf = append(buf, '0'+v)
		}
		bw.Write(buf)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func textLabel(s string) bool {
	return !strings.ContainsAny(s, "#:\r\n") && s == strings.TrimSpace(s)
}

// ParseRow parses one row in either text notation ("0101" or "0 1 0 1").
func ParseRow(s string) ([]uint8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty row", ErrFormat)
	}
	row, err := parseValues(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return row, nil
}
