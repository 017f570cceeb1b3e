// SPDX-License-Identifier: MIT
// Package: matrix
//
// NumPy .npy codec.
//
// Layout: magic "\x93NUMPY", major, minor, header length (uint16 LE for
// v1, uint32 LE for v2/v3), an ASCII dict literal
//
//	{'descr': '<i8', 'fortran_order': False, 'shape': (n, n), }
//
// padded with spaces and a final '\n', then the raw elements.
// Supported dtypes: b1, i1/i2/i4/i8, u1/u2/u4/u8, f4/f8 in either byte
// order. Encoding always writes v1.0 '<i8' in C order, the layout of an
// int64 array saved by numpy.save.

package matrix

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	npyMagic      = "\x93NUMPY"
	npyAlign      = 64
	npyPreambleV1 = len(npyMagic) + 2 + 2
	npyMaxHeader  = 1 << 20

	// npyMaxElements bounds rows*cols; an 8192-vertex graph fits.
	npyMaxElements = 1 << 26
)

var (
	npyDescrRe   = regexp.MustCompile(`'descr'\s*:\s*'([^']*)'`)
	npyFortranRe = regexp.MustCompile(`'fortran_order'\s*:\s*(True|False)`)
	npyShapeRe   = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
)

// npyHeader is the parsed dict literal.
type npyHeader struct {
	order   binary.ByteOrder
	kind    byte
	size    int
	fortran bool
	rows    int
	cols    int
}

func decodeNPY(r io.Reader) ([][]int64, error) {
	pre := make([]byte, len(npyMagic)+2)
	if _, err := io.ReadFull(r, pre); err != nil {
		return nil, fmt.Errorf("preamble: %w", ErrMalformedNPY)
	}
	if string(pre[:len(npyMagic)]) != npyMagic {
		return nil, fmt.Errorf("bad magic: %w", ErrMalformedNPY)
	}

	var hlen int
	switch major := pre[len(npyMagic)]; major {
	case 1:
		var b [2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("header length: %w", ErrMalformedNPY)
		}
		hlen = int(binary.LittleEndian.Uint16(b[:]))
	case 2, 3:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("header length: %w", ErrMalformedNPY)
		}
		hlen = int(binary.LittleEndian.Uint32(b[:]))
	default:
		return nil, fmt.Errorf("version %d: %w", major, ErrMalformedNPY)
	}
	if hlen <= 0 || hlen > npyMaxHeader {
		return nil, fmt.Errorf("header length %d: %w", hlen, ErrMalformedNPY)
	}
	raw := make([]byte, hlen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("header: %w", ErrMalformedNPY)
	}
	h, err := parseNPYHeader(string(raw))
	if err != nil {
		return nil, err
	}

	// The payload grows with the bytes actually present, never with the
	// declared shape alone.
	count := h.rows * h.cols
	want := int64(count) * int64(h.size)
	payload, err := io.ReadAll(io.LimitReader(r, want))
	if err != nil || int64(len(payload)) != want {
		return nil, fmt.Errorf("payload of %d elements: %w", count, ErrMalformedNPY)
	}

	rows := make([][]int64, h.rows)
	for i := range rows {
		rows[i] = make([]int64, h.cols)
	}
	for k := 0; k < count; k++ {
		v, err := h.element(payload[k*h.size : (k+1)*h.size])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", k, err)
		}
		i, j := k/h.cols, k%h.cols
		if h.fortran {
			i, j = k%h.rows, k/h.rows
		}
		rows[i][j] = v
	}

	return rows, nil
}

func parseNPYHeader(s string) (npyHeader, error) {
	var h npyHeader
	m := npyDescrRe.FindStringSubmatch(s)
	if m == nil || len(m[1]) < 3 {
		return h, fmt.Errorf("descr in %q: %w", s, ErrMalformedNPY)
	}
	descr := m[1]
	switch descr[0] {
	case '<', '|', '=':
		h.order = binary.LittleEndian
	case '>':
		h.order = binary.BigEndian
	default:
		return h, fmt.Errorf("byte order %q: %w", descr, ErrUnsupportedDType)
	}
	h.kind = descr[1]
	size, err := strconv.Atoi(descr[2:])
	if err != nil {
		return h, fmt.Errorf("descr %q: %w", descr, ErrUnsupportedDType)
	}
	h.size = size
	if !supportedDType(h.kind, h.size) {
		return h, fmt.Errorf("descr %q: %w", descr, ErrUnsupportedDType)
	}

	if m = npyFortranRe.FindStringSubmatch(s); m == nil {
		return h, fmt.Errorf("fortran_order in %q: %w", s, ErrMalformedNPY)
	}
	h.fortran = m[1] == "True"

	if m = npyShapeRe.FindStringSubmatch(s); m == nil {
		return h, fmt.Errorf("shape in %q: %w", s, ErrMalformedNPY)
	}
	var dims []int
	for _, part := range strings.Split(m[1], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 {
			return h, fmt.Errorf("shape %q: %w", m[1], ErrMalformedNPY)
		}
		dims = append(dims, d)
	}
	if len(dims) != 2 {
		return h, fmt.Errorf("shape (%s) is not 2-D: %w", m[1], ErrUnsupportedDType)
	}
	h.rows, h.cols = dims[0], dims[1]
	if h.rows != h.cols {
		return h, fmt.Errorf("shape (%d, %d): %w", h.rows, h.cols, ErrNonSquare)
	}
	if h.cols > 0 && h.rows > npyMaxElements/h.cols {
		return h, fmt.Errorf("shape (%d, %d) exceeds %d elements: %w", h.rows, h.cols, npyMaxElements, ErrMalformedNPY)
	}

	return h, nil
}

func supportedDType(kind byte, size int) bool {
	switch kind {
	case 'b':
		return size == 1
	case 'i', 'u':
		return size == 1 || size == 2 || size == 4 || size == 8
	case 'f':
		return size == 4 || size == 8
	}

	return false
}

// element decodes one raw value into an int64 entry.
func (h npyHeader) element(b []byte) (int64, error) {
	switch h.kind {
	case 'b':
		if b[0] != 0 {
			return 1, nil
		}
		return 0, nil
	case 'i':
		switch h.size {
		case 1:
			return int64(int8(b[0])), nil
		case 2:
			return int64(int16(h.order.Uint16(b))), nil
		case 4:
			return int64(int32(h.order.Uint32(b))), nil
		default:
			return int64(h.order.Uint64(b)), nil
		}
	case 'u':
		switch h.size {
		case 1:
			return int64(b[0]), nil
		case 2:
			return int64(h.order.Uint16(b)), nil
		case 4:
			return int64(h.order.Uint32(b)), nil
		default:
			u := h.order.Uint64(b)
			if u > math.MaxInt64 {
				return 0, ErrNonBinary
			}
			return int64(u), nil
		}
	default:
		if h.size == 4 {
			return integral(float64(math.Float32frombits(h.order.Uint32(b))))
		}
		return integral(math.Float64frombits(h.order.Uint64(b)))
	}
}

func encodeNPY(w io.Writer, rows [][]int64) error {
	n := len(rows)
	header := fmt.Sprintf("{'descr': '<i8', 'fortran_order': False, 'shape': (%d, %d), }", n, n)
	total := npyPreambleV1 + len(header) + 1
	if pad := (npyAlign - total%npyAlign) % npyAlign; pad > 0 {
		header += strings.Repeat(" ", pad)
	}
	header += "\n"

	var buf bytes.Buffer
	buf.WriteString(npyMagic)
	buf.WriteByte(1)
	buf.WriteByte(0)
	if err := binary.Write(&buf, binary.LittleEndian, uint16(len(header))); err != nil {
		return err
	}
	buf.WriteString(header)
	for _, r := range rows {
		if err := binary.Write(&buf, binary.LittleEndian, r); err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())

	return err
}
