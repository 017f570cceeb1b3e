package matrix

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeNPY_FortranOrder(t *testing.T) {
	header := "{'descr': '<u2', 'fortran_order': True, 'shape': (3, 3), }\n"
	var buf bytes.Buffer
	buf.WriteString(npyMagic)
	buf.Write([]byte{2, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(header)))
	buf.WriteString(header)
	// column-major: a00 a10 a20 a01 ...
	_ = binary.Write(&buf, binary.LittleEndian, []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9})

	rows, err := decodeNPY(&buf)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, rows)
}

func npyV1(header string, payload []byte) *bytes.Buffer {
	var buf bytes.Buffer
	buf.WriteString(npyMagic)
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	buf.Write(payload)

	return &buf
}

func TestDecodeNPY_HostileShape(t *testing.T) {
	tests := []struct {
		name    string
		shape   string
		payload []byte
		want    error
	}{
		{"huge square, empty payload", "(4294967296, 4294967296)", nil, ErrMalformedNPY},
		{"product overflows int", "(9223372036854775807, 9223372036854775807)", nil, ErrMalformedNPY},
		{"above element cap", "(8193, 8193)", nil, ErrMalformedNPY},
		{"non-square", "(2, 3)", make([]byte, 48), ErrNonSquare},
		{"short payload", "(100, 100)", make([]byte, 16), ErrMalformedNPY},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			header := "{'descr': '<i8', 'fortran_order': False, 'shape': " + tc.shape + ", }\n"
			_, err := decodeNPY(npyV1(header, tc.payload))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseNPYHeader(t *testing.T) {
	h, err := parseNPYHeader("{'descr': '>f4', 'fortran_order': False, 'shape': (5, 5), }")
	require.NoError(t, err)
	require.Equal(t, binary.BigEndian, h.order)
	require.Equal(t, byte('f'), h.kind)
	require.Equal(t, 4, h.size)
	require.Equal(t, 5, h.rows)

	_, err = parseNPYHeader("{'descr': '<i8', 'shape': (5, 5), }")
	require.ErrorIs(t, err, ErrMalformedNPY)

	_, err = parseNPYHeader("{'descr': '<i8', 'fortran_order': False, 'shape': (4, 5), }")
	require.ErrorIs(t, err, ErrNonSquare)
}
