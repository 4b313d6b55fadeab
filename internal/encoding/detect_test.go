package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/finchat/internal/encoding"
)

const statement = "Data;Lançamento;Valor\n05/03/2025;Padaria São João;-12,50\n"

func TestDecode(t *testing.T) {
	win1252, err := charmap.Windows1252.NewEncoder().String(statement)
	require.NoError(t, err)

	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(statement)
	require.NoError(t, err)

	type args struct {
		input []byte
	}

	type testCase struct {
		name        string
		args        args
		wantCharset string
	}

	tests := []testCase{
		{name: "PlainUTF8", args: args{input: []byte(statement)}, wantCharset: encoding.UTF8},
		{name: "UTF8BOM", args: args{input: append([]byte{0xEF, 0xBB, 0xBF}, statement...)}, wantCharset: encoding.UTF8},
		{name: "UTF16LEBOM", args: args{input: []byte(utf16le)}, wantCharset: encoding.UTF16LE},
		{name: "Windows1252", args: args{input: []byte(win1252)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, charset, err := encoding.Decode(bytes.NewReader(tt.args.input))
			require.NoError(t, err)

			got, err := io.ReadAll(r)
			require.NoError(t, err)

			assert.Equal(t, statement, string(got))

			if tt.wantCharset != "" {
				assert.Equal(t, tt.wantCharset, charset)
			}
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	r, charset, err := encoding.Decode(strings.NewReader(""))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Empty(t, got)
	assert.Equal(t, encoding.UTF8, charset)
}

func TestDecode_LongUTF8SplitAtWindow(t *testing.T) {
	// Pushes a two-byte "ç" across the sniff boundary.
	input := strings.Repeat("a", 4095) + "ção\n"

	r, charset, err := encoding.Decode(strings.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Equal(t, input, string(got))
	assert.Equal(t, encoding.UTF8, charset)
}
