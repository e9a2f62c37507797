package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/tacogips/cobnew/internal/template/builtin"
	"github.com/tacogips/cobnew/internal/template/model"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single line without break", "a", []string{"a"}},
		{"trailing LF", "a\nb\n", []string{"a", "b"}},
		{"no trailing break", "a\nb", []string{"a", "b"}},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}},
		{"CR", "a\rb\r", []string{"a", "b"}},
		{"mixed", "a\r\nb\nc\rd", []string{"a", "b", "c", "d"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"trailing blank line kept", "a\n\n", []string{"a", ""}},
		{"CR LF pair is one break", "a\r\n\nb", []string{"a", "", "b"}},
		{"LF CR is two breaks", "a\n\rb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestRender_LFPreservesLines(t *testing.T) {
	for _, tmpl := range mustAllTemplates(t) {
		t.Run(tmpl.Name(), func(t *testing.T) {
			data, err := Render(tmpl.Text, model.LF, nil)
			require.NoError(t, err)

			if tmpl.IsEmpty() {
				assert.Equal(t, "\n", string(data))
				return
			}

			out := string(data)
			require.True(t, strings.HasSuffix(out, "\n"), "output must end with a terminator")
			assert.Equal(t, SplitLines(tmpl.Text), strings.Split(strings.TrimSuffix(out, "\n"), "\n"))
		})
	}
}

func TestRender_CRLFHasNoBareLF(t *testing.T) {
	text := "line one\r\nline two\nline three\rline four\n"

	data, err := Render(text, model.CRLF, nil)
	require.NoError(t, err)

	out := string(data)
	assert.Equal(t, "line one\r\nline two\r\nline three\r\nline four\r\n", out)
	for i := 0; i < len(out); i++ {
		if out[i] == '\n' {
			require.True(t, i > 0 && out[i-1] == '\r', "bare LF at offset %d", i)
		}
	}
}

func TestRender_CR(t *testing.T) {
	data, err := Render("a\nb", model.CR, nil)
	require.NoError(t, err)
	assert.Equal(t, "a\rb\r", string(data))
}

func TestRender_EmptyTextIsOneLineEnding(t *testing.T) {
	for _, eol := range []model.LineEnding{model.LF, model.CRLF, model.CR} {
		t.Run(eol.String(), func(t *testing.T) {
			data, err := Render("", eol, nil)
			require.NoError(t, err)
			assert.Equal(t, eol.Literal(), string(data))

			data, err = Render("", eol, charmap.ISO8859_1)
			require.NoError(t, err)
			assert.Equal(t, eol.Literal(), string(data))
		})
	}
}

func TestRender_FixedExecutableKeepsTrailingBlankLine(t *testing.T) {
	text, err := builtin.Text(model.KindExecutable, false)
	require.NoError(t, err)

	data, err := Render(text, model.CRLF, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "end program your-program-name.\r\n\r\n"))
}

func TestRender_Encoding(t *testing.T) {
	t.Run("latin1 encodes representable text", func(t *testing.T) {
		data, err := Render("café", model.LF, charmap.ISO8859_1)
		require.NoError(t, err)
		assert.Equal(t, []byte{'c', 'a', 'f', 0xe9, '\n'}, data)
	})

	t.Run("unrepresentable character fails", func(t *testing.T) {
		_, err := Render("price: €", model.LF, charmap.ISO8859_1)
		require.Error(t, err)
		typ, ok := ErrorType(err)
		require.True(t, ok)
		assert.Equal(t, GeneratorEncodingFailed, typ)
	})
}

func TestLookupEncoding(t *testing.T) {
	enc, err := LookupEncoding("")
	require.NoError(t, err)
	assert.NotNil(t, enc)

	enc, err = LookupEncoding("iso-8859-1")
	require.NoError(t, err)
	assert.NotNil(t, enc)

	for _, name := range []string{"ISO8859-1", "iso88591", "eucJP", "SJIS", "cp1252", "latin1"} {
		enc, err = LookupEncoding(name)
		require.NoError(t, err, name)
		assert.NotNil(t, enc, name)
	}

	latin1, err := LookupEncoding("ISO8859-1")
	require.NoError(t, err)
	data, err := Render("café", model.LF, latin1)
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xe9, '\n'}, data)

	_, err = LookupEncoding("no-such-charset")
	require.Error(t, err)
	typ, _ := ErrorType(err)
	assert.Equal(t, GeneratorEncodingFailed, typ)
}

func TestCharsetFromLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en_US.UTF-8", "UTF-8"},
		{"en_US.utf8", "UTF-8"},
		{"de_DE.ISO-8859-1@euro", "ISO-8859-1"},
		{"de_DE.ISO8859-1", "ISO-8859-1"},
		{"de_DE.ISO8859-15@euro", "ISO-8859-15"},
		{"en_US.iso88591", "ISO-8859-1"},
		{"ja_JP.eucJP", "EUC-JP"},
		{"ja_JP.SJIS", "Shift_JIS"},
		{"ru_RU.KOI8-R", "KOI8-R"},
		{"zh_TW.Big5", "Big5"},
		{"C", "UTF-8"},
		{"POSIX", "UTF-8"},
		{"fr_FR.", "UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, charsetFromLocale(tt.locale))
		})
	}
}

func TestPreferredEncodingName(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "ja_JP.EUC-JP")
	t.Setenv("LANG", "en_US.UTF-8")
	assert.Equal(t, "EUC-JP", PreferredEncodingName())

	t.Setenv("LC_ALL", "de_DE.ISO-8859-15")
	assert.Equal(t, "ISO-8859-15", PreferredEncodingName())

	t.Setenv("LC_ALL", "de_DE.ISO8859-1")
	assert.Equal(t, "ISO-8859-1", PreferredEncodingName())

	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "ja_JP.eucJP")
	assert.Equal(t, "EUC-JP", PreferredEncodingName())

	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "")
	assert.Equal(t, DefaultEncodingName, PreferredEncodingName())
}

func TestNormalizeCharset(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"UTF-8", "UTF-8"},
		{"utf8", "UTF-8"},
		{"ISO8859-1", "ISO-8859-1"},
		{"iso_8859_15", "ISO-8859-15"},
		{"eucJP", "EUC-JP"},
		{"CP1252", "windows-1252"},
		{"windows-1251", "windows-1251"},
		{"x-unknown", "x-unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCharset(tt.in))
		})
	}
}

func mustAllTemplates(t *testing.T) []model.Template {
	t.Helper()
	templates, err := builtin.All()
	require.NoError(t, err)
	return templates
}
