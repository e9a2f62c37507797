package generator

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncodingName is used when neither configuration nor locale names a charset.
const DefaultEncodingName = "UTF-8"

// charsetAliases maps glibc-style spellings (lowercased, without '-' or '_')
// to IANA names.
var charsetAliases = map[string]string{
	"utf8":      "UTF-8",
	"eucjp":     "EUC-JP",
	"euckr":     "EUC-KR",
	"euctw":     "EUC-TW",
	"sjis":      "Shift_JIS",
	"shiftjis":  "Shift_JIS",
	"koi8r":     "KOI8-R",
	"koi8u":     "KOI8-U",
	"gb2312":    "GB2312",
	"gbk":       "GBK",
	"gb18030":   "GB18030",
	"big5":      "Big5",
	"big5hkscs": "Big5-HKSCS",
	"tis620":    "TIS-620",
	"ascii":     "US-ASCII",
	"usascii":   "US-ASCII",
}

var (
	iso8859Pattern = regexp.MustCompile(`^iso8859(\d{1,2})$`)
	cpPattern      = regexp.MustCompile(`^(?:cp|windows)(\d{3,4})$`)
)

// NormalizeCharset rewrites common spellings of a charset name to the IANA
// form, e.g. "ISO8859-1" and "iso88591" to "ISO-8859-1", "eucJP" to "EUC-JP".
// Unknown names are returned unchanged.
func NormalizeCharset(name string) string {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(name)))
	if alias, ok := charsetAliases[key]; ok {
		return alias
	}
	if m := iso8859Pattern.FindStringSubmatch(key); m != nil {
		return "ISO-8859-" + m[1]
	}
	if m := cpPattern.FindStringSubmatch(key); m != nil {
		return "windows-" + m[1]
	}
	return strings.TrimSpace(name)
}

// LookupEncoding resolves a charset name such as "UTF-8", "ISO8859-1" or
// "eucJP". The name is normalized first, then tried against the IANA and
// MIME indexes and finally the WHATWG labels. An empty name resolves to UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}

	normalized := NormalizeCharset(name)
	var lastErr error
	for _, candidate := range []string{normalized, name} {
		for _, index := range []*ianaindex.Index{ianaindex.IANA, ianaindex.MIME} {
			enc, err := index.Encoding(candidate)
			if err == nil && enc != nil {
				return enc, nil
			}
			if err != nil {
				lastErr = err
			}
		}
		if enc, err := htmlindex.Get(candidate); err == nil {
			return enc, nil
		}
	}

	if lastErr == nil {
		return nil, newGeneratorError(GeneratorEncodingFailed,
			fmt.Sprintf("encoding %q is not supported", name), "", nil)
	}
	return nil, newGeneratorError(GeneratorEncodingFailed,
		fmt.Sprintf("unknown encoding %q", name), "", lastErr)
}

// PreferredEncodingName returns the charset of the current locale, taken from
// LC_ALL, LC_CTYPE or LANG in that order (e.g. "de_DE.ISO8859-1@euro" gives
// "ISO-8859-1"). Falls back to DefaultEncodingName.
func PreferredEncodingName() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		return charsetFromLocale(value)
	}
	return DefaultEncodingName
}

func charsetFromLocale(locale string) string {
	dot := strings.IndexByte(locale, '.')
	if dot < 0 {
		return DefaultEncodingName
	}
	charset := locale[dot+1:]
	if at := strings.IndexByte(charset, '@'); at >= 0 {
		charset = charset[:at]
	}
	if charset == "" {
		return DefaultEncodingName
	}
	return NormalizeCharset(charset)
}
