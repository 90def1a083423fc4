package ctmigrate

import (
	"regexp"
	"strings"
	"unicode"
)

var nonWord = regexp.MustCompile(`\W+`)

// ContentTypeName derives a machine readable type name from a title:
// every run of non-word characters becomes a single underscore, and the
// result is trimmed of underscores and lowercased.
//
//	"My Teaser"    -> "my_teaser"
//	"Co--oL!!Name" -> "co_ol_name"
func ContentTypeName(title string) string {
	name := nonWord.ReplaceAllString(title, "_")
	name = strings.Trim(name, "_")
	return strings.ToLower(strings.TrimSpace(name))
}

func isWordRune(r rune) bool {
	return r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// CamelCaseToLowerCaseUnderscored converts lowerCamelCase and UpperCamelCase
// to lower_case_underscored. Every upper case letter following a word
// character starts a new part.
//
//	"myField"      -> "my_field"
//	"HTTPResponse" -> "h_t_t_p_response"
func CamelCaseToLowerCaseUnderscored(s string) string {
	var b strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' && isWordRune(prev) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
		prev = r
	}
	return strings.ToLower(strings.Trim(b.String(), "_"))
}

// UnderscoredToUpperCamelCase converts lower_case_underscored to
// UpperCamelCase.
//
//	"my_teaser" -> "MyTeaser"
func UnderscoredToUpperCamelCase(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(strings.ToLower(s), "_") {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
