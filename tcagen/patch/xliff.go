package patch

import (
	"fmt"
	"regexp"
	"strings"
)

// TransUnit is a single translation unit of an XLIFF file.
type TransUnit struct {
	ID     string
	Source string
}

const closingBody = "</body>"

var leadingIndent = regexp.MustCompile(`(?m)^([ \t]+)`)

// DetectIndent returns the indentation of the first indented line of content,
// or a tab if no line is indented.
func DetectIndent(content string) string {
	if m := leadingIndent.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return "\t"
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// AddTransUnits inserts one trans-unit element per unit directly in front of
// the first closing body tag. Units are indented with the file's own
// indentation unit, three levels deep. Everything else in content is kept
// byte for byte. Existing units are never deduplicated.
func AddTransUnits(content string, units []TransUnit) (string, error) {
	idx := strings.Index(content, closingBody)
	if idx < 0 {
		return "", fmt.Errorf("%w: %s", ErrAnchorNotFound, closingBody)
	}
	if len(units) == 0 {
		return content, nil
	}

	indent := DetectIndent(content)
	unitIndent := strings.Repeat(indent, 3)

	var b strings.Builder
	for _, u := range units {
		b.WriteString(unitIndent)
		b.WriteString(`<trans-unit id="`)
		b.WriteString(xmlEscaper.Replace(u.ID))
		b.WriteString("\">\n")
		b.WriteString(unitIndent)
		b.WriteString(indent)
		b.WriteString("<source>")
		b.WriteString(xmlEscaper.Replace(u.Source))
		b.WriteString("</source>\n")
		b.WriteString(unitIndent)
		b.WriteString("</trans-unit>\n")
	}

	// The first unit continues the line the closing tag was on, so it gets
	// a single indent on top of what is already there.
	insert := indent + strings.TrimLeft(b.String(), " \t\n\r\v\x00") + indent + indent
	return content[:idx] + insert + content[idx:], nil
}

// EscapeXML escapes s for use in XML character data and double quoted
// attribute values.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
