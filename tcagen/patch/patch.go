// Package patch implements the idempotent text patches applied to generated
// PHP and XLIFF files. Every operation takes the existing file content and
// returns the patched content; none of them touch the filesystem.
package patch

import (
	"errors"
	"regexp"
	"strings"
)

// ErrAnchorNotFound is returned when the text a patch inserts relative to is
// missing from the content.
var ErrAnchorNotFound = errors.New("anchor not found")

var (
	useStatement = regexp.MustCompile(`(?m)^use\s+([a-zA-Z0-9\\]+);`)
	strictTypes  = regexp.MustCompile(`(?m)^<\?php\s*declare\(strict_types=1\);`)
	openTag      = regexp.MustCompile(`(?m)^<\?php`)
)

// HasImport reports whether content imports symbol. A leading namespace
// separator on symbol is ignored.
func HasImport(content, symbol string) bool {
	return strings.Contains(content, "use "+strings.TrimLeft(symbol, `\`)+";")
}

// AddImport returns content with a use statement for symbol.
//
// Content that already imports symbol is returned unchanged. Otherwise the
// statement goes directly after the first existing use statement; without
// one, after the strict_types declaration (separated by a blank line); and
// without that, after the opening PHP tag.
func AddImport(content, symbol string) string {
	symbol = strings.TrimLeft(symbol, `\`)
	if HasImport(content, symbol) {
		return content
	}
	use := "use " + symbol + ";"

	if loc := useStatement.FindStringSubmatchIndex(content); loc != nil {
		first := "use " + content[loc[2]:loc[3]] + ";"
		return content[:loc[0]] + first + "\n" + use + content[loc[1]:]
	}
	if loc := strictTypes.FindStringIndex(content); loc != nil {
		return content[:loc[0]] + "<?php\n\ndeclare(strict_types=1);\n\n" + use + content[loc[1]:]
	}
	if loc := openTag.FindStringIndex(content); loc != nil {
		return content[:loc[0]] + "<?php\n\n" + use + "\n" + content[loc[1]:]
	}
	return use + "\n" + content
}

func requirePattern(relPath string) *regexp.Regexp {
	return regexp.MustCompile(`require_once\s+(?:__DIR__\s*\.)?\s*'/` + regexp.QuoteMeta(relPath) + `';`)
}

// HasRequire reports whether content contains a require_once of relPath,
// with or without a leading __DIR__ concatenation.
func HasRequire(content, relPath string) bool {
	return requirePattern(relPath).MatchString(content)
}

// AddRequire appends a require_once of relPath, resolved against the
// directory of the file, unless content already requires it.
func AddRequire(content, relPath string) string {
	if HasRequire(content, relPath) {
		return content
	}
	return content + "\nrequire_once __DIR__ . '/" + relPath + "';\n"
}
