package patch

import (
	"strings"
	"testing"
)

const header = "<?php\n\ndeclare(strict_types=1);\n\nif (!defined('TYPO3')) {\n    die('Access denied.');\n}\n"

func TestAddImport(t *testing.T) {
	tests := []struct {
		name    string
		content string
		symbol  string
		want    string
	}{
		{
			name:    "after strict types declaration",
			content: header,
			symbol:  `TYPO3\CMS\Core\Utility\GeneralUtility`,
			want: "<?php\n\ndeclare(strict_types=1);\n\nuse TYPO3\\CMS\\Core\\Utility\\GeneralUtility;\n\n" +
				"if (!defined('TYPO3')) {\n    die('Access denied.');\n}\n",
		},
		{
			name:    "after first existing import",
			content: "<?php\n\nuse A\\First;\nuse B\\Second;\n",
			symbol:  `C\Third`,
			want:    "<?php\n\nuse A\\First;\nuse C\\Third;\nuse B\\Second;\n",
		},
		{
			name:    "after opening tag",
			content: "<?php\n$x = 1;\n",
			symbol:  `\A\Leading`,
			want:    "<?php\n\nuse A\\Leading;\n\n$x = 1;\n",
		},
		{
			name:    "already imported",
			content: "<?php\n\nuse A\\First;\n",
			symbol:  `\A\First`,
			want:    "<?php\n\nuse A\\First;\n",
		},
		{
			name:    "normalizes whitespace of the first import",
			content: "<?php\nuse   A\\First;\n",
			symbol:  `B\Second`,
			want:    "<?php\nuse A\\First;\nuse B\\Second;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddImport(tt.content, tt.symbol)
			if got != tt.want {
				t.Errorf("AddImport() =\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestAddImport_Idempotent(t *testing.T) {
	symbols := []string{
		`TYPO3\CMS\Core\Utility\GeneralUtility`,
		`B13\Container\Tca\Registry`,
		`\B13\Container\Tca\ContainerConfiguration`,
	}
	for _, content := range []string{header, "<?php\n", "<?php\n\nuse X\\Y;\n"} {
		for _, sym := range symbols {
			once := AddImport(content, sym)
			twice := AddImport(once, sym)
			if once != twice {
				t.Errorf("AddImport not idempotent for %q on %q:\n%q\n%q", sym, content, once, twice)
			}
			if n := strings.Count(twice, "use "+strings.TrimLeft(sym, `\`)+";"); n != 1 {
				t.Errorf("import of %q appears %d times", sym, n)
			}
		}
	}
}

func TestAddImport_InsertsExactlyOneLineAfterFirstImport(t *testing.T) {
	content := "<?php\n\nuse A\\First;\nuse B\\Second;\n\n$x = 1;\n"
	got := AddImport(content, `C\Third`)

	before := strings.Split(content, "\n")
	after := strings.Split(got, "\n")
	if len(after) != len(before)+1 {
		t.Fatalf("line count %d, want %d", len(after), len(before)+1)
	}
	if after[3] != `use C\Third;` {
		t.Errorf("line after first import = %q", after[3])
	}
}

func TestContainerImportsOrder(t *testing.T) {
	content := header
	content = AddImport(content, `TYPO3\CMS\Core\Utility\GeneralUtility`)
	content = AddImport(content, `B13\Container\Tca\Registry`)
	content = AddImport(content, `B13\Container\Tca\ContainerConfiguration`)

	want := "<?php\n\ndeclare(strict_types=1);\n\n" +
		"use TYPO3\\CMS\\Core\\Utility\\GeneralUtility;\n" +
		"use B13\\Container\\Tca\\ContainerConfiguration;\n" +
		"use B13\\Container\\Tca\\Registry;\n\n" +
		"if (!defined('TYPO3')) {\n    die('Access denied.');\n}\n"
	if content != want {
		t.Errorf("imports =\n%s\nwant:\n%s", content, want)
	}
}

func TestHasRequire(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"with __DIR__", "require_once __DIR__ . '/../ContentTypes/teaser.php';", true},
		{"without __DIR__", "require_once '/../ContentTypes/teaser.php';", true},
		{"compact", "require_once __DIR__.'/../ContentTypes/teaser.php';", true},
		{"other file", "require_once __DIR__ . '/../ContentTypes/hero.php';", false},
		{"dot is literal", "require_once __DIR__ . '/../ContentTypes/teaserXphp';", false},
		{"require without once", "require __DIR__ . '/../ContentTypes/teaser.php';", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasRequire(tt.content, "../ContentTypes/teaser.php"); got != tt.want {
				t.Errorf("HasRequire() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddRequire(t *testing.T) {
	got := AddRequire(header, "../ContentTypes/teaser.php")
	want := header + "\nrequire_once __DIR__ . '/../ContentTypes/teaser.php';\n"
	if got != want {
		t.Errorf("AddRequire() =\n%q\nwant:\n%q", got, want)
	}
	if again := AddRequire(got, "../ContentTypes/teaser.php"); again != got {
		t.Errorf("AddRequire() is not idempotent:\n%q", again)
	}
}
