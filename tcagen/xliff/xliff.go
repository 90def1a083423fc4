// Package xliff writes label files in XLIFF 1.2 format.
package xliff

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/webcoast/ctmigrate/tcagen/patch"
	"github.com/webcoast/ctmigrate/tcagen/sink"
)

// DateFormat is the layout of the file date attribute (RFC 3339 with a
// numeric zone offset).
const DateFormat = "2006-01-02T15:04:05-07:00"

// SourceLanguage is the language labels are written in.
const SourceLanguage = "en"

// Writer adds labels to XLIFF files in a store.
type Writer struct {
	Store sink.Store

	// Now returns the creation date of new files (default: time.Now).
	Now func() time.Time
}

// NewWriter returns a writer for store.
func NewWriter(store sink.Store) *Writer {
	return &Writer{Store: store, Now: time.Now}
}

// AddLabels inserts units into the label file, in front of the closing
// body tag. A missing file is created from Skeleton first, with
// productName as the product-name attribute.
func (w *Writer) AddLabels(ctx context.Context, file string, units []patch.TransUnit, productName string) error {
	data, err := w.Store.ReadFile(ctx, file)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		data = []byte(Skeleton(path.Base(file), productName, w.now()))
	default:
		return fmt.Errorf("read %s: %w", file, err)
	}

	content, err := patch.AddTransUnits(string(data), units)
	if err != nil {
		return fmt.Errorf("patch %s: %w", file, err)
	}
	if err := w.Store.WriteFile(ctx, file, []byte(content)); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}

func (w *Writer) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}

// Skeleton returns an empty, tab indented label file.
func Skeleton(original, productName string, date time.Time) string {
	return "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<xliff version=\"1.2\" xmlns=\"urn:oasis:names:tc:xliff:document:1.2\">\n" +
		"\t<file datatype=\"plaintext\" original=\"" + patch.EscapeXML(original) +
		"\" source-language=\"" + SourceLanguage +
		"\" date=\"" + date.Format(DateFormat) +
		"\" product-name=\"" + patch.EscapeXML(productName) + "\">\n" +
		"\t\t<header/>\n" +
		"\t\t<body>\n" +
		"\t\t</body>\n" +
		"\t</file>\n" +
		"</xliff>"
}
