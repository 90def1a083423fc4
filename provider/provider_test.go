package provider

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcoast/ctmigrate"
	"github.com/webcoast/ctmigrate/tcagen/ir"
)

const teaserYAML = `
title: My Teaser
description: Shows a teaser
group: special
iconIdentifier: content-teaser
grid:
  - - name: Left
      colPos: 201
    - name: Right
      colPos: 202
fields:
  - identifier: general
    type: Tab
    title: General
  - identifier: teaserText
    type: Textarea
    label: Teaser text
    description: Below the header
    config:
      rows: 5
      enableRichtext: true
  - identifier: items
    type: section
    label: Items
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"Teaser/config.yaml":   {Data: []byte(teaserYAML)},
		"Teaser/template.html": {Data: []byte("<div>{data.header}</div>\n")},
		"Plain/config.yaml":    {Data: []byte("title: Plain\n")},
		"Broken/config.yaml":   {Data: []byte("description: no title\n")},
		"Empty/README.md":      {Data: []byte("no definition")},
		"notes.txt":            {Data: []byte("ignored")},
	}
}

func TestNames(t *testing.T) {
	names, err := New(testFS()).Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Broken", "Plain", "Teaser"}, names)
}

func TestContentType(t *testing.T) {
	ct, err := New(testFS()).ContentType("Teaser")
	require.NoError(t, err)

	assert.Equal(t, "My Teaser", ct.Title)
	assert.Equal(t, "Shows a teaser", ct.Description)
	assert.Equal(t, "special", ct.Group)
	assert.Equal(t, "content-teaser", ct.IconIdentifier)

	require.Len(t, ct.Grid, 1)
	require.Len(t, ct.Grid[0], 2)
	assert.Equal(t, "Left", ct.Grid[0][0].Name())
	colPos, ok := ct.Grid[0][1].Value().Get("colPos")
	require.True(t, ok)
	assert.Equal(t, ir.Int(202), colPos)

	require.Len(t, ct.Fields, 3)
	assert.True(t, ct.Fields[0].Type.IsTab())
	assert.Equal(t, "General", ct.Fields[0].DisplayLabel())
	assert.Equal(t, ctmigrate.Widget("Textarea"), ct.Fields[1].Type)
	assert.Equal(t, []ir.Key{ir.StrKey("rows"), ir.StrKey("enableRichtext")}, ct.Fields[1].Config.Keys())
	assert.True(t, ct.Fields[2].Type.IsSection())
}

func TestContentType_Errors(t *testing.T) {
	p := New(testFS())

	_, err := p.ContentType("Missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = p.ContentType("Broken")
	var verr *ctmigrate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "Title")

	_, err = p.ContentType("../outside")
	assert.Error(t, err)
}

func TestFrontendTemplate(t *testing.T) {
	p := New(testFS())

	tmpl, err := p.FrontendTemplate("Teaser")
	require.NoError(t, err)
	assert.Equal(t, "<div>{data.header}</div>\n", tmpl)

	tmpl, err = p.FrontendTemplate("Plain")
	require.NoError(t, err)
	assert.Empty(t, tmpl)
}
