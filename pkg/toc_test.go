package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableOfContents(t *testing.T) {
	t.Run("references headings", func(t *testing.T) {
		html := render(t, "# Title\n\ntext\n", DefaultOptions())
		assert.Contains(t, html, `<nav class="toc">`)
		assert.Contains(t, html, `<li><a href="#title">Title</a></li>`)
		assert.Less(t, strings.Index(html, `<nav class="toc">`), strings.Index(html, "<h1"))
	})

	t.Run("nested by level", func(t *testing.T) {
		html := render(t, "# A\n## B\n## C\n# D\n", DefaultOptions())
		assert.Contains(t, html, "<li><a href=\"#a\">A</a>\n<ul>\n<li><a href=\"#b\">B</a></li>\n<li><a href=\"#c\">C</a></li>\n</ul>\n</li>")
		assert.Contains(t, html, `<li><a href="#d">D</a></li>`)
	})

	t.Run("starts below level one", func(t *testing.T) {
		html := render(t, "### Deep\n## Shallow\n", DefaultOptions())
		assert.Contains(t, html, `<a href="#deep">Deep</a>`)
		assert.Contains(t, html, `<a href="#shallow">Shallow</a>`)
	})

	t.Run("duplicate headings get unique anchors", func(t *testing.T) {
		html := render(t, "# Same\n# Same\n", DefaultOptions())
		assert.Contains(t, html, `<a href="#same">Same</a>`)
		assert.Contains(t, html, `<a href="#same-1">Same</a>`)
	})

	t.Run("inline markup flattened", func(t *testing.T) {
		html := render(t, "# Use `go` *now*\n", DefaultOptions())
		assert.Contains(t, html, ">Use go now</a>")
	})

	t.Run("label escaped", func(t *testing.T) {
		assert.Contains(t, render(t, "# Fish &amp; Chips\n", DefaultOptions()), ">Fish &amp; Chips</a>")
		assert.Contains(t, render(t, "# a < b\n", DefaultOptions()), ">a &lt; b</a>")
	})

	t.Run("title", func(t *testing.T) {
		opts := DefaultOptions()
		opts.TOC.Title = "Fish & Chips"
		html := render(t, "# A\n", opts)
		assert.Contains(t, html, `<p class="toc-title">Fish &amp; Chips</p>`)
	})

	t.Run("level range", func(t *testing.T) {
		opts := DefaultOptions()
		opts.TOC.MinLevel = 2
		opts.TOC.MaxLevel = 2
		html := render(t, "# A\n## B\n### C\n", opts)
		assert.NotContains(t, html, `href="#a"`)
		assert.Contains(t, html, `href="#b"`)
		assert.NotContains(t, html, `href="#c"`)
	})

	t.Run("no headings", func(t *testing.T) {
		assert.NotContains(t, render(t, "just text\n", DefaultOptions()), "<nav")
		assert.NotContains(t, render(t, "", DefaultOptions()), "<nav")
	})

	t.Run("disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.GenerateTOC = false
		html := render(t, "# A\n", opts)
		assert.NotContains(t, html, "<nav")
		assert.Contains(t, html, `<h1 id="a">A</h1>`)
	})
}
