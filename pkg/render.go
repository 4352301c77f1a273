package pkg

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

var ErrRender = errors.New("failed to render markdown")

// TOCOptions controls the generated table of contents.
type TOCOptions struct {
	// Title is written above the list when set.
	Title string
	// MinLevel and MaxLevel limit which headings are listed (1..6).
	MinLevel int
	MaxLevel int
}

// Options is the renderer configuration.
// Output is a pure function of the markdown source and Options.
type Options struct {
	Autolink    bool
	GenerateTOC bool
	TOC         TOCOptions
	HardWraps   bool
	Unsafe      bool
	FrontMatter bool
}

// DefaultOptions enables autolinking and table of contents generation
// and passes raw HTML through.
func DefaultOptions() Options {
	return Options{
		Autolink:    true,
		GenerateTOC: true,
		TOC:         TOCOptions{MinLevel: 1, MaxLevel: 6},
		Unsafe:      true,
	}
}

// Render converts markdown into an HTML fragment.
// Markdown syntax is never rejected; errors come only from front matter decoding.
func Render(markdown []byte, opts Options) ([]byte, error) {
	if opts.FrontMatter {
		body, err := stripFrontMatter(markdown)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRender, err)
		}
		markdown = body
	}
	var buf bytes.Buffer
	if err := newEngine(opts).Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func newEngine(opts Options) goldmark.Markdown {
	exts := []goldmark.Extender{}
	if opts.Autolink {
		exts = append(exts, extension.Linkify)
	}
	if opts.GenerateTOC {
		exts = append(exts, &tocExtension{options: opts.TOC})
	}
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}
	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)
}
