package pkg

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindTableOfContents is the node kind of the generated table of contents.
var KindTableOfContents = ast.NewNodeKind("TableOfContents")

// TableOfContents is a block holding a nested list of links to the document headings.
type TableOfContents struct {
	ast.BaseBlock
	Title string
}

func (n *TableOfContents) Kind() ast.NodeKind {
	return KindTableOfContents
}

func (n *TableOfContents) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Title": n.Title}, nil)
}

type tocHeading struct {
	level int
	id    []byte
	text  []byte
}

type tocExtension struct {
	options TOCOptions
}

func (e *tocExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithAutoHeadingID(),
		parser.WithASTTransformers(util.Prioritized(&tocTransformer{options: e.options}, 100)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(&tocRenderer{}, 500)),
	)
}

type tocTransformer struct {
	options TOCOptions
}

func (t *tocTransformer) levels() (int, int) {
	minLevel, maxLevel := t.options.MinLevel, t.options.MaxLevel
	if minLevel < 1 {
		minLevel = 1
	}
	if maxLevel < 1 || maxLevel > 6 {
		maxLevel = 6
	}
	return minLevel, maxLevel
}

func (t *tocTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	headings := collectHeadings(doc, reader.Source())
	minLevel, maxLevel := t.levels()
	selected := []tocHeading{}
	for _, h := range headings {
		if h.level >= minLevel && h.level <= maxLevel {
			selected = append(selected, h)
		}
	}
	if len(selected) == 0 {
		return
	}
	toc := &TableOfContents{Title: t.options.Title}
	toc.AppendChild(toc, headingList(selected))
	if first := doc.FirstChild(); first != nil {
		doc.InsertBefore(doc, first, toc)
	} else {
		doc.AppendChild(doc, toc)
	}
}

func collectHeadings(doc *ast.Document, source []byte) []tocHeading {
	headings := []tocHeading{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		h := tocHeading{level: heading.Level, text: headingText(heading, source)}
		if id, found := heading.AttributeString("id"); found {
			if value, isBytes := id.([]byte); isBytes {
				h.id = value
			}
		}
		headings = append(headings, h)
		return ast.WalkSkipChildren, nil
	})
	return headings
}

func headingText(heading *ast.Heading, source []byte) []byte {
	var buf bytes.Buffer
	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.AutoLink:
			buf.Write(t.Label(source))
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return bytes.TrimSpace(buf.Bytes())
}

type tocFrame struct {
	level int
	list  *ast.List
}

// headingList nests headings by level: a deeper heading opens a sub-list
// under the last item of the current list, a shallower one closes lists
// until its level fits.
func headingList(headings []tocHeading) *ast.List {
	root := newTOCList()
	rootLevel := headings[0].level
	for _, h := range headings {
		if h.level < rootLevel {
			rootLevel = h.level
		}
	}
	stack := []tocFrame{{level: rootLevel, list: root}}
	for _, h := range headings {
		for len(stack) > 1 && h.level < stack[len(stack)-1].level {
			stack = stack[:len(stack)-1]
		}
		top := stack[len(stack)-1]
		if last := top.list.LastChild(); h.level > top.level && last != nil {
			sub := newTOCList()
			last.AppendChild(last, sub)
			top = tocFrame{level: h.level, list: sub}
			stack = append(stack, top)
		}
		top.list.AppendChild(top.list, tocItem(h))
	}
	return root
}

func newTOCList() *ast.List {
	list := ast.NewList('-')
	list.IsTight = true
	return list
}

func tocItem(h tocHeading) *ast.ListItem {
	label := ast.NewString(h.text)
	block := ast.NewTextBlock()
	if len(h.id) == 0 {
		block.AppendChild(block, label)
	} else {
		link := ast.NewLink()
		link.Destination = append([]byte("#"), h.id...)
		link.AppendChild(link, label)
		block.AppendChild(block, link)
	}
	item := ast.NewListItem(0)
	item.AppendChild(item, block)
	return item
}

type tocRenderer struct{}

func (r *tocRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindTableOfContents, r.renderTableOfContents)
}

func (r *tocRenderer) renderTableOfContents(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</nav>\n")
		return ast.WalkContinue, nil
	}
	n := node.(*TableOfContents)
	_, _ = w.WriteString("<nav class=\"toc\">\n")
	if n.Title != "" {
		_, _ = w.WriteString("<p class=\"toc-title\">")
		_, _ = w.Write(util.EscapeHTML([]byte(n.Title)))
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}
