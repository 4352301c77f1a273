// main allows you to build md2html binary
// # md2html
//
// Convert README.md into README.html.
//
// Bare URLs are turned into links and a table of contents is generated from
// the headings. Markdown itself is rendered by [goldmark](https://github.com/yuin/goldmark).
//
// Settings are read from md2html.yaml in current directory (or ~/.config/md2html/)
// and from MD2HTML_* environment variables, e.g. `MD2HTML_TOC_TITLE=Contents`.
//
// ## Build binary
//
// `go build md2html.go` will produce you md2html binary.
package main
