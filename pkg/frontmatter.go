package pkg

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// stripFrontMatter drops a leading YAML or TOML front matter block.
// Sources without one are returned as they are.
func stripFrontMatter(source []byte) ([]byte, error) {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	return body, nil
}
