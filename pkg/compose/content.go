package compose

import (
	"bytes"
	"errors"
	"strings"
)

// contentToken is the placeholder a wrapper leaves for the block it wraps.
const contentToken = "#content#"

// mergeContent nests the message body inside the template: the document's
// placeholder receives the template content block, whose own placeholder
// then receives the body.
func mergeContent(template *Template, body string) string {
	merged := strings.ReplaceAll(template.Document, contentToken, template.Content)
	return strings.ReplaceAll(merged, contentToken, body)
}

// renderMarkdown converts markdown rendition content to HTML.
func (c *Composer) renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := c.markdown.Convert([]byte(content), &buf); err != nil {
		return "", errors.Join(ErrMarkdownRender, err)
	}
	return buf.String(), nil
}
