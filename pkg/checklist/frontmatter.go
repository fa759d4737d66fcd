package checklist

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatterPattern matches a leading `--- ... ---` YAML block.
var frontmatterPattern = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n`)

// FrontmatterError reports invalid checklist frontmatter.
type FrontmatterError struct {
	File    string
	Message string
}

func (e *FrontmatterError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// extractFrontmatter splits an optional YAML frontmatter block off the
// document. It returns the parsed meta (nil when absent), the remaining
// body, and the number of source lines consumed by the block so entry
// line numbers stay accurate.
func extractFrontmatter(content, file string) (*Meta, string, int, error) {
	m := frontmatterPattern.FindStringSubmatch(content)
	if m == nil {
		return nil, content, 0, nil
	}

	block := m[0]
	yamlContent := m[1]
	body := content[len(block):]
	consumed := strings.Count(block, "\n")

	// Reject unknown fields; the format has no extension point.
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(yamlContent), &raw); err != nil {
		return nil, "", 0, &FrontmatterError{File: file, Message: fmt.Sprintf("invalid frontmatter YAML: %v", err)}
	}
	known := map[string]bool{
		"api":         true,
		"api_version": true,
		"binding":     true,
	}
	for field := range raw {
		if !known[field] {
			return nil, "", 0, &FrontmatterError{File: file, Message: fmt.Sprintf("unknown frontmatter field %q", field)}
		}
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(yamlContent), &meta); err != nil {
		return nil, "", 0, &FrontmatterError{File: file, Message: fmt.Sprintf("failed to parse frontmatter: %v", err)}
	}

	return &meta, body, consumed, nil
}
