package rag

import (
	"context"
	"strings"

	"github.com/consulta-ai/consulta-ai/pkg/types"
)

// Retrieve pulls the fragments most similar to question and renders them
// into one labeled context block, most relevant first. An empty string is
// a valid outcome: the generator then works without database context.
func (e *Engine) Retrieve(ctx context.Context, question string) string {
	return RenderContext(e.knowledge.Search(ctx, question, e.cfg.TopN))
}

// RenderContext labels each hit by kind and joins them with blank lines.
func RenderContext(matches []types.FragmentMatch) string {
	var parts []string
	for _, match := range matches {
		switch match.Kind {
		case types.FRAGMENT_KIND_SCHEMA:
			parts = append(parts, "Table Schema:\n"+match.Content)
		case types.FRAGMENT_KIND_DOCUMENTATION:
			parts = append(parts, "Documentation:\n"+match.Content)
		case types.FRAGMENT_KIND_EXAMPLE:
			parts = append(parts, "Example:\n"+match.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}
