package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartprobono/intake-api/internal/core"
	"github.com/smartprobono/intake-api/internal/core/docgen"
	"github.com/smartprobono/intake-api/internal/core/llm"
	"github.com/smartprobono/intake-api/internal/core/prompt"
)

// DraftService produces the body text for formal document drafts. Unlike the
// chat path, a provider failure here surfaces to the caller: a bad draft is
// worse than no draft.
type DraftService struct {
	provider llm.Provider
}

func NewDraftService(provider llm.Provider) *DraftService {
	return &DraftService{provider: provider}
}

// Generate returns draft body text for the given document type. Without a
// configured provider it emits the deterministic skeleton so the endpoint
// stays usable in demo deployments.
func (s *DraftService) Generate(ctx context.Context, documentType, clientInfo, instructions string) (string, error) {
	if s.provider == nil {
		return docgen.Skeleton(documentType, clientInfo, instructions), nil
	}

	p := prompt.Document(documentType, clientInfo, instructions)
	text, err := s.provider.Complete(ctx, "", nil, p)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty completion", core.ErrProvider)
	}
	return text, nil
}
