package courses

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	gotemplate "github.com/pigeonhole/go-formkit/pkg/render/template/gotemplate"
)

// descriptionPolicy allows the formatting staff use in course descriptions
// while stripping scripts and event handlers.
var descriptionPolicy = bluemonday.UGCPolicy()

// Card is the course summary shown in listings. Description holds sanitised
// HTML safe to embed directly.
type Card struct {
	Name        string
	Description string
	Published   bool
}

//go:embed templates/card.tpl
var cardTemplates embed.FS

var (
	cardEngineOnce sync.Once
	cardEngine     *gotemplate.Engine
	cardEngineErr  error
)

// CardFromValues builds a course card from a validated value set. The
// description is sanitised so user-authored markup cannot inject scripts.
func CardFromValues(values map[string]any) Card {
	card := Card{}
	if name, ok := values[FieldName].(string); ok {
		card.Name = name
	}
	if description, ok := values[FieldDescription].(string); ok {
		card.Description = strings.TrimSpace(descriptionPolicy.Sanitize(description))
	}
	if published, ok := values[FieldIsPublished].(bool); ok {
		card.Published = published
	}
	return card
}

// RenderHTML draws the card as listing markup. The description was already
// sanitised when the card was built, so it embeds as-is.
func (c Card) RenderHTML(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cardEngineOnce.Do(func() {
		cardEngine, cardEngineErr = gotemplate.New(gotemplate.WithFS(cardTemplates))
	})
	if cardEngineErr != nil {
		return nil, fmt.Errorf("courses: configure card templates: %w", cardEngineErr)
	}

	result, err := cardEngine.RenderTemplate("templates/card", map[string]any{
		"card": map[string]any{
			"name":        c.Name,
			"description": c.Description,
			"published":   c.Published,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("courses: render card: %w", err)
	}
	return []byte(result), nil
}
