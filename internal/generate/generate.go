// Package generate turns a free-text prompt into a persisted quote. It
// prefers the external completion provider and degrades to a local fallback
// pool, so the endpoint never fails because the provider is unavailable.
package generate

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jorren/quotespark/internal/ai"
	"github.com/jorren/quotespark/internal/store"
)

const (
	// authorProvider marks quotes produced by the external provider.
	authorProvider = "AI Generated"
	// authorFallback marks quotes picked from the local pool.
	authorFallback = "Inspiration Engine"

	backgroundURL = "https://images.unsplash.com/photo-1470770903676-69b98201ea1c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

	systemPrefix = "You are a motivational quotes generator. "
	systemSuffix = " Do not include any quotation marks in your response. Just return the quote text and nothing else."

	defaultInstruction = "Create an original, inspiring quote based on the given prompt. Keep it concise (under 150 characters) and profound."

	// emptyCompletionText is used when the provider succeeds but returns an
	// empty completion.
	emptyCompletionText = "Your potential is the sum of all the possibilities you have yet to explore."
)

// Source tells which path produced a generated quote.
type Source string

const (
	SourceProvider Source = "provider"
	SourceFallback Source = "fallback"
)

// Result describes how a quote was generated. Reason is set on the fallback
// path only.
type Result struct {
	Source Source
	Reason string
}

// Completer is the provider call the generator depends on.
type Completer interface {
	Complete(ctx context.Context, req ai.CompletionRequest) (string, error)
}

// Generator implements the quote generation policy.
type Generator struct {
	store     *store.Store
	completer Completer
}

func New(s *store.Store, completer Completer) *Generator {
	return &Generator{
		store:     s,
		completer: completer,
	}
}

// Generate produces and persists a new quote for the prompt. Settings may be
// nil for anonymous callers, in which case hard defaults apply. Generation
// never fails for a non-empty prompt: any provider error selects from the
// local fallback pool instead.
func (g *Generator) Generate(ctx context.Context, prompt string, category any, settings *store.Settings) (*store.QuoteWithCategory, Result) {
	categoryID := g.resolveCategory(category)

	model := store.DefaultAIModel
	instruction := defaultInstruction
	apiKey := ""
	if settings != nil {
		if settings.AIModel != "" {
			model = settings.AIModel
		}
		if settings.DefaultPrompt != "" {
			instruction = settings.DefaultPrompt
		}
		if settings.APIKey != nil {
			apiKey = *settings.APIKey
		}
	}

	text, err := g.completer.Complete(ctx, ai.CompletionRequest{
		System: systemPrefix + instruction + systemSuffix,
		Prompt: prompt,
		Model:  model,
		APIKey: apiKey,
	})
	if err != nil {
		log.Warn("completion provider failed, using fallback pool", "error", err)
		return g.persist(fallbackQuote(prompt), authorFallback, categoryID), Result{
			Source: SourceFallback,
			Reason: err.Error(),
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = emptyCompletionText
	}
	return g.persist(text, authorProvider, categoryID), Result{Source: SourceProvider}
}

func (g *Generator) persist(text, author string, categoryID *int) *store.QuoteWithCategory {
	background := backgroundURL
	quote := g.store.CreateQuote(store.InsertQuote{
		Text:          text,
		Author:        author,
		CategoryID:    categoryID,
		BackgroundURL: &background,
		IsAiGenerated: true,
	})

	joined, err := g.store.GetQuoteWithCategory(quote.ID)
	if err != nil {
		// The quote was just created, so this only happens if it was deleted
		// concurrently. Return the bare quote in that case.
		return &store.QuoteWithCategory{Quote: *quote}
	}
	return joined
}

// resolveCategory maps the request's category value to a category id.
// Numbers are used directly, strings are matched case-insensitively against
// category names, everything else resolves to no category.
func (g *Generator) resolveCategory(category any) *int {
	switch v := category.(type) {
	case nil:
		return nil
	case string:
		if c, err := g.store.GetCategoryByName(v); err == nil {
			return &c.ID
		}
	case float64:
		id := int(v)
		return &id
	case int:
		return &v
	case json.Number:
		if id, err := v.Int64(); err == nil {
			i := int(id)
			return &i
		}
	}
	return nil
}
