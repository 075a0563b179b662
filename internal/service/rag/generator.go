package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"roteiro/backend/internal/model"
)

// AnswerGenerator phrases a final answer in the persona's voice from
// retrieved passages. Optional; when absent the orchestrator returns the
// raw context.
type AnswerGenerator interface {
	Generate(ctx context.Context, persona model.Persona, question string, passages []Passage) (string, error)
}

type anthropicGenerator struct {
	client  anthropic.Client
	model   string
	limiter *RateLimiter
}

// NewAnthropicGenerator creates a Claude-backed answer generator.
func NewAnthropicGenerator(apiKey, modelName string, limiter *RateLimiter) AnswerGenerator {
	return &anthropicGenerator{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   modelName,
		limiter: limiter,
	}
}

func (g *anthropicGenerator) Generate(ctx context.Context, persona model.Persona, question string, passages []Passage) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt(persona)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt(question, passages))),
		},
	})
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			buf.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

func systemPrompt(persona model.Persona) string {
	return fmt.Sprintf(
		"Você é %s, assistente do roteiro de dispensação PQT-U para hanseníase. %s "+
			"Responda em português, somente com base no contexto fornecido. "+
			"Se o contexto não cobre a pergunta, diga isso claramente.",
		persona.Name, persona.Style,
	)
}

func userPrompt(question string, passages []Passage) string {
	var buf strings.Builder
	buf.WriteString("Contexto:\n")
	for _, p := range passages {
		buf.WriteString("## ")
		buf.WriteString(p.Title)
		if p.Priority != "" {
			buf.WriteString(" ")
			buf.WriteString(p.Priority)
		}
		buf.WriteString("\n")
		buf.WriteString(p.Content)
		buf.WriteString("\n\n")
	}
	buf.WriteString("Pergunta: ")
	buf.WriteString(question)
	return buf.String()
}
