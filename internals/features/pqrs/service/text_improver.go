// file: internals/features/pqrs/service/text_improver.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// TextImprover mejora la redacción de un texto. Es una capacidad opcional y
// best-effort: el ciclo de vida de las PQR nunca depende de su disponibilidad.
type TextImprover interface {
	Improve(ctx context.Context, text string) (string, error)
}

// OpenAITextImprover implementa TextImprover contra la API de chat de OpenAI.
type OpenAITextImprover struct {
	client openai.Client
	model  string
}

// NewTextImproverFromEnv devuelve nil si OPENAI_API_KEY no está configurada;
// los callers deben tratar nil como "capacidad ausente" y seguir con el
// texto original.
func NewTextImproverFromEnv(apiKey string) TextImprover {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	return &OpenAITextImprover{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.ChatModelGPT4oMini,
	}
}

func (t *OpenAITextImprover) Improve(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Mejora esta queja formalmente para una empresa de servicios públicos: %q. Responde solo con el texto mejorado.",
		text,
	)

	resp, err := t.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: t.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("respuesta vacía del modelo")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
