package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Message is one chat turn sent to the remote completion endpoint.
type Message struct {
	Role    string
	Content string
}

// Convenience constructors used by the task generators.
func SystemMessage(content string) Message {
	return Message{Role: openai.ChatMessageRoleSystem, Content: content}
}

func UserMessage(content string) Message {
	return Message{Role: openai.ChatMessageRoleUser, Content: content}
}

// Usage is the token accounting reported by the remote endpoint.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Completion is the text of the first choice plus its usage.
type Completion struct {
	Content string
	Usage   Usage
}

// CompletionParams carries optional request knobs. The zero value sends a
// bare {model, messages} request; tasks opt into extra parameters through
// the OptionalParams interface.
type CompletionParams struct {
	Temperature *float32
	MaxTokens   int
}

// ChatClient is the transport boundary to the remote chat-completion
// endpoint. The generator depends on this interface so tests can swap in
// a canned implementation.
type ChatClient interface {
	Complete(ctx context.Context, model string, messages []Message, params CompletionParams) (*Completion, error)
}

// OpenAIClient implements ChatClient over an OpenAI-compatible HTTP API.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient builds a client for the given API key. A non-empty
// baseURL points the client at a compatible self-hosted endpoint.
func NewOpenAIClient(apiKey, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, NewConfigError("remote API key is empty")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}, nil
}

// Complete sends one chat-completion request and returns the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, model string, messages []Message, params CompletionParams) (*Completion, error) {
	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	if params.Temperature != nil {
		req.Temperature = *params.Temperature
	}
	if params.MaxTokens > 0 {
		req.MaxTokens = params.MaxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, mapCompletionError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &RemoteError{StatusCode: 200, Msg: "response contained no choices"}
	}
	return &Completion{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

// mapCompletionError translates go-openai errors into the local taxonomy.
// Context errors pass through untouched so cancellation and deadline
// checks keep working with errors.Is.
func mapCompletionError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &RemoteError{
			StatusCode: apiErr.HTTPStatusCode,
			Msg:        fmt.Sprintf("%v", apiErr.Message),
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &RemoteError{StatusCode: reqErr.HTTPStatusCode, Msg: reqErr.Error()}
	}
	return &TransportError{Err: err}
}
