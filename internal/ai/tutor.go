// Package ai provides the Sensei chatbot, a conversational tutor that
// answers questions about kana, vocabulary and Japanese basics. It sees a
// read-only summary of the learner's progress, never the record itself.
package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/example/kanasensei/internal/progress"
	"github.com/example/kanasensei/pkg/models"
)

const (
	defaultModel = openai.GPT4oMini
	// historyLimit caps how many stored turns are replayed into each
	// request
	historyLimit = 12
)

const personaPrompt = "You are Sensei, a friendly and encouraging Japanese tutor " +
	"inside a kana learning app. Answer questions about hiragana, katakana, " +
	"vocabulary, pronunciation and Japanese basics. Keep answers short and " +
	"practical, and use romaji alongside any Japanese text. If the learner " +
	"struggles with specific characters, weave them into your examples."

// Tutor is a client for the chat completion API
type Tutor struct {
	client  *openai.Client
	model   string
	tracker *progress.Tracker
}

// New creates a tutor from the environment. OPENAI_API_KEY is required;
// OPENAI_MODEL and OPENAI_BASE_URL override the defaults.
func New(tracker *progress.Tracker) (*Tutor, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Tutor{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		tracker: tracker,
	}, nil
}

// Chat sends one learner message and returns the tutor's reply. Both
// turns are appended to the persisted conversation log; earlier turns are
// replayed so the conversation has continuity across requests.
func (t *Tutor) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("message is empty")
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: personaPrompt},
		{Role: openai.ChatMessageRoleSystem, Content: summarize(t.tracker.Summary())},
	}
	for _, turn := range t.tracker.ChatHistory(historyLimit) {
		role := openai.ChatMessageRoleUser
		if turn.Role == "model" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       t.model,
		Messages:    messages,
		MaxTokens:   400,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get chat completion: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)

	t.tracker.AppendChatTurn(models.ChatTurn{Role: "user", Text: message})
	t.tracker.AppendChatTurn(models.ChatTurn{Role: "model", Text: reply})
	return reply, nil
}

// summarize renders the progress projection as a context preamble
func summarize(s models.StudySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Learner progress: %d characters seen, current study streak %d days, %d items in the review set.",
		s.SeenCount, s.StudyStreak, s.IncorrectCount)
	if len(s.RecentIncorrect) > 0 {
		fmt.Fprintf(&b, " Recently missed: %s.", strings.Join(s.RecentIncorrect, ", "))
	}
	for _, o := range s.RecentOutcomes {
		fmt.Fprintf(&b, " Recent %s session: %d/%d.", o.QuizKind, o.Score, o.Total)
	}
	return b.String()
}
