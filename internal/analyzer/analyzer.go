package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/errgroup"

	"reddit_analyzer/internal/domain"
)

const (
	// chunkSize bounds how many completion requests are in flight at
	// once. Each chunk completes fully before the next starts.
	chunkSize = 3

	functionName = "analyze_post"

	systemPrompt = "You are a post analyzer that categorizes Reddit posts into specific themes."
	userPrompt   = "Analyze this Reddit post:\nTitle: %s\nContent: %s"
)

// Input is the minimal post shape the classifier needs.
type Input struct {
	PostID  int64
	Title   string
	Content string
}

// Config holds completion endpoint settings. BaseURL points at the
// Helicone logging proxy when HeliconeKey is set.
type Config struct {
	APIKey      string
	HeliconeKey string
	Model       string
	BaseURL     string
	Timeout     time.Duration
}

type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Analyzer classifies posts into theme categories with a structured
// function-call completion.
type Analyzer struct {
	client completionClient
	model  string
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Analyzer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.HeliconeKey != "" {
		httpClient.Transport = &heliconeTransport{key: cfg.HeliconeKey, base: http.DefaultTransport}
	}
	clientCfg.HTTPClient = httpClient

	return &Analyzer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: logger.With("component", "analyzer"),
	}
}

// heliconeTransport injects the logging proxy's auth header on every
// completion request.
type heliconeTransport struct {
	key  string
	base http.RoundTripper
}

func (t *heliconeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Helicone-Auth", "Bearer "+t.key)
	return t.base.RoundTrip(req)
}

// Classify sends one post through the completion endpoint and validates
// the function-call payload against the analysis schema.
func (a *Analyzer) Classify(ctx context.Context, in Input) (domain.ThemeAnalysis, error) {
	title := in.Title
	if len(title) > 50 {
		title = title[:50]
	}
	a.logger.Info("analyzing post", "post_id", in.PostID, "title", title)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(userPrompt, in.Title, in.Content)},
		},
		Functions:    []openai.FunctionDefinition{analysisFunction},
		FunctionCall: openai.FunctionCall{Name: functionName},
	})
	if err != nil {
		return domain.ThemeAnalysis{}, &domain.UpstreamError{Service: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return domain.ThemeAnalysis{}, &domain.SchemaViolationError{Reason: "completion returned no choices"}
	}
	call := resp.Choices[0].Message.FunctionCall
	if call == nil {
		return domain.ThemeAnalysis{}, &domain.SchemaViolationError{Reason: "completion returned no function call"}
	}

	analysis, err := parseArguments(call.Arguments)
	if err != nil {
		return domain.ThemeAnalysis{}, err
	}

	analysis.PostID = in.PostID
	analysis.AnalyzedAt = time.Now().UTC()

	a.logger.Debug("analysis complete", "post_id", in.PostID)

	return analysis, nil
}

// ClassifyBatch classifies items in submission order, chunked by
// chunkSize. All items of a chunk are dispatched concurrently and the
// whole chunk is awaited before the next begins; one failing item fails
// the whole batch.
func (a *Analyzer) ClassifyBatch(ctx context.Context, items []Input) ([]domain.ThemeAnalysis, error) {
	a.logger.Info("starting batch analysis", "count", len(items))

	results := make([]domain.ThemeAnalysis, len(items))

	for start := 0; start < len(items); start += chunkSize {
		end := min(start+chunkSize, len(items))

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				analysis, err := a.Classify(gctx, items[i])
				if err != nil {
					return fmt.Errorf("classify post %d: %w", items[i].PostID, err)
				}
				results[i] = analysis
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	a.logger.Info("completed batch analysis", "count", len(items))

	return results, nil
}

// themePayload mirrors the function schema with pointer booleans so a
// missing required field is distinguishable from false.
type themePayload struct {
	Categories struct {
		IsSolutionRequest *bool `json:"isSolutionRequest"`
		IsPainOrAnger     *bool `json:"isPainOrAnger"`
		IsAdviceRequest   *bool `json:"isAdviceRequest"`
		IsMoneyTalk       *bool `json:"isMoneyTalk"`
	} `json:"categories"`
	Reasoning domain.Reasoning `json:"reasoning"`
}

func parseArguments(args string) (domain.ThemeAnalysis, error) {
	var payload themePayload
	if err := json.Unmarshal([]byte(args), &payload); err != nil {
		return domain.ThemeAnalysis{}, &domain.SchemaViolationError{Reason: fmt.Sprintf("malformed arguments: %v", err)}
	}

	required := []struct {
		field string
		value *bool
	}{
		{"categories.isSolutionRequest", payload.Categories.IsSolutionRequest},
		{"categories.isPainOrAnger", payload.Categories.IsPainOrAnger},
		{"categories.isAdviceRequest", payload.Categories.IsAdviceRequest},
		{"categories.isMoneyTalk", payload.Categories.IsMoneyTalk},
	}
	for _, r := range required {
		if r.value == nil {
			return domain.ThemeAnalysis{}, &domain.SchemaViolationError{Reason: "missing required field " + r.field}
		}
	}

	return domain.ThemeAnalysis{
		Categories: domain.Categories{
			IsSolutionRequest: *payload.Categories.IsSolutionRequest,
			IsPainOrAnger:     *payload.Categories.IsPainOrAnger,
			IsAdviceRequest:   *payload.Categories.IsAdviceRequest,
			IsMoneyTalk:       *payload.Categories.IsMoneyTalk,
		},
		Reasoning: payload.Reasoning,
	}, nil
}
