package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/groupguard/groupguard/config"
	"github.com/groupguard/groupguard/metrics"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	typedsf "github.com/t2bot/go-typed-singleflight"
)

// Analyzer wraps the remote classifier. It requests low-variance output (temperature 0.3)
// for consistent scoring of the same input, but callers must still treat results as
// non-deterministic. Failures never surface as errors: the adapter is fail-open and maps
// every failure to zeroed scores with ErrorReason.
type Analyzer struct {
	client    openai.Client
	modelName string
	timeout   time.Duration
	cacheTtl  time.Duration

	sf      *typedsf.Group[*Scores] // keyed by text hash
	results *cache.Cache[string, *Scores]
}

func NewAnalyzer(cnf *config.InstanceConfig, additionalClientOptions ...option.RequestOption) (*Analyzer, error) {
	if cnf.OpenAIApiKey == "" {
		return nil, errors.New("api key not set")
	}
	options := append([]option.RequestOption{
		option.WithAPIKey(cnf.OpenAIApiKey),
		option.WithBaseURL(cnf.OpenAIBaseUrl),
	}, additionalClientOptions...)
	client := openai.NewClient(options...)
	return &Analyzer{
		client:    client,
		modelName: cnf.OpenAIModelName,
		timeout:   time.Duration(cnf.OpenAITimeoutSeconds) * time.Second,
		cacheTtl:  time.Duration(cnf.ClassifierCacheSeconds) * time.Second,
		sf:        new(typedsf.Group[*Scores]),
		results:   cache.New[string, *Scores](),
	}, nil
}

// Analyze - classifies the message text, deduplicating concurrent identical texts and
// caching recent results so repeated copypasta doesn't re-bill. Never returns an error.
func (a *Analyzer) Analyze(ctx context.Context, text string) *Scores {
	if err := ctx.Err(); err != nil {
		log.Println("Not classifying message because context was cancelled:", err)
		return &Scores{Reason: ErrorReason}
	}

	key := cacheKey(text)
	if cached, ok := a.results.Get(key); ok {
		return cached
	}

	res, err, _ := a.sf.Do(key, func() (*Scores, error) {
		// A fresh context: the singleflight may span multiple callers and shouldn't be
		// tied to the first caller's deadline.
		callCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		return a.classify(callCtx, text), nil
	})
	if err != nil || res == nil {
		// The work fn never returns an error, but don't rely on that here.
		return &Scores{Reason: ErrorReason}
	}
	if res.Reason != ErrorReason {
		a.results.Set(key, res, cache.WithExpiration(a.cacheTtl))
	}
	return res
}

func (a *Analyzer) classify(ctx context.Context, text string) *Scores {
	t := metrics.StartClassifierTimer()
	defer t.ObserveDuration()

	res, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       a.modelName,
		Temperature: openai.Float(0.3),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Role: "system",
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(strings.TrimSpace(analysisSystemPrompt)),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Role: "user",
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(text),
					},
				},
			},
		},
	})
	if err != nil {
		// Note: fail-open. An unreachable classifier lets messages through rather than
		// blocking the chat.
		log.Println("Error classifying message:", err)
		metrics.RecordClassifierError("request")
		return &Scores{Reason: ErrorReason}
	}

	for _, r := range res.Choices {
		raw := rawClassification{}
		if err := json.Unmarshal([]byte(strings.TrimSpace(r.Message.Content)), &raw); err != nil {
			log.Printf("Error parsing classifier response ('%s'): %s", r.Message.Content, err)
			metrics.RecordClassifierError("parse")
			continue
		}
		return &Scores{
			Spam:   raw.Spam,
			Toxic:  raw.Toxic,
			Danger: raw.Danger,
			Reason: raw.Reason,
		}
	}

	metrics.RecordClassifierError("empty")
	return &Scores{Reason: ErrorReason}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
