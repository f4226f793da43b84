package test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
)

// Dev note: the handler below is sensitive to changes in the OpenAI library. If it makes
// additional calls ahead of the completion or changes what it supplies as a request body,
// tests using this server will suddenly start failing.

// KeywordToxic - Used by tests to have the fake classifier score a message as toxic.
const KeywordToxic = "GG_TOXIC"

// KeywordMild - Used by tests to have the fake classifier return low scores.
const KeywordMild = "GG_MILD"

// KeywordNeutral - Used by tests to have the fake classifier return all-zero scores.
const KeywordNeutral = "GG_NEUTRAL"

// KeywordIntentionalFail - Used by tests to always cause a 500 Internal Server Error response.
const KeywordIntentionalFail = "GG_INTENTIONAL_FAIL"

// KeywordMalformed - Used by tests to make the classifier respond with non-JSON content.
const KeywordMalformed = "GG_MALFORMED"

// ClassifierServer - a fake OpenAI chat-completions endpoint with canned, keyword-driven
// responses. Requests counts completed calls so tests can assert caching behavior.
type ClassifierServer struct {
	*httptest.Server
	Requests int
}

func MakeClassifierServer(t *testing.T, apiKey string) *ClassifierServer {
	s := &ClassifierServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+apiKey, r.Header.Get("Authorization"))
		assert.Equal(t, "/chat/completions", r.URL.Path)

		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatal(err) // "should never happen"
		}
		req := string(b)
		s.Requests++

		if strings.Contains(req, KeywordIntentionalFail) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError) // should prevent automatic retry from happening
			_, _ = w.Write([]byte(`{"error":{"code":"X-ERROR","message":"Intentional fail","param":"x","type":"x"}}`))
			return
		}

		var content string
		if strings.Contains(req, KeywordToxic) {
			content = `{"spam":0,"toxic":85,"danger":30,"reason":"explicit insult","violation_score":5,"violation":false}`
		} else if strings.Contains(req, KeywordMild) {
			content = `{"spam":10,"toxic":20,"danger":5,"reason":"mostly harmless"}`
		} else if strings.Contains(req, KeywordNeutral) {
			content = `{"spam":0,"toxic":0,"danger":0,"reason":"neutral"}`
		} else if strings.Contains(req, KeywordMalformed) {
			content = `this is not json`
		} else {
			t.Fatalf("Unexpected request: %s", req)
		}

		writeCompletion(t, w, content)
	}))
	return s
}

func writeCompletion(t *testing.T, w http.ResponseWriter, content string) {
	res := openai.ChatCompletion{
		ID:     "1",
		Object: "chat.completion",
		Model:  "gpt-4.1-nano",
		Choices: []openai.ChatCompletionChoice{{
			FinishReason: "stop",
			Message: openai.ChatCompletionMessage{
				Content: content,
			},
		}},
	}
	b, err := json.Marshal(res)
	assert.NoError(t, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
