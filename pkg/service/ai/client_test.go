package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deskhound/deskhound/pkg/domain/model/errs"
	"github.com/deskhound/deskhound/pkg/service/ai"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func newCompletionServer(t *testing.T, content string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPost)

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			Stream bool `json:"stream"`
		}
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gt.False(t, req.Stream)
		gt.A(t, req.Messages).Length(2)
		gt.V(t, req.Messages[0].Role).Equal("system")
		gt.V(t, req.Messages[1].Role).Equal("user")

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		gt.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestAsk(t *testing.T) {
	srv := newCompletionServer(t, `{"summary":"Password reset help","response":"Go to Settings > Security > Reset Password."}`)
	defer srv.Close()

	client := ai.New(srv.URL, ai.WithModel("gpt-4o-mini"))
	result := gt.R1(client.Ask(context.Background(), "How do I reset my password?")).NoError(t)

	gt.V(t, result.Summary).Equal("Password reset help")
	gt.V(t, result.Response).Equal("Go to Settings > Security > Reset Password.")
}

func TestAskStripsCodeFence(t *testing.T) {
	srv := newCompletionServer(t, "```json\n{\"summary\":\"s\",\"response\":\"r\"}\n```")
	defer srv.Close()

	client := ai.New(srv.URL)
	result := gt.R1(client.Ask(context.Background(), "question")).NoError(t)
	gt.V(t, result.Summary).Equal("s")
}

func TestAskInvalidContent(t *testing.T) {
	srv := newCompletionServer(t, "sorry, I cannot answer that")
	defer srv.Close()

	client := ai.New(srv.URL)
	_, err := client.Ask(context.Background(), "question")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagInvalidAIResponse))
}

func TestAskMissingFields(t *testing.T) {
	srv := newCompletionServer(t, `{"summary":"only summary"}`)
	defer srv.Close()

	client := ai.New(srv.URL)
	_, err := client.Ask(context.Background(), "question")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagInvalidAIResponse))
}

func TestAskServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := ai.New(srv.URL)
	_, err := client.Ask(context.Background(), "question")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagAIError))
}
