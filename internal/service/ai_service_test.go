package service

import (
	"ai_interview_backend/internal/config"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newFakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		if req["model"] != "test-model" {
			t.Errorf("model = %v, want test-model", req["model"])
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{BaseURL: baseURL, APIKey: "test-key", Model: "test-model"})
}

// TestCompleteJSON_StripsCodeFence 模型输出带```json围栏时仍能解析
func TestCompleteJSON_StripsCodeFence(t *testing.T) {
	srv := newFakeCompletionServer(t, "```json\n{\"a\": 1}\n```")
	defer srv.Close()

	result, err := newTestAIService(srv.URL).CompleteJSON(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("CompleteJSON() error = %v, want nil", err)
	}
	if v, ok := result["a"].(float64); !ok || v != 1 {
		t.Errorf("result[a] = %v, want 1", result["a"])
	}
}

// TestCompleteJSON_PlainJSON 无围栏的正常JSON
func TestCompleteJSON_PlainJSON(t *testing.T) {
	srv := newFakeCompletionServer(t, "{\"questions\": [{\"text\": \"为什么选择这个岗位？\", \"type\": \"软技能\"}]}")
	defer srv.Close()

	result, err := newTestAIService(srv.URL).CompleteJSON(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("CompleteJSON() error = %v, want nil", err)
	}
	if _, ok := result["questions"].([]interface{}); !ok {
		t.Errorf("result[questions] = %T, want []interface{}", result["questions"])
	}
}

// TestCompleteJSON_Unparsable 非JSON应答必须返回错误而不是哨兵值
func TestCompleteJSON_Unparsable(t *testing.T) {
	srv := newFakeCompletionServer(t, "很抱歉，我无法回答这个问题。")
	defer srv.Close()

	if _, err := newTestAIService(srv.URL).CompleteJSON(context.Background(), "system", "user"); err == nil {
		t.Error("CompleteJSON() error = nil, want parse error")
	}
}

// TestCompleteJSON_APIError 上游非200
func TestCompleteJSON_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestAIService(srv.URL).CompleteJSON(context.Background(), "system", "user"); err == nil {
		t.Error("CompleteJSON() error = nil, want API error")
	}
}

// TestCompleteJSON_TransportError 服务不可达
func TestCompleteJSON_TransportError(t *testing.T) {
	if _, err := newTestAIService("http://127.0.0.1:1").CompleteJSON(context.Background(), "system", "user"); err == nil {
		t.Error("CompleteJSON() error = nil, want transport error")
	}
}

func TestStripJSONFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"{\"a\":1}", "{\"a\":1}"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
	}
	for _, c := range cases {
		if got := stripJSONFence(c.in); got != c.want {
			t.Errorf("stripJSONFence(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
