package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Stans-Gate/NeuraBlend/internal/config"
)

// fakeCompletionServer 模拟chat completions接口
// replies 按请求顺序依次返回
func fakeCompletionServer(t *testing.T, replies []string) (*httptest.Server, *[]ChatRequest) {
	t.Helper()
	var seen []ChatRequest
	idx := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		seen = append(seen, req)

		reply := ""
		if idx < len(replies) {
			reply = replies[idx]
		}
		idx++

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": reply}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	return srv, &seen
}

func testAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{
		Enabled:     true,
		BaseURL:     baseURL,
		Model:       "gpt-4",
		Temperature: 0.7,
		Timeout:     5,
	})
}

func TestGenerateStudyPlanText_ValidLink(t *testing.T) {
	plan := "1. **Basics** - start here ([resource](http://good.org/path))"
	srv, seen := fakeCompletionServer(t, []string{plan})
	defer srv.Close()

	svc := testAIService(srv.URL)
	got := svc.GenerateStudyPlanText(context.Background(), "Alice", 5, "Math", "learn fractions")

	if got != plan {
		t.Fatalf("unexpected plan: %q", got)
	}
	if len(*seen) != 1 {
		t.Fatalf("expected 1 API call, got %d", len(*seen))
	}
	if (*seen)[0].Messages[0].Role != "system" {
		t.Fatalf("expected system message first, got %+v", (*seen)[0].Messages)
	}
	if !strings.Contains((*seen)[0].Messages[1].Content, "grade 5 student named Alice") {
		t.Fatalf("prompt missing student context: %q", (*seen)[0].Messages[1].Content)
	}
}

func TestGenerateStudyPlanText_BrokenLinkAppendsFallback(t *testing.T) {
	plan := "1. **Basics** - read ([here](http://example.com/broken))"
	fallback := "Fractions split a whole into equal parts."
	srv, seen := fakeCompletionServer(t, []string{plan, fallback})
	defer srv.Close()

	svc := testAIService(srv.URL)
	got := svc.GenerateStudyPlanText(context.Background(), "Alice", 5, "Math", "learn fractions")

	want := plan + "\n\nFallback Resource:\n" + fallback
	if got != want {
		t.Fatalf("unexpected plan:\n%q\nwant:\n%q", got, want)
	}
	if len(*seen) != 2 {
		t.Fatalf("expected 2 API calls, got %d", len(*seen))
	}
	// 兜底调用只有user一条消息
	if len((*seen)[1].Messages) != 1 || (*seen)[1].Messages[0].Role != "user" {
		t.Fatalf("unexpected fallback messages: %+v", (*seen)[1].Messages)
	}
}

func TestGenerateStudyPlanText_APIErrorEmbedded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := testAIService(srv.URL)
	got := svc.GenerateStudyPlanText(context.Background(), "Bob", 8, "Physics", "understand motion")

	if !strings.HasPrefix(got, "Error generating plan: ") {
		t.Fatalf("expected embedded error text, got %q", got)
	}
}

func TestGenerateStudyPlanText_Disabled(t *testing.T) {
	svc := NewAIService(config.AIConfig{Enabled: false})
	got := svc.GenerateStudyPlanText(context.Background(), "Bob", 8, "Physics", "understand motion")

	if !strings.HasPrefix(got, "Error generating plan: ") {
		t.Fatalf("expected embedded error text, got %q", got)
	}
}

func TestGenerateFallbackMaterial_FailureReturnsApology(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := testAIService(srv.URL)
	got := svc.GenerateFallbackMaterial(context.Background(), "Math", "learn fractions")

	if got != "Could not generate fallback reading material." {
		t.Fatalf("unexpected fallback text: %q", got)
	}
}

func TestGenerateStepQuiz_ParsesTemplate(t *testing.T) {
	reply := `Question: What is 2+2?
Options:
A) 3
B) 4
C) 5
D) 22
Answer: B
Hint: Count on your fingers.`
	srv, _ := fakeCompletionServer(t, []string{reply})
	defer srv.Close()

	svc := testAIService(srv.URL)
	quiz := svc.GenerateStepQuiz(context.Background(), "Addition basics")

	if quiz.Question != "What is 2+2?" {
		t.Fatalf("unexpected question: %q", quiz.Question)
	}
	if quiz.AnswerIndex != 1 {
		t.Fatalf("expected answer_index 1, got %d", quiz.AnswerIndex)
	}
	if len(quiz.Options) != 4 || quiz.Options[3] != "22" {
		t.Fatalf("unexpected options: %v", quiz.Options)
	}
}

func TestGenerateStepQuiz_APIErrorReturnsErrorQuiz(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := testAIService(srv.URL)
	quiz := svc.GenerateStepQuiz(context.Background(), "Addition basics")

	if !strings.HasPrefix(quiz.Question, "Error generating quiz: ") {
		t.Fatalf("expected error quiz, got %q", quiz.Question)
	}
	if len(quiz.Options) != 4 || quiz.Options[0] != "Option A" {
		t.Fatalf("unexpected options: %v", quiz.Options)
	}
	if quiz.Hint != "Sorry, there was an error generating this quiz." {
		t.Fatalf("unexpected hint: %q", quiz.Hint)
	}
}
