package services

import (
	"errors"
	"testing"
)

func TestParseQuizResponse_FullTemplate(t *testing.T) {
	text := `Question: What is the powerhouse of the cell?
Options:
A) Nucleus
B) Ribosome
C) Mitochondria
D) Golgi apparatus
Answer: C
Hint: It produces most of the cell's ATP.`

	out := ParseQuizResponse(text)

	if !out.QuestionFound || !out.OptionsFound || !out.AnswerFound || !out.HintFound {
		t.Fatalf("expected all fields found, got %+v", out)
	}
	if out.Quiz.Question != "What is the powerhouse of the cell?" {
		t.Fatalf("unexpected question: %q", out.Quiz.Question)
	}
	want := []string{"Nucleus", "Ribosome", "Mitochondria", "Golgi apparatus"}
	if len(out.Quiz.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(out.Quiz.Options))
	}
	for i, w := range want {
		if out.Quiz.Options[i] != w {
			t.Fatalf("option %d: got %q, want %q", i, out.Quiz.Options[i], w)
		}
	}
	if out.Quiz.AnswerIndex != 2 {
		t.Fatalf("expected answer_index 2, got %d", out.Quiz.AnswerIndex)
	}
	if out.Quiz.Hint != "It produces most of the cell's ATP." {
		t.Fatalf("unexpected hint: %q", out.Quiz.Hint)
	}
}

func TestParseQuizResponse_NoMarkersDegradesToDefaults(t *testing.T) {
	out := ParseQuizResponse("The model refused to answer and produced an apology instead.")

	if out.QuestionFound || out.OptionsFound || out.AnswerFound || out.HintFound {
		t.Fatalf("expected nothing found, got %+v", out)
	}
	if out.Quiz.Question != DefaultQuestion {
		t.Fatalf("expected sentinel question, got %q", out.Quiz.Question)
	}
	if len(out.Quiz.Options) != 4 {
		t.Fatalf("expected 4 placeholder options, got %d", len(out.Quiz.Options))
	}
	for i, w := range DefaultOptions() {
		if out.Quiz.Options[i] != w {
			t.Fatalf("option %d: got %q, want %q", i, out.Quiz.Options[i], w)
		}
	}
	if out.Quiz.AnswerIndex != 0 {
		t.Fatalf("expected default answer_index 0, got %d", out.Quiz.AnswerIndex)
	}
	if out.Quiz.Hint != DefaultHint {
		t.Fatalf("expected default hint, got %q", out.Quiz.Hint)
	}
}

func TestParseQuizResponse_ScatteredOptionMarkers(t *testing.T) {
	// 没有 Options: 整体模板，只有散落的字母标记
	text := `Question: Pick one.
A) first B) second
C) third
Answer: B
Hint: think again`

	out := ParseQuizResponse(text)

	if !out.OptionsFound {
		t.Fatalf("expected fallback option scan to succeed")
	}
	if len(out.Quiz.Options) != 3 {
		t.Fatalf("expected 3 options, got %d: %v", len(out.Quiz.Options), out.Quiz.Options)
	}
	if out.Quiz.Options[0] != "first" || out.Quiz.Options[1] != "second" || out.Quiz.Options[2] != "third" {
		t.Fatalf("unexpected options: %v", out.Quiz.Options)
	}
	if out.Quiz.AnswerIndex != 1 {
		t.Fatalf("expected answer_index 1, got %d", out.Quiz.AnswerIndex)
	}
}

func TestParseQuizResponse_MissingAnswerDefaultsToZero(t *testing.T) {
	text := `Question: Anything?
Options:
A) yes
B) no
C) maybe
D) unsure
Hint: go with your gut`

	out := ParseQuizResponse(text)

	if out.AnswerFound {
		t.Fatalf("expected no answer marker")
	}
	if out.Quiz.AnswerIndex != 0 {
		t.Fatalf("expected default answer_index 0, got %d", out.Quiz.AnswerIndex)
	}
	if !out.OptionsFound || len(out.Quiz.Options) != 4 {
		t.Fatalf("expected 4 options, got %v", out.Quiz.Options)
	}
}

func TestParseQuizResponse_QuestionOnly(t *testing.T) {
	out := ParseQuizResponse("Question: Lone question with nothing else")

	if !out.QuestionFound {
		t.Fatalf("expected question found")
	}
	if out.Quiz.Question != "Lone question with nothing else" {
		t.Fatalf("unexpected question: %q", out.Quiz.Question)
	}
	if out.OptionsFound {
		t.Fatalf("expected no options found")
	}
}

func TestErrorQuiz(t *testing.T) {
	q := ErrorQuiz(errors.New("connection refused"))

	if q.Question != "Error generating quiz: connection refused" {
		t.Fatalf("unexpected question: %q", q.Question)
	}
	if len(q.Options) != 4 || q.Options[0] != "Option A" {
		t.Fatalf("unexpected options: %v", q.Options)
	}
	if q.AnswerIndex != 0 {
		t.Fatalf("expected answer_index 0, got %d", q.AnswerIndex)
	}
	if q.Hint != "Sorry, there was an error generating this quiz." {
		t.Fatalf("unexpected hint: %q", q.Hint)
	}
}
