package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Stans-Gate/NeuraBlend/internal/config"
)

// AIService AI生成服务
type AIService struct {
	Config config.AIConfig
	Client *http.Client
}

// NewAIService 创建AI生成服务
func NewAIService(cfg config.AIConfig) *AIService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60
	}
	return &AIService{
		Config: cfg,
		Client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// ChatRequest OpenAI Chat Completion Request
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// Message Chat Message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse OpenAI Chat Completion Response
type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// callAI 通用AI调用方法
// systemPrompt为空时只发送user消息
func (s *AIService) callAI(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !s.Config.Enabled {
		return "", fmt.Errorf("AI service is disabled")
	}

	messages := make([]Message, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, Message{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, Message{Role: "user", Content: userPrompt})

	reqBody := ChatRequest{
		Model:       s.Config.Model,
		Temperature: s.Config.Temperature,
		Messages:    messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.Config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	if s.Config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.Config.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("AI API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from AI")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// GenerateStudyPlanText 生成学习计划markdown
// 调用失败时把错误文本当作内容返回，不向上抛错
// 检测到占位资源链接时追加兜底阅读材料
func (s *AIService) GenerateStudyPlanText(ctx context.Context, name string, grade int, subject, goal string) string {
	prompt := fmt.Sprintf(`You are an AI tutor helping a grade %d student named %s who wants to learn %s.
Their goal is: %s.

Please create a numbered list of step-by-step learning objectives.
Each step should include:
- A title
- A short, clear explanation
- A recommended resource (URL if available and working).
If no valid resource is found, produce your own short reading material
(like a paragraph) that covers the same content.

Presented in clean markdown format with appropriate headings and bullet points.
Do NOT include extraneous text or disclaimers.
Output ONLY the steps as a numbered list with clear titles and markdown formatting.`,
		grade, name, subject, goal)

	planMD, err := s.callAI(ctx, "You are a helpful AI tutor for K-12 students.", prompt)
	if err != nil {
		return fmt.Sprintf("Error generating plan: %s", err.Error())
	}

	if IsInvalidResourceLink(planMD) {
		fallback := s.GenerateFallbackMaterial(ctx, subject, goal)
		planMD += "\n\nFallback Resource:\n" + fallback
	}

	return planMD
}

// GenerateFallbackMaterial 生成兜底阅读材料
// 失败时返回固定道歉文本，从不报错
func (s *AIService) GenerateFallbackMaterial(ctx context.Context, subject, goal string) string {
	fallbackPrompt := fmt.Sprintf(`Provide a concise reading passage about %s that addresses the goal: %s.
1 or 2 paragraphs max, in markdown, no links needed.`, subject, goal)

	material, err := s.callAI(ctx, "", fallbackPrompt)
	if err != nil {
		return "Could not generate fallback reading material."
	}
	return material
}

// GenerateStepQuiz 根据学习步骤内容生成单选测验
// 任何失败都返回兜底测验对象，保证调用方拿到完整结构
func (s *AIService) GenerateStepQuiz(ctx context.Context, stepContent string) Quiz {
	quizPrompt := fmt.Sprintf(`Based on the following learning step, generate a single multiple-choice quiz with EXACTLY 4 answer options:
%s

Format your response as:
Question: <some question>
Options:
A) ...
B) ...
C) ...
D) ...
Answer: <single letter A, B, C, or D>
Hint: <short hint if the student chooses the wrong answer>

The response MUST strictly follow this format with clear separations between each section.`, stepContent)

	text, err := s.callAI(ctx, "You are a helpful quiz generator.", quizPrompt)
	if err != nil {
		return ErrorQuiz(err)
	}

	return ParseQuizResponse(text).Quiz
}
