package services

import (
	"regexp"
	"strings"
)

// Quiz 单选测验对象
type Quiz struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Hint        string   `json:"hint"`
}

// ParseOutcome 解析结果
// Found标志记录各字段是命中模板还是退化为默认值
type ParseOutcome struct {
	Quiz          Quiz
	QuestionFound bool
	OptionsFound  bool
	AnswerFound   bool
	HintFound     bool
}

// 解析失败时的默认值
const (
	DefaultQuestion = "No question found."
	DefaultHint     = "Think about the process described in the material."
)

// DefaultOptions 模板完全不匹配时的占位选项
func DefaultOptions() []string {
	return []string{"Option A", "Option B", "Option C", "Option D"}
}

var (
	questionRe = regexp.MustCompile(`(?s)Question:\s*(.*?)\s*(?:Options:|$)`)
	optionsRe  = regexp.MustCompile(`(?s)Options:\s*A\)\s*(.*?)\s*B\)\s*(.*?)\s*C\)\s*(.*?)\s*D\)\s*(.*?)\s*(?:Answer:|$)`)
	optMarkRe  = regexp.MustCompile(`[A-D]\)`)
	answerRe   = regexp.MustCompile(`Answer:\s*([A-D])`)
	hintRe     = regexp.MustCompile(`(?s)Hint:\s*(.*)$`)
)

// ParseQuizResponse 从AI返回文本中提取测验结构
// 按规则顺序逐层匹配，匹配不到时退化为默认值，从不报错
func ParseQuizResponse(text string) ParseOutcome {
	out := ParseOutcome{
		Quiz: Quiz{
			Question:    DefaultQuestion,
			AnswerIndex: 0,
			Hint:        DefaultHint,
		},
	}

	// 1. 题干：Question: 到 Options: 之间
	if m := questionRe.FindStringSubmatch(text); m != nil {
		out.Quiz.Question = strings.TrimSpace(m[1])
		out.QuestionFound = true
	}

	// 2. 选项：先整体匹配完整模板，失败后扫描独立的字母标记
	if m := optionsRe.FindStringSubmatch(text); m != nil {
		opts := make([]string, 0, 4)
		for _, o := range m[1:] {
			opts = append(opts, strings.TrimSpace(o))
		}
		out.Quiz.Options = opts
		out.OptionsFound = true
	} else {
		out.Quiz.Options = scanOptionMarkers(text)
		if len(out.Quiz.Options) > 0 {
			out.OptionsFound = true
		} else {
			out.Quiz.Options = DefaultOptions()
		}
	}

	// 3. 答案字母 A-D 映射为下标，缺失或不识别时默认0
	if m := answerRe.FindStringSubmatch(text); m != nil {
		out.Quiz.AnswerIndex = int(m[1][0] - 'A')
		out.AnswerFound = true
	}

	// 4. 提示：Hint: 之后的全部内容
	if m := hintRe.FindStringSubmatch(text); m != nil {
		out.Quiz.Hint = strings.TrimSpace(m[1])
		out.HintFound = true
	}

	return out
}

// scanOptionMarkers 退化路径：在全文中扫描 A) B) C) D) 标记
// 每段取到下一个标记或 Answer: 为止，最多取前四段
func scanOptionMarkers(text string) []string {
	marks := optMarkRe.FindAllStringIndex(text, -1)
	if len(marks) == 0 {
		return nil
	}

	opts := make([]string, 0, 4)
	for i, m := range marks {
		if len(opts) == 4 {
			break
		}
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		seg := text[m[1]:end]
		if idx := strings.Index(seg, "Answer:"); idx >= 0 {
			seg = seg[:idx]
		}
		opts = append(opts, strings.TrimSpace(seg))
	}
	return opts
}

// ErrorQuiz 生成或解析过程抛出异常时返回的兜底测验对象
func ErrorQuiz(err error) Quiz {
	return Quiz{
		Question:    "Error generating quiz: " + err.Error(),
		Options:     DefaultOptions(),
		AnswerIndex: 0,
		Hint:        "Sorry, there was an error generating this quiz.",
	}
}
