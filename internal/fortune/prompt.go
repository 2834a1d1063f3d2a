package fortune

import (
	"strconv"
	"strings"
)

// Prompt 一次生成调用的出站提示词
type Prompt struct {
	System string
	User   string
}

// BuildRiskPrompt 构造今日指数生成的提示词。指数与气流已由服务端
// 指派，这里只要求模型围绕这两个值产出符合 schema 的 JSON。
func BuildRiskPrompt(c *Content, as Assignment) Prompt {
	r := strings.NewReplacer(
		"{{score}}", strconv.Itoa(as.Score),
		"{{theme}}", as.Theme,
	)
	return Prompt{
		System: strings.TrimSpace(c.Risk.System),
		User:   strings.TrimSpace(r.Replace(c.Risk.User)),
	}
}

// BuildDecidePrompt 构造二选一的说理提示词。选择已在服务端完成，
// 模型只负责解释，不允许重新选择。
func BuildDecidePrompt(c *Content, optionA, optionB, picked string) Prompt {
	r := strings.NewReplacer(
		"{{optionA}}", optionA,
		"{{optionB}}", optionB,
		"{{picked}}", picked,
	)
	return Prompt{
		System: strings.TrimSpace(c.Decide.System),
		User:   strings.TrimSpace(r.Replace(c.Decide.User)),
	}
}
