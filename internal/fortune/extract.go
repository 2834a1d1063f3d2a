package fortune

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractKind 提取失败的具体类别
type ExtractKind string

const (
	// EmptyResponse 模型返回内容为空或仅有空白
	EmptyResponse ExtractKind = "empty_response"
	// NoJSONObject 清理后的文本中找不到成对的大括号
	NoJSONObject ExtractKind = "no_json_object"
	// MalformedJSON 括号切片无法按 JSON 解析
	MalformedJSON ExtractKind = "malformed_json"
)

// ExtractionError 带类别的提取失败，调用方可按 Kind 分支处理
type ExtractionError struct {
	Kind  ExtractKind
	cause error
}

func (e *ExtractionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("extract: %s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("extract: %s", e.Kind)
}

func (e *ExtractionError) Unwrap() error { return e.cause }

// Extract 从模型返回的原始文本中恢复一个 JSON 对象。
// 模型偶尔会在 JSON 外包裹提示语或 ``` 围栏，因此先剥掉围栏标记，
// 再取首个 '{' 到末个 '}' 的切片解析，而不要求整段文本都是合法 JSON。
// 此阶段只做语法解析，不校验字段，字段校验属于兜底层的职责。
func Extract(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &ExtractionError{Kind: EmptyResponse}
	}

	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	start := strings.IndexByte(clean, '{')
	if start < 0 {
		return nil, &ExtractionError{Kind: NoJSONObject}
	}
	// '}' 缺失时仍切到文本末尾再解析，留给解析器报出未闭合错误
	slice := clean[start:]
	if end := strings.LastIndexByte(clean, '}'); end >= start {
		slice = clean[start : end+1]
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(slice), &fields); err != nil {
		return nil, &ExtractionError{Kind: MalformedJSON, cause: err}
	}
	return fields, nil
}
