// Package fortune 实现核心生成管线：分数指派、提示词构造、
// 模型输出的 JSON 提取与字段兜底。
package fortune

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// PromptPair 一组 system/user 提示词模板
type PromptPair struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// Band 点数区间对应的兜底文案，Max 为区间上限（含）
type Band struct {
	Max     int    `yaml:"max"`
	Primary string `yaml:"primary"`
	Tip     string `yaml:"tip"`
}

// Content 提示词与兜底文案配置，均为产品文案而非代码路径
type Content struct {
	Risk          PromptPair        `yaml:"risk"`
	Decide        PromptPair        `yaml:"decide"`
	Calendar      map[string]string `yaml:"calendar"`
	Weekdays      []string          `yaml:"weekdays"`
	TitleFallback struct {
		Bright string `yaml:"bright"`
		Quiet  string `yaml:"quiet"`
	} `yaml:"title_fallback"`
	Bands []Band `yaml:"bands"`
}

// LoadContent 解析内嵌的文案配置
func LoadContent() (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(contentYAML, &c); err != nil {
		return nil, fmt.Errorf("解析文案配置失败: %w", err)
	}
	if len(c.Weekdays) != 7 {
		return nil, fmt.Errorf("文案配置错误: weekdays 需要 7 项, 实际 %d 项", len(c.Weekdays))
	}
	if len(c.Bands) == 0 {
		return nil, fmt.Errorf("文案配置错误: 未定义 bands")
	}
	for i, b := range c.Bands {
		if b.Primary == "" || b.Tip == "" {
			return nil, fmt.Errorf("文案配置错误: bands[%d] 文案为空", i)
		}
	}
	return &c, nil
}

// band 返回 score 所落入的区间文案，超出上限时取最后一档
func (c *Content) band(score int) Band {
	for _, b := range c.Bands {
		if score <= b.Max {
			return b
		}
	}
	return c.Bands[len(c.Bands)-1]
}
