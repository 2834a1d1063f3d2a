// Package llm 封装对文本生成提供方的调用
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/fortune_bear/pkg/logger"
)

// Config 生成提供方配置
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
	RPM         int
	QPS         int
}

// Client 长生命周期的生成客户端，进程启动时构造一次后只读复用
type Client struct {
	cm          model.ChatModel
	limiter     *rate.Limiter
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

// NewClient 初始化 LLM 客户端与限流器
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	rpm := cfg.RPM
	if rpm <= 0 {
		rpm = 60
	}
	qps := cfg.QPS
	if qps <= 0 {
		qps = 1
	}
	limiter := rate.NewLimiter(rate.Limit(float64(rpm)/60.0), qps)

	temperature := cfg.Temperature
	if temperature <= 0 {
		// 文案本身是创造性部分，采样温度偏高
		temperature = 0.9
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 512
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cm:          cm,
		limiter:     limiter,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
	}, nil
}

// Generate 发起一次生成调用并返回原始文本。
// 调用前等待限流令牌，整体受超时约束；不做重试，失败交由上层兜底。
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("limiter wait error: %w", err)
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: system},
		{Role: schema.User, Content: user},
	}

	start := time.Now()
	resp, err := c.cm.Generate(ctx, messages,
		model.WithTemperature(c.temperature),
		model.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		logger.Log.Errorf("生成调用失败: %v", err)
		return "", err
	}
	logger.Log.Debugf("生成调用完成, 耗时 %v", time.Since(start))

	return resp.Content, nil
}
