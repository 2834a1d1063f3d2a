package fortune

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	// ScoreMin / ScoreMax 今日指数的闭区间范围
	ScoreMin = 0
	ScoreMax = 100
)

// RandInt 随机源，返回 [0, n) 内的整数。默认使用 math/rand/v2，
// 测试中可以注入固定实现。
type RandInt func(n int) int

// Assignment 服务端预先指派的权威值，模型输出不可覆盖
type Assignment struct {
	Score int
	Theme string
}

// Assigner 指数与今日气流的指派器。指派不依赖外部调用，不会失败。
type Assigner struct {
	content *Content
	rand    RandInt
	now     func() time.Time
}

// AssignerOption Assigner 的可选配置
type AssignerOption func(*Assigner)

// WithRand 注入随机源
func WithRand(r RandInt) AssignerOption {
	return func(a *Assigner) { a.rand = r }
}

// WithClock 注入时钟
func WithClock(now func() time.Time) AssignerOption {
	return func(a *Assigner) { a.now = now }
}

// NewAssigner 创建指派器
func NewAssigner(content *Content, opts ...AssignerOption) *Assigner {
	a := &Assigner{
		content: content,
		rand:    rand.IntN,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assign 每次调用独立均匀地抽取一个指数，并根据当前日期推导今日气流。
// 指数在外部模型调用之前确定，之后始终以该值为准。
func (a *Assigner) Assign() Assignment {
	return Assignment{
		Score: ScoreMin + a.rand(ScoreMax-ScoreMin+1),
		Theme: a.themeFor(a.now()),
	}
}

// themeFor 优先查节日表（月-日），未命中时退回星期文案
func (a *Assigner) themeFor(t time.Time) string {
	key := fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())
	if theme, ok := a.content.Calendar[key]; ok {
		return theme
	}
	return a.content.Weekdays[int(t.Weekday())]
}
