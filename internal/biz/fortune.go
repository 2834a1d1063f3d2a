package biz

import (
	"context"
	stderrors "errors"
	"math/rand/v2"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fortune_bear/internal/fortune"
	"github.com/iWorld-y/fortune_bear/pkg/metrics"
)

// Generator 文本生成提供方接口，便于测试替换
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// DecideResult 二选一的结果
type DecideResult struct {
	Picked        string
	Justification string
}

// FortuneUseCase 生成链路的编排者：指派 → 构造提示词 → 外部调用 →
// 提取 → 兜底。外部调用是链路中唯一的网络 IO。
type FortuneUseCase struct {
	content  *fortune.Content
	assigner *fortune.Assigner
	gen      Generator
	rand     fortune.RandInt
	log      *log.Helper
}

// NewFortuneUseCase 创建编排者。r 用于二选一的掷硬币，传 nil 则用默认随机源。
func NewFortuneUseCase(content *fortune.Content, assigner *fortune.Assigner, gen Generator, r fortune.RandInt, logger log.Logger) *FortuneUseCase {
	if r == nil {
		r = rand.IntN
	}
	return &FortuneUseCase{
		content:  content,
		assigner: assigner,
		gen:      gen,
		rand:     r,
		log:      log.NewHelper(logger),
	}
}

// DailyRisk 生成今日指数记录。任何失败都被吸收进兜底文案，
// 因此对调用方而言本操作永不失败。
func (uc *FortuneUseCase) DailyRisk(ctx context.Context) *fortune.ScoredRecord {
	metrics.RiskRequests.Inc()

	as := uc.assigner.Assign()
	p := fortune.BuildRiskPrompt(uc.content, as)

	raw, err := uc.gen.Generate(ctx, p.System, p.User)
	if err != nil {
		metrics.ProviderErrors.Inc()
		metrics.RiskFallbacks.WithLabelValues("provider_error").Inc()
		uc.log.WithContext(ctx).Errorf("生成调用失败, 走兜底文案: %v", err)
		return fortune.Reconcile(uc.content, as, nil)
	}

	fields, err := fortune.Extract(raw)
	if err != nil {
		reason := "extract_error"
		var exErr *fortune.ExtractionError
		if stderrors.As(err, &exErr) {
			reason = string(exErr.Kind)
		}
		metrics.RiskFallbacks.WithLabelValues(reason).Inc()
		uc.log.WithContext(ctx).Warnf("提取失败(%s), 走兜底文案: %v, 原文: %q", reason, err, raw)
		return fortune.Reconcile(uc.content, as, nil)
	}

	return fortune.Reconcile(uc.content, as, fields)
}

// Decide 在两个选项间做 50/50 的服务端选择，再让模型解释这个
// 已经做出的选择。与 DailyRisk 不同，此路径没有本地兜底：
// 上游失败会作为错误返回。
func (uc *FortuneUseCase) Decide(ctx context.Context, optionA, optionB string) (*DecideResult, error) {
	metrics.DecideRequests.Inc()

	a := strings.TrimSpace(optionA)
	b := strings.TrimSpace(optionB)
	if a == "" || b == "" {
		return nil, errors.BadRequest("MISSING_OPTION", "optionA 와 optionB 가 모두 필요하다")
	}

	picked := a
	if uc.rand(2) == 1 {
		picked = b
	}

	p := fortune.BuildDecidePrompt(uc.content, a, b, picked)
	raw, err := uc.gen.Generate(ctx, p.System, p.User)
	if err != nil {
		metrics.ProviderErrors.Inc()
		uc.log.WithContext(ctx).Errorf("二选一生成调用失败: %v", err)
		return nil, errors.InternalServer("UPSTREAM_ERROR", "포춘베어가 지금은 말을 아낀다.")
	}

	justification := strings.TrimSpace(raw)
	if justification == "" {
		uc.log.WithContext(ctx).Error("二选一生成返回空内容")
		return nil, errors.InternalServer("UPSTREAM_ERROR", "포춘베어가 지금은 말을 아낀다.")
	}

	return &DecideResult{Picked: picked, Justification: justification}, nil
}
