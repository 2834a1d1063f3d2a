// Package service 暴露 HTTP JSON 接口
package service

import (
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/fortune_bear/internal/biz"
)

// RiskReply POST /api/risk 的响应体
type RiskReply struct {
	Success        bool   `json:"success"`
	Score          int    `json:"score"`
	Title          string `json:"title"`
	PrimaryComment string `json:"primaryComment"`
	SecondaryTip   string `json:"secondaryTip"`
	Theme          string `json:"theme"`
}

// DecideReq POST /api/decide 的请求体
type DecideReq struct {
	OptionA string `json:"optionA"`
	OptionB string `json:"optionB"`
}

// DecideResult 二选一结果
type DecideResult struct {
	Picked        string `json:"picked"`
	Justification string `json:"justification"`
}

// DecideReply POST /api/decide 的响应体
type DecideReply struct {
	Success bool          `json:"success"`
	Result  *DecideResult `json:"result"`
}

// CreateReviewReq POST /api/reviews 的请求体
type CreateReviewReq struct {
	Nickname string `json:"nickname"`
	Content  string `json:"content"`
}

// OkReply 仅表示成功的响应体
type OkReply struct {
	Success bool `json:"success"`
}

// ReviewItem 评论条目
type ReviewItem struct {
	ID        int64  `json:"id"`
	Nickname  string `json:"nickname"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// ListReviewsReply GET /api/reviews 的响应体
type ListReviewsReply struct {
	Success bool          `json:"success"`
	Reviews []*ReviewItem `json:"reviews"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	Total   int           `json:"total"`
	HasMore bool          `json:"hasMore"`
}

// ErrorReply 统一的失败响应体
type ErrorReply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FortuneService 聚合各用例并实现 HTTP 处理器
type FortuneService struct {
	ucFortune *biz.FortuneUseCase
	ucReview  *biz.ReviewUseCase
	log       *log.Helper
}

// NewFortuneService 创建服务实例
func NewFortuneService(ucFortune *biz.FortuneUseCase, ucReview *biz.ReviewUseCase, logger log.Logger) *FortuneService {
	return &FortuneService{
		ucFortune: ucFortune,
		ucReview:  ucReview,
		log:       log.NewHelper(logger),
	}
}

// DailyRisk POST /api/risk。编排层保证不失败，因此总是 200。
func (s *FortuneService) DailyRisk(ctx khttp.Context) error {
	rec := s.ucFortune.DailyRisk(ctx)
	return ctx.JSON(200, &RiskReply{
		Success:        true,
		Score:          rec.Score,
		Title:          rec.Title,
		PrimaryComment: rec.PrimaryComment,
		SecondaryTip:   rec.SecondaryTip,
		Theme:          rec.Theme,
	})
}

// Decide POST /api/decide
func (s *FortuneService) Decide(ctx khttp.Context) error {
	var req DecideReq
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errors.BadRequest("INVALID_BODY", "잘못된 요청 본문이다"))
	}

	res, err := s.ucFortune.Decide(ctx, req.OptionA, req.OptionB)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(200, &DecideReply{
		Success: true,
		Result:  &DecideResult{Picked: res.Picked, Justification: res.Justification},
	})
}

// CreateReview POST /api/reviews
func (s *FortuneService) CreateReview(ctx khttp.Context) error {
	var req CreateReviewReq
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errors.BadRequest("INVALID_BODY", "잘못된 요청 본문이다"))
	}

	if err := s.ucReview.Create(ctx, req.Nickname, req.Content); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(200, &OkReply{Success: true})
}

// ListReviews GET /api/reviews
func (s *FortuneService) ListReviews(ctx khttp.Context) error {
	// form 解码按 json 标签取小写的查询键
	var q struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
	}
	if err := ctx.BindQuery(&q); err != nil {
		return s.writeError(ctx, errors.BadRequest("INVALID_QUERY", "잘못된 질의 인자다"))
	}
	page := q.Page
	if page < 1 {
		page = biz.DefaultReviewPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = biz.DefaultReviewLimit
	}
	if limit > biz.MaxReviewLimit {
		limit = biz.MaxReviewLimit
	}

	reviews, total, err := s.ucReview.List(ctx, page, limit)
	if err != nil {
		return s.writeError(ctx, err)
	}

	items := make([]*ReviewItem, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, &ReviewItem{
			ID:        r.ID,
			Nickname:  r.Nickname,
			Content:   r.Content,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}

	return ctx.JSON(200, &ListReviewsReply{
		Success: true,
		Reviews: items,
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: page*limit < total,
	})
}

// writeError 把用例层错误映射为统一失败响应。
// 客户端错误保留原始消息，其余一律 500 并只返回通用文案，细节只进日志。
func (s *FortuneService) writeError(ctx khttp.Context, err error) error {
	se := errors.FromError(err)
	code := int(se.Code)
	if code < 400 || code > 599 {
		code = 500
	}
	msg := se.Message
	if code >= 500 {
		s.log.WithContext(ctx).Errorf("请求处理失败: %v", err)
		msg = "포춘베어가 지금은 말을 아낀다."
	}
	return ctx.JSON(code, &ErrorReply{Success: false, Message: msg})
}
