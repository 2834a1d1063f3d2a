package biz

import (
	"context"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

const (
	// DefaultReviewPage / DefaultReviewLimit 分页默认值
	DefaultReviewPage  = 1
	DefaultReviewLimit = 5
	// MaxReviewLimit 单页上限
	MaxReviewLimit = 50
)

// Review 用户评论实体
type Review struct {
	ID        int64
	Nickname  string
	Content   string
	CreatedAt time.Time
}

// ReviewRepo 评论仓库接口
type ReviewRepo interface {
	// CreateReview 写入一条评论，CreatedAt 由存储端赋值
	CreateReview(ctx context.Context, r *Review) error
	// ListReviews 按 ID 倒序分页查询，同时返回总条数
	ListReviews(ctx context.Context, page, limit int) ([]*Review, int, error)
}

// ReviewUseCase 评论业务逻辑
type ReviewUseCase struct {
	repo ReviewRepo
	log  *log.Helper
}

// NewReviewUseCase 创建评论业务逻辑实例
func NewReviewUseCase(repo ReviewRepo, logger log.Logger) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, log: log.NewHelper(logger)}
}

// Create 校验并写入评论
func (uc *ReviewUseCase) Create(ctx context.Context, nickname, content string) error {
	nickname = strings.TrimSpace(nickname)
	content = strings.TrimSpace(content)
	if nickname == "" || content == "" {
		return errors.BadRequest("MISSING_FIELD", "nickname 과 content 가 모두 필요하다")
	}
	return uc.repo.CreateReview(ctx, &Review{Nickname: nickname, Content: content})
}

// List 分页查询评论，page/limit 非法时回退默认值
func (uc *ReviewUseCase) List(ctx context.Context, page, limit int) ([]*Review, int, error) {
	if page < 1 {
		page = DefaultReviewPage
	}
	if limit < 1 {
		limit = DefaultReviewLimit
	}
	if limit > MaxReviewLimit {
		limit = MaxReviewLimit
	}
	return uc.repo.ListReviews(ctx, page, limit)
}
