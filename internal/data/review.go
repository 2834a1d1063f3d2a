package data

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fortune_bear/internal/biz"
)

// psql Postgres 占位符风格的查询构造器
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type reviewRepo struct {
	data *Data
	log  *log.Helper
}

// NewReviewRepo 创建评论仓库
func NewReviewRepo(data *Data, logger log.Logger) biz.ReviewRepo {
	return &reviewRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *reviewRepo) CreateReview(ctx context.Context, rv *biz.Review) error {
	_, err := psql.Insert("reviews").
		Columns("nickname", "content").
		Values(rv.Nickname, rv.Content).
		RunWith(r.data.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *reviewRepo) ListReviews(ctx context.Context, page, limit int) ([]*biz.Review, int, error) {
	offset := (page - 1) * limit

	rows, err := psql.Select("id", "nickname", "content", "created_at").
		From("reviews").
		OrderBy("id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		RunWith(r.data.db).
		QueryContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*biz.Review
	for rows.Next() {
		var rv biz.Review
		if err := rows.Scan(&rv.ID, &rv.Nickname, &rv.Content, &rv.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, &rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration: %w", err)
	}

	var total int
	if err := psql.Select("COUNT(*)").
		From("reviews").
		RunWith(r.data.db).
		QueryRowContext(ctx).
		Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	return reviews, total, nil
}
