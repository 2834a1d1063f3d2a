package biz

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fortune_bear/internal/fortune"
)

// stubGenerator 可编程的生成提供方替身
type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newFortuneUC(t *testing.T, gen Generator, score int, coin int) *FortuneUseCase {
	t.Helper()
	c, err := fortune.LoadContent()
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	assigner := fortune.NewAssigner(c, fortune.WithRand(func(n int) int { return score }))
	return NewFortuneUseCase(c, assigner, gen, func(n int) int { return coin }, log.DefaultLogger)
}

func TestDailyRisk_ScoreAuthority(t *testing.T) {
	// 模型擅自给出的 score 必须被服务端指派值覆盖
	gen := &stubGenerator{reply: "```json\n" +
		`{"score": 3, "title": "긴 호흡", "primaryComment": "a. b.", "secondaryTip": "c. d."}` +
		"\n```"}
	uc := newFortuneUC(t, gen, 72, 0)

	rec := uc.DailyRisk(context.Background())
	if rec.Score != 72 {
		t.Errorf("Score = %d, want 72", rec.Score)
	}
	if rec.Title != "긴 호흡" {
		t.Errorf("Title = %q, 模型给出的合法标题应被采用", rec.Title)
	}
	if rec.PrimaryComment != "a. b." || rec.SecondaryTip != "c. d." {
		t.Errorf("合法字段未被原样采用: %+v", rec)
	}
}

func TestDailyRisk_ProviderErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("connection refused")}
	uc := newFortuneUC(t, gen, 10, 0)

	rec := uc.DailyRisk(context.Background())
	if rec == nil {
		t.Fatal("DailyRisk() 返回 nil, 兜底保证被破坏")
	}
	if rec.Score != 10 {
		t.Errorf("Score = %d, want 10", rec.Score)
	}
	if rec.Title == "" || rec.PrimaryComment == "" || rec.SecondaryTip == "" || rec.Theme == "" {
		t.Errorf("兜底记录存在空字段: %+v", rec)
	}
}

func TestDailyRisk_GarbageOutputFallsBack(t *testing.T) {
	gen := &stubGenerator{reply: "오늘은 말을 아낀다"}
	uc := newFortuneUC(t, gen, 95, 0)

	rec := uc.DailyRisk(context.Background())
	if rec.Score != 95 {
		t.Errorf("Score = %d, want 95", rec.Score)
	}
	// 高分档的兜底语气
	c, _ := fortune.LoadContent()
	want := fortune.Reconcile(c, fortune.Assignment{Score: 95}, nil).PrimaryComment
	if rec.PrimaryComment != want {
		t.Errorf("PrimaryComment = %q, want 高分档兜底文案", rec.PrimaryComment)
	}
}

func TestDecide_PickedIsServerSide(t *testing.T) {
	gen := &stubGenerator{reply: "그 쪽의 흐름이 더 순해 보인다. 나는 그렇게 느꼈다."}

	uc := newFortuneUC(t, gen, 50, 0)
	res, err := uc.Decide(context.Background(), "X", "Y")
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if res.Picked != "X" {
		t.Errorf("coin=0 时 Picked = %q, want X", res.Picked)
	}

	uc = newFortuneUC(t, gen, 50, 1)
	res, err = uc.Decide(context.Background(), "X", "Y")
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if res.Picked != "Y" {
		t.Errorf("coin=1 时 Picked = %q, want Y", res.Picked)
	}
	if res.Justification == "" {
		t.Error("Justification 为空")
	}
}

func TestDecide_MissingOption(t *testing.T) {
	gen := &stubGenerator{reply: "whatever"}
	uc := newFortuneUC(t, gen, 50, 0)

	for _, pair := range [][2]string{{"X", ""}, {"", "Y"}, {"  ", "Y"}} {
		_, err := uc.Decide(context.Background(), pair[0], pair[1])
		if err == nil {
			t.Fatalf("Decide(%q, %q) 应返回错误", pair[0], pair[1])
		}
		if !errors.IsBadRequest(err) {
			t.Errorf("Decide(%q, %q) error = %v, want BadRequest", pair[0], pair[1], err)
		}
	}
	if gen.calls != 0 {
		t.Errorf("校验失败时不应调用生成提供方, 实际调用 %d 次", gen.calls)
	}
}

func TestDecide_UpstreamError(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("timeout")}
	uc := newFortuneUC(t, gen, 50, 0)

	_, err := uc.Decide(context.Background(), "X", "Y")
	if err == nil {
		t.Fatal("上游失败时 Decide() 应返回错误")
	}
	if !errors.IsInternalServer(err) {
		t.Errorf("error = %v, want InternalServer", err)
	}
}

func TestDecide_EmptyContentIsUpstreamError(t *testing.T) {
	gen := &stubGenerator{reply: "   "}
	uc := newFortuneUC(t, gen, 50, 0)

	_, err := uc.Decide(context.Background(), "X", "Y")
	if !errors.IsInternalServer(err) {
		t.Errorf("error = %v, want InternalServer", err)
	}
}
