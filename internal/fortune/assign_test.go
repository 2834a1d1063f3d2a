package fortune

import (
	"testing"
	"time"
)

func TestAssign_ScoreRange(t *testing.T) {
	c, err := LoadContent()
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	a := NewAssigner(c)

	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		as := a.Assign()
		if as.Score < ScoreMin || as.Score > ScoreMax {
			t.Fatalf("Assign() score = %d, 超出 [%d, %d]", as.Score, ScoreMin, ScoreMax)
		}
		seen[as.Score] = true
	}
	// 1 万次抽样下 101 个取值几乎必然全部出现，留一点余量
	if len(seen) < 95 {
		t.Errorf("10000 次抽样仅覆盖 %d 个取值，分布疑似不均匀", len(seen))
	}
}

func TestAssign_InjectedRand(t *testing.T) {
	c, err := LoadContent()
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	a := NewAssigner(c, WithRand(func(n int) int { return 42 }))

	if got := a.Assign().Score; got != 42 {
		t.Errorf("Assign() score = %d, want 42", got)
	}
}

func TestAssign_ThemeCalendarHit(t *testing.T) {
	c, err := LoadContent()
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	christmas := time.Date(2025, 12, 25, 9, 0, 0, 0, time.UTC)
	a := NewAssigner(c, WithClock(func() time.Time { return christmas }))

	if got := a.Assign().Theme; got != c.Calendar["12-25"] {
		t.Errorf("Assign() theme = %q, want %q", got, c.Calendar["12-25"])
	}
}

func TestAssign_ThemeWeekdayFallback(t *testing.T) {
	c, err := LoadContent()
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	// 2026-08-31 是星期一，且不在节日表中
	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	a := NewAssigner(c, WithClock(func() time.Time { return monday }))

	if got := a.Assign().Theme; got != c.Weekdays[int(time.Monday)] {
		t.Errorf("Assign() theme = %q, want %q", got, c.Weekdays[int(time.Monday)])
	}
}
