package fortune

// MaxTitleRunes 标题的硬性长度上限（按字符计），超长截断而非拒绝
const MaxTitleRunes = 8

// ScoredRecord 最终响应记录。score 始终取服务端指派值，
// 其余字段要么来自校验通过的模型输出，要么来自确定性兜底文案，
// 四个内容字段一定全部填充。
type ScoredRecord struct {
	Score          int    `json:"score"`
	Title          string `json:"title"`
	PrimaryComment string `json:"primaryComment"`
	SecondaryTip   string `json:"secondaryTip"`
	Theme          string `json:"theme"`
}

// Reconcile 逐字段核对提取结果并兜底，是生成链路的最终安全网：
// 无论 extracted 是否为 nil、字段是否缺失或非法，都返回完整记录。
//   - score: 无条件覆盖为指派值，丢弃模型自己给出的任何分数
//   - title: 非空字符串则截断到上限，否则按指数高低取明快/安静两档标签
//   - primaryComment / secondaryTip: 非空字符串原样采用，否则取指数
//     所在区间的兜底文案，保证语气与区间一致
//   - theme: 由指派器透传，不参与提取与兜底
func Reconcile(c *Content, as Assignment, extracted map[string]any) *ScoredRecord {
	rec := &ScoredRecord{
		Score: as.Score,
		Theme: as.Theme,
	}

	band := c.band(as.Score)

	if title := stringField(extracted, "title"); title != "" {
		rec.Title = truncateRunes(title, MaxTitleRunes)
	} else if as.Score > (ScoreMin+ScoreMax)/2 {
		rec.Title = c.TitleFallback.Bright
	} else {
		rec.Title = c.TitleFallback.Quiet
	}

	if comment := stringField(extracted, "primaryComment"); comment != "" {
		rec.PrimaryComment = comment
	} else {
		rec.PrimaryComment = band.Primary
	}

	if tip := stringField(extracted, "secondaryTip"); tip != "" {
		rec.SecondaryTip = tip
	} else {
		rec.SecondaryTip = band.Tip
	}

	return rec
}

// stringField 取出字符串字段，缺失或类型不符时返回空串
func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
