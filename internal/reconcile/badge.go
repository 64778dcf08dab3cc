package reconcile

// LikeBadge 点赞计数的展示状态
// 0 是一个有语义的值：计数和单复数文案都要整个隐藏，
// 而不是显示一个 "0 likes"，这是产品规则，不是 bug
type LikeBadge struct {
	Count   int64
	Visible bool
	// Label 单复数文案，站点的界面是英文的
	Label string
}

func BuildLikeBadge(count int64) LikeBadge {
	if count <= 0 {
		return LikeBadge{
			Count:   0,
			Visible: false,
		}
	}
	label := "likes"
	if count == 1 {
		label = "like"
	}
	return LikeBadge{
		Count:   count,
		Visible: true,
		Label:   label,
	}
}
