package domain

import "time"

// Post 帖子，也就是用户分享的一条视频链接
type Post struct {
	ID      string
	OwnerID string
	Title   string
	VideoURL string
	// 点赞过的用户 id
	Likes []string
	// 冗余的点赞计数，任何一次完成的点赞变更之后
	// 都必须满足 LikeCount == len(Likes)
	LikeCount int64
	Ctime     time.Time
}
