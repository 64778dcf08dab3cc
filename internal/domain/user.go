package domain

import "time"

// User 用户的领域对象
// Following 和 FollowedBy 必须互为镜像：A 在 B 的 Following 里
// 当且仅当 B 在 A 的 FollowedBy 里
type User struct {
	ID       string
	Nickname string
	// 我关注了谁
	Following []string
	// 谁关注了我
	FollowedBy []string
	// 我点赞过的帖子
	LikedPosts []string
	// 摘要水位线，上次给这个用户生成摘要的时间
	LastDigestedAt time.Time
	Ctime          time.Time
}

// FollowRelation 一条关注关系的边
type FollowRelation struct {
	// 关注的人
	Follower string
	// 被关注的人
	Followee string
}

// FollowStatics 关注统计，页面上要频繁展示，适合缓存
type FollowStatics struct {
	// 被多少人关注
	Followers int64
	// 自己关注了多少人
	Followees int64
}
