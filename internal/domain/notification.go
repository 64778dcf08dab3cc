package domain

import "time"

type NotificationKind string

const (
	NotificationKindNewFollower NotificationKind = "new_follower"
	NotificationKindNewLike     NotificationKind = "new_like"
	NotificationKindNewComment  NotificationKind = "new_comment"
	NotificationKindNewPost     NotificationKind = "new_post"
	NotificationKindNewFeature  NotificationKind = "new_feature"
)

// Notification 只有收件人能看到，创建之后唯一允许的变更就是标记已读
type Notification struct {
	ID          string
	RecipientID string
	Kind        NotificationKind
	// 具体业务的数据，比如 actor、post 的 id
	// 线下和各业务方协商好 key
	Payload map[string]string
	Read    bool
	Ctime   time.Time
}

type DigestPeriod string

const (
	DigestPeriodDaily  DigestPeriod = "daily"
	DigestPeriodWeekly DigestPeriod = "weekly"
)

// Digest 一个时间窗口内的未读通知聚合成的一条消息
type Digest struct {
	RecipientID string
	Period      DigestPeriod
	Entries     []Notification
	// 渲染好的正文，交给外部的邮件投递方
	Body string
	// 窗口的右边界，也是新的水位线
	GeneratedAt time.Time
}
