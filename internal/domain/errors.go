package domain

import "errors"

var (
	// ErrInvalidInput 参数校验不通过，比如自己关注自己，任何写入之前就拒绝
	ErrInvalidInput = errors.New("非法输入")
	// ErrNotFound 目标用户或者帖子不存在
	ErrNotFound = errors.New("数据不存在")
	// ErrUpstreamUnavailable 记录存储不可用，重试次数耗尽之后才会返回这个
	ErrUpstreamUnavailable = errors.New("上游存储不可用")
	// ErrPartialMutation 操作者这一侧写成功了，但对方那一侧失败了
	// 操作者看到的视图已经是对的，所以只记录日志等修复任务补齐，不作为失败返回
	ErrPartialMutation = errors.New("部分写入成功")
)
