package recordstore

import (
	"context"
	"errors"
	"time"
)

var (
	ErrRecordNotFound = errors.New("recordstore: 记录不存在")
	// ErrUnavailable 网络错误或者 5xx，重试耗尽之后返回
	ErrUnavailable = errors.New("recordstore: 存储服务不可用")
)

// Record 一条记录，id 是存储服务生成的不透明标识
// Fields 只允许在 dao 层出现，dao 之上必须转成带 schema 的结构体
type Record struct {
	ID          string
	Fields      map[string]any
	CreatedTime time.Time
}

type Sort struct {
	Field     string
	Direction string
}

type Query struct {
	// Formula 服务端求值的过滤条件，必须用 formula.go 里的构造器拼出来
	// 禁止手写字符串插值，用户输入会注入
	Formula    string
	Sort       []Sort
	MaxRecords int
	// Offset 上一页返回的分页游标
	Offset string
}

type Page struct {
	Records []Record
	// Offset 非空表示还有下一页
	Offset string
}

// Client 通用的表存储客户端
type Client interface {
	Select(ctx context.Context, table string, q Query) (Page, error)
	// SelectAll 跟着分页游标取完所有页
	SelectAll(ctx context.Context, table string, q Query) ([]Record, error)
	Find(ctx context.Context, table string, id string) (Record, error)
	Create(ctx context.Context, table string, fields map[string]any) (Record, error)
	Update(ctx context.Context, table string, id string, fields map[string]any) (Record, error)
	Destroy(ctx context.Context, table string, id string) error
}
