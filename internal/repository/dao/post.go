package dao

import (
	"context"

	"github.com/malk-tv/malk/internal/recordstore"
	"time"
)

const TablePosts = "Posts"

// Post Posts 表的 schema
type Post struct {
	ID        string
	OwnerID   string
	Title     string
	VideoURL  string
	Likes     []string
	LikeCount int64
	Ctime     time.Time
}

type PostDAO interface {
	Insert(ctx context.Context, p Post) (Post, error)
	FindByID(ctx context.Context, id string) (Post, error)
	// UpdateLikes 点赞集合和冗余计数在同一次更新里写进去
	// 单条记录的一次更新是原子的，这样计数不会跟集合脱节
	UpdateLikes(ctx context.Context, id string, likes []string, likeCount int64) error
	// ListLikedBy 某个用户点赞过的帖子
	ListLikedBy(ctx context.Context, uid string) ([]Post, error)
}

type StorePostDAO struct {
	store recordstore.Client
}

func NewStorePostDAO(store recordstore.Client) PostDAO {
	return &StorePostDAO{store: store}
}

func (d *StorePostDAO) Insert(ctx context.Context, p Post) (Post, error) {
	rec, err := d.store.Create(ctx, TablePosts, map[string]any{
		"OwnerID":   p.OwnerID,
		"Title":     p.Title,
		"VideoURL":  p.VideoURL,
		"Likes":     p.Likes,
		"LikeCount": p.LikeCount,
	})
	if err != nil {
		return Post{}, mapStoreErr(err)
	}
	return d.toEntity(rec), nil
}

func (d *StorePostDAO) FindByID(ctx context.Context, id string) (Post, error) {
	rec, err := d.store.Find(ctx, TablePosts, id)
	if err != nil {
		return Post{}, mapStoreErr(err)
	}
	return d.toEntity(rec), nil
}

func (d *StorePostDAO) UpdateLikes(ctx context.Context, id string, likes []string, likeCount int64) error {
	_, err := d.store.Update(ctx, TablePosts, id, map[string]any{
		"Likes":     likes,
		"LikeCount": likeCount,
	})
	return mapStoreErr(err)
}

func (d *StorePostDAO) ListLikedBy(ctx context.Context, uid string) ([]Post, error) {
	formula, err := recordstore.Contains("Likes", uid)
	if err != nil {
		return nil, err
	}
	recs, err := d.store.SelectAll(ctx, TablePosts, recordstore.Query{
		Formula: formula,
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	res := make([]Post, 0, len(recs))
	for _, rec := range recs {
		res = append(res, d.toEntity(rec))
	}
	return res, nil
}

func (d *StorePostDAO) toEntity(rec recordstore.Record) Post {
	return Post{
		ID:        rec.ID,
		OwnerID:   fieldString(rec.Fields, "OwnerID"),
		Title:     fieldString(rec.Fields, "Title"),
		VideoURL:  fieldString(rec.Fields, "VideoURL"),
		Likes:     fieldStrings(rec.Fields, "Likes"),
		LikeCount: fieldInt64(rec.Fields, "LikeCount"),
		Ctime:     rec.CreatedTime,
	}
}
