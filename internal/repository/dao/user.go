package dao

import (
	"context"
	"errors"
	"time"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/recordstore"
)

const TableUsers = "Users"

// User Users 表的 schema
type User struct {
	ID             string
	Nickname       string
	Following      []string
	FollowedBy     []string
	LikedPosts     []string
	LastDigestedAt time.Time
	Ctime          time.Time
}

type UserDAO interface {
	Insert(ctx context.Context, u User) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	// FindByNickname 昵称不保证唯一，返回第一个命中的
	// 只作为没有拿到规范 id 时的兜底解析路径
	FindByNickname(ctx context.Context, nickname string) (User, error)
	UpdateFollowing(ctx context.Context, id string, following []string) error
	UpdateFollowedBy(ctx context.Context, id string, followedBy []string) error
	UpdateLikedPosts(ctx context.Context, id string, likedPosts []string) error
	UpdateLastDigestedAt(ctx context.Context, id string, t time.Time) error
	// List 用分页游标扫全表，修复任务和摘要任务用
	List(ctx context.Context, offset string, limit int) ([]User, string, error)
}

type StoreUserDAO struct {
	store recordstore.Client
}

func NewStoreUserDAO(store recordstore.Client) UserDAO {
	return &StoreUserDAO{store: store}
}

func (d *StoreUserDAO) Insert(ctx context.Context, u User) (User, error) {
	rec, err := d.store.Create(ctx, TableUsers, map[string]any{
		"Nickname":   u.Nickname,
		"Following":  u.Following,
		"FollowedBy": u.FollowedBy,
		"LikedPosts": u.LikedPosts,
	})
	if err != nil {
		return User{}, mapStoreErr(err)
	}
	return d.toEntity(rec), nil
}

func (d *StoreUserDAO) FindByID(ctx context.Context, id string) (User, error) {
	rec, err := d.store.Find(ctx, TableUsers, id)
	if err != nil {
		return User{}, mapStoreErr(err)
	}
	return d.toEntity(rec), nil
}

func (d *StoreUserDAO) FindByNickname(ctx context.Context, nickname string) (User, error) {
	formula, err := recordstore.Eq("Nickname", nickname)
	if err != nil {
		return User{}, domain.ErrInvalidInput
	}
	page, err := d.store.Select(ctx, TableUsers, recordstore.Query{
		Formula:    formula,
		MaxRecords: 1,
	})
	if err != nil {
		return User{}, mapStoreErr(err)
	}
	if len(page.Records) == 0 {
		return User{}, domain.ErrNotFound
	}
	return d.toEntity(page.Records[0]), nil
}

func (d *StoreUserDAO) UpdateFollowing(ctx context.Context, id string, following []string) error {
	_, err := d.store.Update(ctx, TableUsers, id, map[string]any{
		"Following": following,
	})
	return mapStoreErr(err)
}

func (d *StoreUserDAO) UpdateFollowedBy(ctx context.Context, id string, followedBy []string) error {
	_, err := d.store.Update(ctx, TableUsers, id, map[string]any{
		"FollowedBy": followedBy,
	})
	return mapStoreErr(err)
}

func (d *StoreUserDAO) UpdateLikedPosts(ctx context.Context, id string, likedPosts []string) error {
	_, err := d.store.Update(ctx, TableUsers, id, map[string]any{
		"LikedPosts": likedPosts,
	})
	return mapStoreErr(err)
}

func (d *StoreUserDAO) UpdateLastDigestedAt(ctx context.Context, id string, t time.Time) error {
	_, err := d.store.Update(ctx, TableUsers, id, map[string]any{
		"LastDigestedAt": t.UTC().Format(time.RFC3339),
	})
	return mapStoreErr(err)
}

func (d *StoreUserDAO) List(ctx context.Context, offset string, limit int) ([]User, string, error) {
	page, err := d.store.Select(ctx, TableUsers, recordstore.Query{
		MaxRecords: limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, "", mapStoreErr(err)
	}
	res := make([]User, 0, len(page.Records))
	for _, rec := range page.Records {
		res = append(res, d.toEntity(rec))
	}
	return res, page.Offset, nil
}

func (d *StoreUserDAO) toEntity(rec recordstore.Record) User {
	return User{
		ID:             rec.ID,
		Nickname:       fieldString(rec.Fields, "Nickname"),
		Following:      fieldStrings(rec.Fields, "Following"),
		FollowedBy:     fieldStrings(rec.Fields, "FollowedBy"),
		LikedPosts:     fieldStrings(rec.Fields, "LikedPosts"),
		LastDigestedAt: fieldTime(rec.Fields, "LastDigestedAt"),
		Ctime:          rec.CreatedTime,
	}
}

func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, recordstore.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, recordstore.ErrUnavailable):
		return domain.ErrUpstreamUnavailable
	default:
		return err
	}
}
