package repository

import (
	"context"
	"time"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository/dao"
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByNickname(ctx context.Context, nickname string) (domain.User, error)
	UpdateLastDigestedAt(ctx context.Context, id string, t time.Time) error
	List(ctx context.Context, offset string, limit int) ([]domain.User, string, error)
}

type CachedUserRepository struct {
	dao dao.UserDAO
}

func NewCachedUserRepository(d dao.UserDAO) UserRepository {
	return &CachedUserRepository{dao: d}
}

func (repo *CachedUserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	res, err := repo.dao.Insert(ctx, repo.toEntity(u))
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(res), nil
}

func (repo *CachedUserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	u, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(u), nil
}

func (repo *CachedUserRepository) FindByNickname(ctx context.Context, nickname string) (domain.User, error) {
	u, err := repo.dao.FindByNickname(ctx, nickname)
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(u), nil
}

func (repo *CachedUserRepository) UpdateLastDigestedAt(ctx context.Context, id string, t time.Time) error {
	return repo.dao.UpdateLastDigestedAt(ctx, id, t)
}

func (repo *CachedUserRepository) List(ctx context.Context, offset string, limit int) ([]domain.User, string, error) {
	users, next, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, "", err
	}
	res := make([]domain.User, 0, len(users))
	for _, u := range users {
		res = append(res, repo.toDomain(u))
	}
	return res, next, nil
}

func (repo *CachedUserRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		ID:             u.ID,
		Nickname:       u.Nickname,
		Following:      u.Following,
		FollowedBy:     u.FollowedBy,
		LikedPosts:     u.LikedPosts,
		LastDigestedAt: u.LastDigestedAt,
		Ctime:          u.Ctime,
	}
}

func (repo *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		ID:         u.ID,
		Nickname:   u.Nickname,
		Following:  u.Following,
		FollowedBy: u.FollowedBy,
		LikedPosts: u.LikedPosts,
	}
}
