package service

import (
	"context"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository"
)

type UserService interface {
	// Create 首次完成身份解析的时候建档
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Profile(ctx context.Context, id string) (domain.User, error)
	// Resolve 优先按规范 id 解析，命中就直接返回
	// 只有没拿到 id 的时候才会退化成按昵称找，昵称不保证唯一
	Resolve(ctx context.Context, id string, nickname string) (domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (svc *userService) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if u.Nickname == "" {
		return domain.User{}, domain.ErrInvalidInput
	}
	return svc.repo.Create(ctx, u)
}

func (svc *userService) Profile(ctx context.Context, id string) (domain.User, error) {
	return svc.repo.FindByID(ctx, id)
}

func (svc *userService) Resolve(ctx context.Context, id string, nickname string) (domain.User, error) {
	if id != "" {
		u, err := svc.repo.FindByID(ctx, id)
		if err == nil {
			// 规范 id 命中，短路返回，不再看昵称
			return u, nil
		}
		return domain.User{}, err
	}
	if nickname == "" {
		return domain.User{}, domain.ErrInvalidInput
	}
	return svc.repo.FindByNickname(ctx, nickname)
}
