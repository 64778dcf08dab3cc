package job

import (
	"context"
	"sync"
	"time"

	rlock "github.com/gotomicro/redis-lock"
	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository"
	"github.com/malk-tv/malk/internal/service"
	"github.com/malk-tv/malk/pkg/logger"
)

// DigestJob 定时给每个用户出一份通知摘要
// 多实例部署的时候靠分布式锁保证只有一个实例在跑
type DigestJob struct {
	svc       service.DigestService
	userRepo  repository.UserRepository
	period    domain.DigestPeriod
	timeout   time.Duration
	client    *rlock.Client
	key       string
	l         logger.LoggerV1
	lock      *rlock.Lock
	localLock *sync.Mutex
	// send 渲染好的摘要交给外部投递方，投递本身不归我们管
	send func(ctx context.Context, d domain.Digest) error
}

func NewDigestJob(svc service.DigestService,
	userRepo repository.UserRepository,
	period domain.DigestPeriod,
	client *rlock.Client,
	l logger.LoggerV1,
	timeout time.Duration,
	send func(ctx context.Context, d domain.Digest) error) *DigestJob {
	return &DigestJob{
		svc:       svc,
		userRepo:  userRepo,
		period:    period,
		timeout:   timeout,
		client:    client,
		key:       "rlock:cron_job:digest:" + string(period),
		l:         l,
		localLock: &sync.Mutex{},
		send:      send,
	}
}

func (j *DigestJob) Name() string {
	return "digest_" + string(j.period)
}

func (j *DigestJob) Run() error {
	j.localLock.Lock()
	defer j.localLock.Unlock()
	if j.lock == nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		lock, err := j.client.Lock(ctx, j.key, j.timeout, &rlock.FixIntervalRetry{
			Interval: time.Millisecond * 100,
			Max:      0,
		}, time.Second)
		if err != nil {
			// 没抢到锁，说明别的实例在跑
			return nil
		}
		j.lock = lock
		go func() {
			// 自动续约，续不上就放弃，下一轮再抢
			err1 := lock.AutoRefresh(j.timeout/2, time.Second)
			if err1 != nil {
				j.l.Error("摘要任务锁续约失败", logger.Error(err1))
			}
			j.localLock.Lock()
			j.lock = nil
			j.localLock.Unlock()
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	return j.run(ctx)
}

func (j *DigestJob) run(ctx context.Context) error {
	const batchSize = 50
	offset := ""
	for {
		users, next, err := j.userRepo.List(ctx, offset, batchSize)
		if err != nil {
			return err
		}
		for _, u := range users {
			digest, err := j.svc.Generate(ctx, u.ID, j.period)
			if err != nil {
				// 一个用户失败不影响其他用户
				j.l.Error("生成摘要失败",
					logger.Error(err),
					logger.String("uid", u.ID))
				continue
			}
			if len(digest.Entries) == 0 {
				continue
			}
			if err := j.send(ctx, digest); err != nil {
				j.l.Error("投递摘要失败",
					logger.Error(err),
					logger.String("uid", u.ID))
			}
		}
		if next == "" {
			return nil
		}
		offset = next
	}
}

func (j *DigestJob) Close() error {
	j.localLock.Lock()
	lock := j.lock
	j.lock = nil
	j.localLock.Unlock()
	if lock == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return lock.Unlock(ctx)
}
