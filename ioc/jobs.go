package ioc

import (
	"context"
	"time"

	rlock "github.com/gotomicro/redis-lock"
	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/job"
	"github.com/malk-tv/malk/internal/repository"
	"github.com/malk-tv/malk/internal/service"
	"github.com/malk-tv/malk/pkg/logger"
	"github.com/robfig/cron/v3"
)

func InitJobs(digestSvc service.DigestService,
	userRepo repository.UserRepository,
	relRepo repository.RelationshipRepository,
	client *rlock.Client,
	l logger.LoggerV1) *cron.Cron {
	// 摘要投递交给外部的邮件系统，这里只记录
	send := func(ctx context.Context, d domain.Digest) error {
		l.Info("摘要已生成，等待投递",
			logger.String("uid", d.RecipientID),
			logger.String("period", string(d.Period)),
			logger.Int("entries", len(d.Entries)))
		return nil
	}
	daily := job.NewDigestJob(digestSvc, userRepo, domain.DigestPeriodDaily,
		client, l, time.Minute*10, send)
	weekly := job.NewDigestJob(digestSvc, userRepo, domain.DigestPeriodWeekly,
		client, l, time.Minute*30, send)
	// 单边关注关系的最坏脏数据窗口就是这个调度间隔
	symmetry := job.NewSymmetryJob(userRepo, relRepo, client, l, time.Minute*8)

	res := cron.New(cron.WithSeconds())
	mustAdd(res, "0 0 4 * * ?", daily, l)
	mustAdd(res, "0 0 5 * * 1", weekly, l)
	mustAdd(res, "0 */10 * * * ?", symmetry, l)
	return res
}

func mustAdd(c *cron.Cron, spec string, j job.Job, l logger.LoggerV1) {
	_, err := c.AddFunc(spec, func() {
		start := time.Now()
		err := j.Run()
		if err != nil {
			l.Error("任务执行失败",
				logger.Error(err),
				logger.String("job", j.Name()))
		}
		l.Debug("任务执行完成",
			logger.String("job", j.Name()),
			logger.String("duration", time.Since(start).String()))
	})
	if err != nil {
		panic(err)
	}
}
