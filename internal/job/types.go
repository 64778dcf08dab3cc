package job

// Job 能被 cron 调度的任务
type Job interface {
	Name() string
	Run() error
}
