package logger

type LoggerV1 interface {
	Debug(msg string, args ...Field)
	Info(msg string, args ...Field)
	Warn(msg string, args ...Field)
	Error(msg string, args ...Field)
}

// Field 不直接用 zap.Field，万一以后要换日志框架呢
type Field struct {
	Key   string
	Value any
}
