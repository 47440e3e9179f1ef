package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tradehook/conf"
)

// 基于zap的全局日志，文件输出使用lumberjack滚动切割

var (
	l *zap.Logger
	s *zap.SugaredLogger
)

func init() {
	// Init之前（比如单测里）也要能直接打日志
	l, _ = zap.NewDevelopment(zap.AddCallerSkip(1))
	s = l.Sugar()
}

// InitLogger 根据配置初始化全局日志
func InitLogger(cfg *conf.LogConfig, appName string) {
	encCfg := zap.NewProductionEncoderConfig()
	if cfg.TimeFormat != "" {
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	} else {
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	encCfg.TimeKey = "time"

	level := zapcore.InfoLevel
	_ = level.Set(cfg.Level)

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.FileName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
		LocalTime:  cfg.LocalTime,
	})

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileWriter, level),
	}
	if cfg.Console {
		consoleEnc := zap.NewDevelopmentEncoderConfig()
		cores = append(cores,
			zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEnc), zapcore.AddSync(os.Stdout), level))
	}

	l = zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("app", appName)))
	s = l.Sugar()
}

// Pair 构造一个日志键值对
func Pair(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

func Debug(msg string, fields ...zap.Field) { l.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { l.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { l.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { l.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { l.Fatal(msg, fields...) }

func Debugf(format string, args ...interface{}) { s.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { s.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { s.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { s.Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { s.Fatalf(format, args...) }

// Sync 刷新所有日志缓冲
func Sync() error {
	return multierr.Append(l.Sync(), s.Sync())
}
