package xzap

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config 日志配置
type Config struct {
	Level      string `toml:"level" mapstructure:"level" json:"level"`                   // 日志级别: debug/info/warn/error
	Mode       string `toml:"mode" mapstructure:"mode" json:"mode"`                      // console 或 file
	Path       string `toml:"path" mapstructure:"path" json:"path"`                      // 文件模式下的日志路径
	MaxSize    int    `toml:"max_size" mapstructure:"max_size" json:"max_size"`          // 单文件最大 MB
	MaxAge     int    `toml:"max_age" mapstructure:"max_age" json:"max_age"`             // 保留天数
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups" json:"max_backups"` // 保留文件数
	Compress   bool   `toml:"compress" mapstructure:"compress" json:"compress"`
}

// Logger zap.Logger 的薄封装, 通过 WithContext 获取
type Logger struct {
	*zap.Logger
}

var (
	mu     sync.RWMutex
	global = &Logger{zap.NewNop()}
)

// SetUp 初始化全局日志实例
// 重复调用会替换全局实例 (用于测试场景)
func SetUp(c Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var ws zapcore.WriteSyncer
	if c.Mode == "file" && c.Path != "" {
		// 文件模式: 使用 lumberjack 做日志轮转
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   c.Path,
			MaxSize:    c.MaxSize,
			MaxAge:     c.MaxAge,
			MaxBackups: c.MaxBackups,
			Compress:   c.Compress,
		})
	} else {
		ws = zapcore.AddSync(os.Stdout)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, level)
	l := &Logger{zap.New(core, zap.AddCaller())}

	mu.Lock()
	global = l
	mu.Unlock()

	return l, nil
}

// WithContext 获取带上下文的日志实例
// ctx 预留给链路追踪字段注入, 当前仅返回全局实例
func WithContext(_ context.Context) *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
