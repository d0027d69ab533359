package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sugared zap logger
type Logger struct {
	*zap.SugaredLogger
}

// New builds a console logger writing to out; verbose switches to debug level.
func New(verbose bool, out zapcore.WriteSyncer) *Logger {
	level := zapcore.InfoLevel
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	if verbose {
		level = zapcore.DebugLevel
		encCfg = zap.NewDevelopmentEncoderConfig()
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), out, level)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}

// discards everything
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}
