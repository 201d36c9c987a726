package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

// Init builds the process-wide logger. Production gets JSON output,
// anything else gets the colored development encoder.
func Init(environment string) {
	var config zap.Config
	if environment == "production" {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	sugar = l.Sugar()
}

func base() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// normalize tolerates the shorthand call shapes used across the codebase:
// a trailing bare error (or any odd value) becomes the "error" field.
func normalize(args []interface{}) []interface{} {
	if len(args)%2 == 0 {
		return args
	}
	out := make([]interface{}, 0, len(args)+1)
	out = append(out, args[:len(args)-1]...)
	out = append(out, "error", args[len(args)-1])
	return out
}

func Debug(msg string, args ...interface{}) {
	base().Debugw(msg, normalize(args)...)
}

func Info(msg string, args ...interface{}) {
	base().Infow(msg, normalize(args)...)
}

func Warn(msg string, args ...interface{}) {
	base().Warnw(msg, normalize(args)...)
}

func Error(msg string, args ...interface{}) {
	base().Errorw(msg, normalize(args)...)
}

func Fatal(msg string, args ...interface{}) {
	base().Fatalw(msg, normalize(args)...)
}

// Sync flushes buffered entries; call on shutdown.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
