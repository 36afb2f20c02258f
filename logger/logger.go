// Package logger is the console logger used by argparse based tools. It
// renders through zap with colored level prefixes and, when stdout is a
// terminal, an uilive writer so progress lines can be rewritten in
// place.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uilive"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Out io.Writer

var marker = color.New(color.Bold, color.FgBlack)

var inTerm = func() bool {
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}()

// writer routes lines ending in a carriage return through uilive, so
// consecutive Progressf lines overwrite each other, and bypasses it for
// everything else.
type writer struct {
	out *uilive.Writer
}

func (w *writer) Write(msg []byte) (int, error) {
	defer w.out.Flush()

	if len(msg) > 2 && msg[len(msg)-2] == '\r' {
		msg[len(msg)-2] = '\n'
		msg = msg[:len(msg)-1]

		return w.out.Write(msg)
	}

	return w.out.Bypass().Write(msg)
}

func init() {
	setup(false)
}

func setup(debug bool) {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05,000")
	enc.ConsoleSeparator = " "
	enc.StacktraceKey = ""
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder

	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		lvl = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		enc.CallerKey = ""
		enc.LevelKey = ""
		enc.TimeKey = ""
	}

	Out = color.Output
	if inTerm {
		uilive.Out = Out
		Out = &writer{out: uilive.New()}
	}

	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(Out),
		lvl,
	))

	zap.ReplaceGlobals(logger)
}

func SetDebug(debug bool) {
	setup(debug)
}

func Debugf(format string, args ...any) {
	zap.S().Debugf("%s %s", marker.Sprint(": "), color.MagentaString(format, args...))
}

func Infof(format string, args ...any) {
	zap.S().Infof("%s %s", marker.Sprint(">"), color.WhiteString(format, args...))
}

// Progressf logs a line that the next Progressf call overwrites when
// stdout is a terminal; the trailing carriage return is what sends it
// down the uilive path of the writer.
func Progressf(format string, args ...any) {
	zap.S().Infof("%s %s\r", marker.Sprint(">"), color.CyanString(format, args...))
}

func Warnf(format string, args ...any) {
	zap.S().Warnf("%s %s", marker.Sprint("->"), color.YellowString(format, args...))
}

func Errorf(format string, args ...any) {
	zap.S().Errorf("%s %s", marker.Sprint("=>"), color.RedString(format, args...))
}

func Fatal(args ...any) {
	zap.S().Fatalf("%s %s", marker.Sprint("=>"), color.RedString(fmt.Sprint(args...)))
}

func Fatalf(format string, args ...any) {
	zap.S().Fatalf("%s %s", marker.Sprint("=>"), color.RedString(format, args...))
}
