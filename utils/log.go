package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

// Formatter 单行日志: 时间 [级别] 文件:行 函数 消息 k=v...
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(entry.Time.Format(time.DateTime))
	fmt.Fprintf(&sb, " [%s]", strings.ToLower(entry.Level.String()))

	if entry.Caller != nil {
		fileName := filepath.Base(entry.Caller.File)
		funcName := entry.Caller.Function
		if i := strings.LastIndex(funcName, "."); i >= 0 {
			funcName = funcName[i+1:]
		}
		fmt.Fprintf(&sb, " %s:%d %s", fileName, entry.Caller.Line, funcName)
	}
	sb.WriteString(" " + entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

// Logger 按天轮转写入 dir 的 pitaya 日志
func Logger(level logrus.Level, dir string) interfaces.Logger {
	l := logrus.New()
	if writer, err := getWriter(dir); err != nil {
		logrus.Fatalf("Failed to create log writer: %v", err)
	} else {
		l.SetOutput(writer)
	}
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l)
}

func getWriter(dir string) (*SafeRotateLogs, error) {
	programName := filepath.Base(os.Args[0])
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", dir, err)
	}

	s := &SafeRotateLogs{
		logPattern: filepath.Join(dir, programName+"-%Y%m%d.log"),
		maxAge:     logMaxAge,
		rotation:   logRotation,
	}
	if err := s.reopen(); err != nil {
		return nil, err
	}
	return s, nil
}

// SafeRotateLogs 日志文件被删除后重新创建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
	maxAge     time.Duration
	rotation   time.Duration
}

func (s *SafeRotateLogs) reopen() error {
	writer, err := rotatelogs.New(
		s.logPattern,
		rotatelogs.WithMaxAge(s.maxAge),
		rotatelogs.WithRotationTime(s.rotation),
	)
	if err != nil {
		return fmt.Errorf("failed to create log writer: %w", err)
	}
	s.RotateLogs = writer
	return nil
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	current := s.RotateLogs.CurrentFileName()
	if current != "" {
		if _, err := os.Stat(current); os.IsNotExist(err) {
			if err := s.reopen(); err != nil {
				return 0, err
			}
		}
	}
	return s.RotateLogs.Write(p)
}
