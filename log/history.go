package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oqtopus-team/qdeck/common"
	"go.uber.org/zap"
)

// History appends one JSON line per produced artifact to a file per day.
type History struct {
	logger *slog.Logger
	dl     *dailyLogger
}

func NewHistory(fileDir string) (*History, error) {
	if err := common.IsDirWritable(fileDir); err != nil {
		zap.L().Error("failed to set up history log", zap.Error(err))
		return nil, fmt.Errorf("failed to write to %s: %w", fileDir, err)
	}
	dl := newDailyLogger(fileDir, time.Now)
	return &History{
		logger: slog.New(slog.NewJSONHandler(dl, nil)),
		dl:     dl,
	}, nil
}

// Record is a no-op on a nil History.
func (h *History) Record(command string, attrs ...slog.Attr) {
	if h == nil {
		return
	}
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("command", command))
	for _, a := range attrs {
		args = append(args, a)
	}
	h.logger.Info("History", args...)
}

func (h *History) Close() error {
	if h == nil {
		return nil
	}
	return h.dl.Close()
}

type dailyLogger struct {
	mu              sync.Mutex
	fileDir         string
	currentFileName string
	file            *os.File
	now             func() time.Time
}

func newDailyLogger(fileDir string, now func() time.Time) *dailyLogger {
	return &dailyLogger{
		fileDir: fileDir,
		now:     now,
	}
}

func (dl *dailyLogger) Write(p []byte) (n int, err error) {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	fileName := fmt.Sprintf("history-%s.log", dl.now().Format("2006-01-02"))
	if dl.file == nil || dl.currentFileName != fileName {
		if dl.file != nil {
			dl.file.Close()
		}
		var err error
		dl.file, err = os.OpenFile(filepath.Join(dl.fileDir, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return 0, err
		}
		dl.currentFileName = fileName
	}

	return dl.file.Write(p)
}

func (dl *dailyLogger) Close() error {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.file != nil {
		err := dl.file.Close()
		dl.file = nil
		return err
	}
	return nil
}
