package recorder

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
)

// Recorder 行式追加记录器
type Recorder interface {
	Record(row []string) error
}

// CSV文件记录器，append写入
// 日志文件是多个并发请求间唯一共享的可变资源，写入必须串行化
type CSVRecorder struct {
	mu   sync.Mutex
	file *os.File
	w    *csv.Writer
}

func NewCSVRecorder(path string) (*CSVRecorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &CSVRecorder{
		file: file,
		w:    csv.NewWriter(file),
	}, nil
}

func (r *CSVRecorder) Record(row []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.w.Write(row); err != nil {
		return err
	}
	r.w.Flush()
	return r.w.Error()
}

func (r *CSVRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.w.Flush()
	return r.file.Close()
}
