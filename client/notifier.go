package client

import (
	"log/slog"
	"sync"
	"time"
)

type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

type Toast struct {
	Level   ToastLevel
	Message string
	At      time.Time
}

// Notifier shows transient messages to the user. Failures end here and
// nowhere else: nothing is retried.
type Notifier interface {
	Success(message string)
	Error(message string)
}

const defaultToastHistory = 20

// LogNotifier writes toasts to the log and keeps the most recent ones for display.
type LogNotifier struct {
	log    *slog.Logger
	limit  int
	mu     sync.Mutex
	toasts []Toast
}

func NewLogNotifier(log *slog.Logger, limit int) *LogNotifier {
	if limit <= 0 {
		limit = defaultToastHistory
	}
	return &LogNotifier{log: log, limit: limit}
}

func (n *LogNotifier) Success(message string) {
	n.log.Info(message, "toast", ToastSuccess)
	n.push(Toast{Level: ToastSuccess, Message: message, At: time.Now()})
}

func (n *LogNotifier) Error(message string) {
	n.log.Warn(message, "toast", ToastError)
	n.push(Toast{Level: ToastError, Message: message, At: time.Now()})
}

func (n *LogNotifier) push(t Toast) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, t)
	if len(n.toasts) > n.limit {
		n.toasts = n.toasts[len(n.toasts)-n.limit:]
	}
}

// Toasts returns the kept toasts, oldest first.
func (n *LogNotifier) Toasts() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Toast(nil), n.toasts...)
}
