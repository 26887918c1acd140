package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

const maxRecentActivity = 20

// RecentActivity is one line of the activity feed shown by the inspector.
type RecentActivity struct {
	Kind      string `json:"kind"`
	Feed      string `json:"feed"`
	Timestamp string `json:"timestamp"`
}

// MonitoringStats aggregates every metric of the server process.
type MonitoringStats struct {
	MessagesCreated uint64  `json:"messages_created"`
	EventsPublished uint64  `json:"events_published"`
	EventsDropped   uint64  `json:"events_dropped"`
	SinkFailures    uint64  `json:"sink_failures"`
	Subscriptions   int64   `json:"subscriptions"`
	UploadedBytes   uint64  `json:"uploaded_bytes"`
	UploadSpeed     float64 `json:"upload_speed"`

	QueueSize     int `json:"queue_size"`
	QueueCapacity int `json:"queue_capacity"`

	RssBytes   uint64  `json:"rss_bytes"`
	CpuPercent float64 `json:"cpu_percent"`
	PidStatus  string  `json:"pid_status"`
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`

	RecentActivity []RecentActivity `json:"recent_activity"`
}

// MonitoringManager collects counters from the hot path with atomics and
// turns them into a snapshot on every Refresh.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats MonitoringStats

	MessagesCreated uint64
	EventsPublished uint64
	EventsDropped   uint64
	SinkFailures    uint64
	Subscriptions   int64
	UploadedBytes   uint64
	uploadWindow    uint64
	LastCheck       time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{
		log:       log,
		LastCheck: time.Now(),
		latestStats: MonitoringStats{
			RecentActivity: make([]RecentActivity, 0),
		},
	}
}

func (mm *MonitoringManager) IncrMessagesCreated() {
	atomic.AddUint64(&mm.MessagesCreated, 1)
}

func (mm *MonitoringManager) IncrEventsPublished() {
	atomic.AddUint64(&mm.EventsPublished, 1)
}

func (mm *MonitoringManager) IncrEventsDropped() {
	atomic.AddUint64(&mm.EventsDropped, 1)
}

func (mm *MonitoringManager) IncrSinkFailures() {
	atomic.AddUint64(&mm.SinkFailures, 1)
}

// AddSubscriptions tracks live subscriptions, delta may be negative.
func (mm *MonitoringManager) AddSubscriptions(delta int64) {
	atomic.AddInt64(&mm.Subscriptions, delta)
}

func (mm *MonitoringManager) IncrUploadedBytes(n uint64) {
	atomic.AddUint64(&mm.UploadedBytes, n)
	atomic.AddUint64(&mm.uploadWindow, n)
}

// AddActivity pushes an entry on top of the recent activity list.
func (mm *MonitoringManager) AddActivity(kind, feed string) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	activity := RecentActivity{
		Kind:      kind,
		Feed:      feed,
		Timestamp: time.Now().Format("15:04:05"),
	}
	mm.latestStats.RecentActivity = append([]RecentActivity{activity}, mm.latestStats.RecentActivity...)
	if len(mm.latestStats.RecentActivity) > maxRecentActivity {
		mm.latestStats.RecentActivity = mm.latestStats.RecentActivity[:maxRecentActivity]
	}
}

func (mm *MonitoringManager) UpdateQueue(size, capacity int) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.QueueSize = size
	mm.latestStats.QueueCapacity = capacity
}

// Refresh recomputes the snapshot from the counters and the given process stats.
func (mm *MonitoringManager) Refresh(rss uint64, cpu float64, status string) MonitoringStats {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	now := time.Now()
	if duration := now.Sub(mm.LastCheck).Seconds(); duration > 0 {
		window := atomic.SwapUint64(&mm.uploadWindow, 0)
		mm.latestStats.UploadSpeed = (float64(window) / 1024 / 1024) / duration
	}
	mm.LastCheck = now

	mm.latestStats.MessagesCreated = atomic.LoadUint64(&mm.MessagesCreated)
	mm.latestStats.EventsPublished = atomic.LoadUint64(&mm.EventsPublished)
	mm.latestStats.EventsDropped = atomic.LoadUint64(&mm.EventsDropped)
	mm.latestStats.SinkFailures = atomic.LoadUint64(&mm.SinkFailures)
	mm.latestStats.Subscriptions = atomic.LoadInt64(&mm.Subscriptions)
	mm.latestStats.UploadedBytes = atomic.LoadUint64(&mm.UploadedBytes)
	mm.latestStats.RssBytes = rss
	mm.latestStats.CpuPercent = cpu
	mm.latestStats.PidStatus = status

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC

	return mm.copyLatest()
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.copyLatest()
}

func (mm *MonitoringManager) copyLatest() MonitoringStats {
	stats := mm.latestStats
	stats.RecentActivity = append([]RecentActivity(nil), mm.latestStats.RecentActivity...)
	return stats
}
