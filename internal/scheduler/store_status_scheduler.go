package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/ikkim/creme-backend/internal/app/service"
	"github.com/ikkim/creme-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

const (
	StatusOnline   = "online"
	StatusFallback = "fallback"

	probeTimeout = 5 * time.Second
)

// StoreProber is the part of the menu gateway the probe needs.
type StoreProber interface {
	Configured() bool
	Ping(ctx context.Context) error
}

// StoreStatus is broadcast on every transition.
type StoreStatus struct {
	Status    string    `json:"status"`
	CheckedAt time.Time `json:"checkedAt"`
}

// StoreStatusScheduler periodically pings the menu store and announces when
// the storefront switches between live data and the fallback menu.
type StoreStatusScheduler struct {
	cron   *cron.Cron
	spec   string
	store  StoreProber
	events service.EventPublisher

	mu     sync.RWMutex
	status string
}

func NewStoreStatusScheduler(spec string, store StoreProber, events service.EventPublisher) *StoreStatusScheduler {
	return &StoreStatusScheduler{
		cron:   cron.New(),
		spec:   spec,
		store:  store,
		events: events,
	}
}

// Start runs one probe immediately and then on the configured schedule.
func (s *StoreStatusScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.Check(context.Background())
	})
	if err != nil {
		logger.Error("Failed to add cron job for store status probe", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.Check(context.Background())
	s.cron.Start()
	logger.Info("Store status scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

func (s *StoreStatusScheduler) Stop() {
	logger.Info("Stopping store status scheduler...", nil)
	<-s.cron.Stop().Done()
	logger.Info("Store status scheduler stopped", nil)
}

// Check probes the store once and returns the resulting status.
func (s *StoreStatusScheduler) Check(ctx context.Context) string {
	next := StatusOnline
	if !s.store.Configured() {
		next = StatusFallback
	} else {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := s.store.Ping(probeCtx)
		cancel()
		if err != nil {
			logger.Debug("Store probe failed", map[string]interface{}{
				"error": err.Error(),
			})
			next = StatusFallback
		}
	}

	s.mu.Lock()
	prev := s.status
	s.status = next
	s.mu.Unlock()

	if prev == next {
		return next
	}

	if next == StatusFallback {
		logger.Warn("Menu store unavailable, serving fallback menu", map[string]interface{}{
			"previous": prev,
		})
	} else {
		logger.Info("Menu store online", map[string]interface{}{
			"previous": prev,
		})
	}
	if s.events != nil {
		s.events.Publish(service.EventStoreStatus, StoreStatus{Status: next, CheckedAt: time.Now().UTC()})
	}
	return next
}

// Status is the last observed status, empty before the first probe.
func (s *StoreStatusScheduler) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
