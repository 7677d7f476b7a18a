// Package keepalive pings the service's own health endpoint on a fixed
// cron schedule so constrained hosting tiers never idle the process out.
package keepalive

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Nrvenki/recipe/internal/metrics"
	"github.com/robfig/cron/v3"
)

// Every 14 minutes — just under the 15-minute idle window of the usual
// free hosting tiers.
const schedule = "*/14 * * * *"

type Pinger struct {
	url    string
	logger *slog.Logger
	client *http.Client
	cron   *cron.Cron
}

// New builds a pinger targeting selfURL's /api/health endpoint. The cron
// is not running until Start is called.
func New(selfURL string, logger *slog.Logger) *Pinger {
	return &Pinger{
		url:    strings.TrimRight(selfURL, "/") + "/api/health",
		logger: logger.With("component", "keepalive"),
		client: &http.Client{Timeout: 30 * time.Second},
		cron:   cron.New(),
	}
}

func (p *Pinger) Start() error {
	if _, err := p.cron.AddFunc(schedule, func() { p.Ping() }); err != nil {
		return fmt.Errorf("schedule keep-alive: %w", err)
	}
	p.cron.Start()
	p.logger.Info("keep-alive started", "url", p.url, "schedule", schedule)
	return nil
}

// Stop halts the schedule and waits for an in-flight ping to finish.
func (p *Pinger) Stop() {
	<-p.cron.Stop().Done()
	p.logger.Info("keep-alive stopped")
}

// Ping issues one GET against the health endpoint. Failures are logged and
// counted, never fatal.
func (p *Pinger) Ping() {
	resp, err := p.client.Get(p.url)
	if err != nil {
		p.logger.Error("keep-alive ping failed", "error", err)
		metrics.KeepAlivePingsTotal.WithLabelValues("error").Inc()
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.logger.Warn("keep-alive ping returned non-200", "status", resp.StatusCode)
		metrics.KeepAlivePingsTotal.WithLabelValues("non_200").Inc()
		return
	}

	p.logger.Debug("keep-alive ping ok")
	metrics.KeepAlivePingsTotal.WithLabelValues("ok").Inc()
}
