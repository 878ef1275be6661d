package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-subjects/internal/logger"
)

// HealthProbe pings the store every interval and forwards the result to its
// sinks. Status changes are logged; steady state is not.
type HealthProbe struct {
	pinger   Pinger
	sinks    []StatusSink
	interval time.Duration
	timeout  time.Duration

	last *bool

	logger *logger.Logger
}

func NewHealthProbe(pinger Pinger, interval time.Duration, logger *logger.Logger, sinks ...StatusSink) *HealthProbe {
	timeout := interval / 2
	if timeout <= 0 {
		timeout = time.Second
	}

	return &HealthProbe{
		pinger:   pinger,
		sinks:    sinks,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Run probes once synchronously, then keeps probing in the background until
// ctx is done. A non-positive interval disables the loop.
func (p *HealthProbe) Run(ctx context.Context) {
	p.probe(ctx)
	if p.interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.probe(ctx)
			}
		}
	}()
}

func (p *HealthProbe) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.pinger.Ping(pingCtx)
	up := err == nil

	if p.last == nil || *p.last != up {
		if up {
			p.logger.Info().Msg("storage is reachable")
		} else {
			p.logger.Err(err).Msg("storage is unreachable")
		}
	}
	p.last = &up

	for _, sink := range p.sinks {
		sink.SetStorageUp(up)
	}
}
