// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package warmer drives one cache-warming run: preflight checks, domain
// selection from the query log, and the sequential warm loop against the
// resolver.
package warmer

import (
	"fmt"
	"os"
	"time"

	"github.com/KyuubiYoru/docker-pihole-unbound/internal/config"
	"github.com/KyuubiYoru/docker-pihole-unbound/internal/logging"
)

// progressEvery is the warm-loop progress log cadence.
const progressEvery = 50

// Lookuper is the slice of the resolver client the warmer needs.
type Lookuper interface {
	LookupA(domain string) error
	LookupAAAA(domain string) error
	Probe() error
}

// DomainSource selects warming candidates, most-queried first.
type DomainSource interface {
	TopDomains(daysBack, max int) ([]string, error)
}

// Result holds the run-scoped counters reported in the summary.
type Result struct {
	Selected  int
	Processed int
	Failed    int
	Elapsed   time.Duration
}

// Warmer executes a single warming run.
type Warmer struct {
	cfg    config.Config
	client Lookuper
	source DomainSource
}

func New(cfg config.Config, client Lookuper, source DomainSource) *Warmer {
	return &Warmer{cfg: cfg, client: client, source: source}
}

// CheckDatabase verifies the query database exists. A missing database is
// fatal; there is nothing to select from.
func CheckDatabase(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("query database not found at %s: %w", path, err)
	}
	return nil
}

// Run performs the warming run and returns its counters. Individual lookup
// failures never fail the run; only selection errors do.
func (w *Warmer) Run() (*Result, error) {
	start := time.Now()

	// Best-effort reachability check. Unbound may still be starting up,
	// so an unanswered probe is not fatal.
	if err := w.client.Probe(); err != nil {
		logging.Warn("Resolver is not responding (%v), continuing anyway", err)
	}

	domains, err := w.source.TopDomains(w.cfg.DaysBack, w.cfg.MaxDomains)
	if err != nil {
		return nil, fmt.Errorf("failed to select domains: %w", err)
	}

	res := &Result{Selected: len(domains)}
	if len(domains) == 0 {
		logging.Warn("No domains found in the last %d days, nothing to warm", w.cfg.DaysBack)
		res.Elapsed = time.Since(start)
		return res, nil
	}

	logging.Info("Warming %d domains (top queries of the last %d days)",
		len(domains), w.cfg.DaysBack)

	w.warm(domains, res)

	res.Elapsed = time.Since(start)
	logging.Info("Cache warming complete: %d domains processed, %d failed, %ds elapsed",
		res.Processed, res.Failed, int(res.Elapsed.Seconds()))
	return res, nil
}

// warm iterates the selected domains in order. The A lookup gates the AAAA
// lookup; an AAAA failure after a successful A is deliberately ignored.
func (w *Warmer) warm(domains []string, res *Result) {
	total := len(domains)

	for _, domain := range domains {
		if err := w.client.LookupA(domain); err != nil {
			res.Failed++
			logging.Debug("Warm %s failed: %v", domain, err)
		} else {
			_ = w.client.LookupAAAA(domain)
		}

		res.Processed++
		if res.Processed%progressEvery == 0 {
			logging.Info("Progress: %d/%d domains", res.Processed, total)
		}

		if w.cfg.Delay > 0 {
			time.Sleep(w.cfg.Delay)
		}
	}
}
