// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Command warm-cache re-queries Unbound for the domains Pi-hole answered
// most often recently, so their records stay resident in the resolver cache.
// It reads the FTL query database, never writes anything, and exits 0 even
// when individual lookups fail.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KyuubiYoru/docker-pihole-unbound/internal/config"
	"github.com/KyuubiYoru/docker-pihole-unbound/internal/ftl"
	"github.com/KyuubiYoru/docker-pihole-unbound/internal/logging"
	"github.com/KyuubiYoru/docker-pihole-unbound/internal/resolver"
	"github.com/KyuubiYoru/docker-pihole-unbound/internal/warmer"
)

func main() {
	configFile := flag.String("config", "", "Path to optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := warmer.CheckDatabase(cfg.DBPath); err != nil {
		return err
	}

	client, err := resolver.New(cfg.ResolverHost, cfg.ResolverPort)
	if err != nil {
		return fmt.Errorf("cannot build resolver client: %w", err)
	}

	store, err := ftl.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	logging.Info("Warming cache of resolver at %s from %s", client.Addr(), cfg.DBPath)
	_, err = warmer.New(cfg, client, store).Run()
	return err
}
