// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package resolver issues one-shot DNS lookups against a single upstream
// resolver. Each lookup is attempted exactly once with a short timeout;
// warming must never amplify load on the resolver with retries.
package resolver

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/miekg/dns"
)

// queryTimeout bounds every individual lookup.
const queryTimeout = 5 * time.Second

// probeName is resolvable by any Pi-hole deployment without leaving the host.
const probeName = "pi.hole"

// Client wraps a DNS client pinned to one resolver address.
type Client struct {
	addr   string
	client *dns.Client
}

// New creates a client for the resolver at host:port.
func New(host string, port int) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("resolver host must not be empty")
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid resolver port %d", port)
	}
	return &Client{
		addr:   net.JoinHostPort(host, strconv.Itoa(port)),
		client: &dns.Client{Timeout: queryTimeout},
	}, nil
}

// Addr returns the resolver address the client queries.
func (c *Client) Addr() string {
	return c.addr
}

// lookup sends a single recursive query for the given record type. A
// response with an empty answer section still counts as success; only a
// transport error or timeout is a failure.
func (c *Client) lookup(domain string, qtype uint16) error {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), qtype)
	m.RecursionDesired = true

	_, _, err := c.client.Exchange(m, c.addr)
	return err
}

// LookupA warms the IPv4 address record for domain.
func (c *Client) LookupA(domain string) error {
	return c.lookup(domain, dns.TypeA)
}

// LookupAAAA warms the IPv6 address record for domain.
func (c *Client) LookupAAAA(domain string) error {
	return c.lookup(domain, dns.TypeAAAA)
}

// Probe checks whether the resolver answers at all.
func (c *Client) Probe() error {
	return c.lookup(probeName, dns.TypeA)
}
