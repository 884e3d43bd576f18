package preview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type announced by preview hubs
	ServiceType = "_readerstyle._tcp"

	// ServiceDomain is the mDNS domain
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for Discover
	DefaultScanTimeout = 5 * time.Second
)

// Endpoint is a preview hub found on the network.
type Endpoint struct {
	Instance string
	Host     string
	IP       string
	Port     int
	Metadata map[string]string
}

// URL returns the preview page address.
func (e Endpoint) URL() string {
	host := e.IP
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return fmt.Sprintf("http://%s:%d/", host, e.Port)
}

// Advertise announces a hub on port under instance name. The returned
// function withdraws the announcement.
func Advertise(name string, port int, txt []string) (func(), error) {
	server, err := zeroconf.Register(name, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	return server.Shutdown, nil
}

// Discover browses for hubs until ctx is done or timeout elapses.
func Discover(ctx context.Context, timeout time.Duration) ([]Endpoint, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	var (
		mu    sync.Mutex
		found []Endpoint
	)
	entries := make(chan *zeroconf.ServiceEntry)
	go func() {
		for entry := range entries {
			if ep, ok := parseServiceEntry(entry); ok {
				mu.Lock()
				found = append(found, ep)
				mu.Unlock()
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return append([]Endpoint(nil), found...), nil
}

// parseServiceEntry converts a zeroconf entry to an Endpoint. Entries without
// an address are skipped.
func parseServiceEntry(entry *zeroconf.ServiceEntry) (Endpoint, bool) {
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" || entry.Port == 0 {
		return Endpoint{}, false
	}

	metadata := make(map[string]string, len(entry.Text))
	for _, txt := range entry.Text {
		key, value, _ := strings.Cut(txt, "=")
		metadata[key] = value
	}

	return Endpoint{
		Instance: entry.Instance,
		Host:     entry.HostName,
		IP:       ip,
		Port:     entry.Port,
		Metadata: metadata,
	}, true
}
