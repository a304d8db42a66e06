// SPDX-License-Identifier: GPL-3.0-or-later

// Package prober sends a single ICMP echo request per call and reports
// whether a reply came back.
package prober

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/probeware/pingx/logger"

	probing "github.com/prometheus-community/pro-bing"
)

type Config struct {
	Network    string // "ip", "ip4" or "ip6"
	Privileged bool
	Interface  string
	Timeout    time.Duration
}

// Result is the outcome of one probe.
type Result struct {
	Host     string
	IP       string
	Received bool
	RTT      time.Duration
}

func New(host string, conf Config, log *logger.Logger) *Prober {
	var source string
	if conf.Interface != "" {
		if addr, err := getInterfaceIPAddress(conf.Interface); err != nil {
			log.Warningf("error getting interface '%s' IP address: %v", conf.Interface, err)
		} else {
			log.Infof("interface '%s' IP address '%s', will use it as the source", conf.Interface, addr)
			source = addr
		}
	}

	return &Prober{
		host:       host,
		network:    conf.Network,
		privileged: conf.Privileged,
		source:     source,
		timeout:    conf.Timeout,
		Logger:     log,
	}
}

type Prober struct {
	*logger.Logger

	host       string
	network    string
	privileged bool
	source     string
	timeout    time.Duration
}

// Ping sends one echo request and waits up to the configured timeout for a
// reply. A timed-out probe is a successful call with Received false.
func (p *Prober) Ping(ctx context.Context) (Result, error) {
	pr := probing.New(p.host)

	pr.SetNetwork(p.network)

	if err := pr.Resolve(); err != nil {
		return Result{}, fmt.Errorf("DNS lookup '%s': %v", p.host, err)
	}

	pr.Source = p.source
	pr.RecordRtts = false
	pr.Count = 1
	pr.Timeout = p.timeout
	pr.SetPrivileged(p.privileged)
	pr.SetLogger(nil)

	if err := pr.RunWithContext(ctx); err != nil {
		return Result{}, fmt.Errorf("pinging host '%s' (ip %s): %v", pr.Addr(), pr.IPAddr(), err)
	}

	stats := pr.Statistics()

	p.Debugf("probe stats for host '%s' (ip '%s'): %+v", pr.Addr(), pr.IPAddr(), stats)

	return Result{
		Host:     pr.Addr(),
		IP:       pr.IPAddr().String(),
		Received: stats.PacketsRecv > 0,
		RTT:      stats.AvgRtt,
	}, nil
}

func getInterfaceIPAddress(ifaceName string) (ipaddr string, err error) {
	iface, err := net.InterfaceByName(ifaceName)
	if err != nil {
		return "", err
	}

	addresses, err := iface.Addrs()
	if err != nil {
		return "", err
	}

	// FIXME: add IPv6 support
	var v4Addr string
	for _, addr := range addresses {
		if ipnet, ok := addr.(*net.IPNet); ok && ipnet.IP.To4() != nil {
			v4Addr = ipnet.IP.To4().String()
			break
		}
	}

	if v4Addr == "" {
		return "", errors.New("ipv4 addresses not found")
	}

	return v4Addr, nil
}
