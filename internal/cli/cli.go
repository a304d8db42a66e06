// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"time"

	"github.com/jessevdk/go-flags"
)

// Option defines command line options.
type Option struct {
	Count      int           `short:"c" long:"count" description:"stop after sending this many probes (0 means no limit)"`
	Interval   time.Duration `short:"i" long:"interval" description:"time between probes" default:"1s"`
	Timeout    time.Duration `short:"W" long:"timeout" description:"per-probe reply timeout" default:"4s"`
	Deadline   time.Duration `short:"w" long:"deadline" description:"stop after this much time regardless of outcomes"`
	Interface  string        `short:"I" long:"interface" description:"source interface"`
	ExitCond   string        `short:"x" long:"exit-condition" description:"exit condition, e.g. '3', '-5s:xN', '10:m(200:.x)'"`
	IPv4       bool          `short:"4" description:"use IPv4 only"`
	IPv6       bool          `short:"6" description:"use IPv6 only"`
	Privileged bool          `short:"p" long:"privileged" description:"use raw ICMP sockets (requires root)"`
	Debug      bool          `short:"d" long:"debug" description:"debug mode"`
	Version    bool          `short:"v" long:"version" description:"display the version and exit"`

	Host string
}

// Parse returns parsed command-line flags in Option struct
func Parse(args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = "pingx"
	parser.Usage = "[OPTIONS] destination"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	if len(rest) > 1 {
		opt.Host = rest[1]
	}

	return opt, nil
}

func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}
