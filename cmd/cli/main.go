package main

import "github.com/vfg2006/traffic-balance-monitor/internal/cli"

func main() {
	cli.Execute()
}
