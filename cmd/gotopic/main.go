package main

import (
	"os"

	log "github.com/golang/glog"

	"github.com/bobonovski/gotopic/internal/cli"
)

var version = "dev"

func main() {
	err := cli.New(version).Run(os.Args[1:])
	log.Flush()
	if err != nil {
		os.Exit(1)
	}
}
