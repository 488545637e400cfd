package main

import (
	"os"

	"github.com/vfg2006/plan-tracker-api/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.L.WithError(err).Error("Comando falhou")
		os.Exit(1)
	}
}
