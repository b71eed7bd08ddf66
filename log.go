package vblank

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger emits scheduler diagnostics. Data-quality problems in server
// events are recovered locally and logged at debug level, which the
// default level suppresses; raise the level to see them:
//
//	vblank.Logger.SetLevel(log.DebugLevel)
var Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "vblank"})
