// meta/meta.go
package meta

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// GO_ROUTINES defines the goroutine cap of ConcurrentNegaMax bots.
const GO_ROUTINES = 8

// SEARCH_DEPTH defines the depth of bots configured without a difficulty.
const SEARCH_DEPTH = 3

// OPENING_PLIES defines the random moves played before the bots take over.
const OPENING_PLIES = 4

// COMPARE_POSITIONS defines the positions searched by the compare command.
const COMPARE_POSITIONS = 20

// COMPARE_MAX_PLIES defines the random moves played to reach each compared position.
const COMPARE_MAX_PLIES = 40

// OutputDirectory is where experiment records go by default.
var OutputDirectory = filepath.Join(xdg.DataHome, "reversi", "experiments")
