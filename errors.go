package reactive

import "github.com/graphwire/reactive/internal/engine"

// These are exact aliases of the internal engine's error types, so callers
// can errors.As against them without importing internal/engine.
type (
	CycleError        = engine.CycleError
	StoppedNodeError  = engine.StoppedNodeError
	BadReentranceError = engine.BadReentranceError
	GetterError       = engine.GetterError
	EffectError       = engine.EffectError
)
