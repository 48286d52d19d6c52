package app

import (
	"net/http"

	"go.uber.org/zap"

	"eatgo/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string         // data directory, e.g. $HOME/.eatgo
	Settings *config.Config // loaded settings; defaults when nil
	HTTP     *http.Client   // optional; built from Settings when nil
	Log      *zap.Logger    // optional; no-op when nil
}
