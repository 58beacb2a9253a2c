package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// For returns a child of the global logger tagged with the owning app.
func For(app string) zerolog.Logger {
	return log.Logger.With().Str("app", app).Logger()
}
