package workbook

import "github.com/rs/zerolog"

// Options configures a Workbook.
type Options struct {
	// OutputDir, when set, is the directory Save writes into. It must already
	// exist. When empty, Save probes "<prefix>uploads" then "<prefix>../uploads".
	OutputDir string
	// Logger receives debug events for every command. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns options with the legacy uploads probing and no logging.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}
