package logging

import "go.uber.org/zap"

// New builds the process logger: JSON-encoded production config with the
// level lowered to debug when requested.
func New(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.DisableCaller = true
	cfg.Encoding = "json"
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// NewSugared is New with the sugared facade most of the code consumes.
func NewSugared(debug bool) (*zap.SugaredLogger, error) {
	logger, err := New(debug)
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
