package adapter

import (
	"github.com/MKhiriev/labrat-client/internal/config"
	"github.com/MKhiriev/labrat-client/internal/logger"
)

type httpFactory struct {
	cfg    config.ClientAdapter
	logger *logger.Logger
}

// NewHTTPFactory returns a [Factory] producing HTTP clients configured from
// cfg.
func NewHTTPFactory(cfg config.ClientAdapter, logger *logger.Logger) Factory {
	return &httpFactory{cfg: cfg, logger: logger}
}

// Default implements [Factory].
func (f *httpFactory) Default() (RemoteAPI, error) {
	return NewHTTPRemoteAPI(f.cfg, f.logger)
}

// WithCookies implements [Factory].
func (f *httpFactory) WithCookies(cookies string) (RemoteAPI, error) {
	return NewHTTPRemoteAPIWithCookies(f.cfg, cookies, f.logger)
}
