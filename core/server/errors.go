package server

import "errors"

var (
	// Configuration errors
	ErrMissingAddress = errors.New("server address is required")
	ErrFailedLoadCert = errors.New("failed to load certificate")
	ErrNilRouter      = errors.New("router is required")

	// Server lifecycle errors
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrListen               = errors.New("failed to bind server address")
	ErrShutdown             = errors.New("server shutdown error")
)
