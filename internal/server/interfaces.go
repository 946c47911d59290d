package server

// Server owns the lifecycle of the API listener.
type Server interface {
	// RunServer blocks until a termination signal arrives or the listener
	// fails on its own.
	RunServer()
	// Shutdown drains in-flight requests and closes the listener.
	Shutdown()
}
