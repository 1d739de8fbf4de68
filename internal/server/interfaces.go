package server

// Server is the lifecycle contract of a transport owned by this package:
// RunServer blocks until shutdown is requested, Shutdown releases the
// listener and in-flight resources.
type Server interface {
	RunServer()
	Shutdown()
}
