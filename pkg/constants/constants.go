package constants

// API version, reported by the health endpoint.
const APIVersion = "0.1.0"

// Default listen port, overridden by pkg/config's PORT environment variable.
const DefaultPort = "8080"
