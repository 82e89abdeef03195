// Package constants provides shared constants used throughout relay.
// This includes file permissions, config locations and the default
// demo script that reproduces the classic chat walkthrough.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Timeout constants
const (
	// ShutdownTimeout bounds graceful shutdown after a failed command
	ShutdownTimeout = 5 * time.Second
)

// Config constants
const (
	// AppName is the binary and config file base name
	AppName = "relay"

	// ConfigFileName is the config file name searched in $HOME and the working directory
	ConfigFileName = ".relay"

	// ConfigFileType is the config file format
	ConfigFileType = "yaml"
)

// Demo script defaults
const (
	// StartMessage is logged before the demo runs
	StartMessage = "Запуск програми."

	// FinishMessage is logged after the demo completes
	FinishMessage = "Завершення роботи програми."

	// DefaultGreeting is broadcast to every subscribed user
	DefaultGreeting = "Привіт усім у чаті!"

	// DefaultFarewell is broadcast after the second user leaves
	DefaultFarewell = "Тільки Олена побачить це повідомлення."
)

// DefaultUsers are the two chat members of the demo, in subscription order.
var DefaultUsers = []string{"Олена", "Іван"}

// DefaultFormats lists the content sources adapted by the demo, in print order.
var DefaultFormats = []string{"txt", "json", "xml"}
