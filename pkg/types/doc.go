// Package types defines the launcher Config value object and the
// standard error types shared across pylaunch packages.
package types
