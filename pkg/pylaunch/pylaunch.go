// Package pylaunch exposes launcher-wide metadata.
package pylaunch

// Version is the pylaunch release version.
const Version = "0.1.0"
