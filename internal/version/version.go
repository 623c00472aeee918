// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Almanac clock TUI, YAML config, JSON output
// 0.2.0 - ΔT model, mean/local sidereal time, horizontal coordinates
// 0.1.0 - Julian Day conversion both ways, sexagesimal angles
