// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Travel animation between cities, constellation hit-testing, WebP/PNG export
// 0.2.0 - Terminal chart view, great-circle navigation, drag panning
// 0.1.0 - Initial release: projection pipeline, bright-star catalog, headless render
