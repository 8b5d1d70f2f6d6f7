// Package main provides the entry point for Tavola.
//
// Tavola plays a restaurant site's animated front page on Ebitengine:
// a loading overlay, a timed intro and a scrollable landing page.
//
// Usage:
//
//	tavola run [--verbose] [--skip-intro] [--config path]
//	tavola trace [--format text|markdown] [--until 8s] [--step 16ms]
package main

// main is the entry point for Tavola.
func main() {
	Execute()
}
