// Command filmtag ingests film-logbook exports and writes each frame's
// metadata into its scanned negative.
package main
