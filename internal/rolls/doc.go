// Package rolls defines the canonical film roll model every logbook schema
// normalizes into, and the in-memory store that holds ingested rolls for the
// lifetime of a run.
//
// Rolls and frames are immutable value records: adapters create them once
// during ingestion, the store owns them, and downstream consumers only read.
package rolls
