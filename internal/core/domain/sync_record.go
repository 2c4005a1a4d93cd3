package domain

import "time"

// SyncRecord remembers the source tree a builder's data was last mirrored from,
// and the destination tree the mirror produced.
type SyncRecord struct {
	BuilderName     string    `json:"builder_name,omitzero"`
	SourceHash      string    `json:"source_hash,omitzero"`
	DestinationHash string    `json:"destination_hash,omitzero"`
	Timestamp       time.Time `json:"timestamp,omitzero"`
}
