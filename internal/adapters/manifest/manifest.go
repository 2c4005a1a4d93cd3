// Package manifest renders builder sets for the orchestration host.
package manifest

import (
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// FormatYAML renders the manifest as YAML.
	FormatYAML = "yaml"
	// FormatJSON renders the manifest as JSON.
	FormatJSON = "json"
)

var _ ports.ManifestEncoder = (*Encoder)(nil)

// Encoder implements ports.ManifestEncoder.
type Encoder struct {
	hasher ports.Hasher
}

// NewEncoder creates a new Encoder fingerprinting builders with hasher.
func NewEncoder(hasher ports.Hasher) *Encoder {
	return &Encoder{hasher: hasher}
}

// Encode writes builders to w. An empty format selects YAML.
func (e *Encoder) Encode(w io.Writer, builders *domain.BuilderSet, format string) error {
	doc := e.document(builders)

	switch strings.ToLower(format) {
	case "", FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return zerr.Wrap(err, domain.ErrManifestEncodeFailed.Error())
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, domain.ErrManifestEncodeFailed.Error())
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return zerr.Wrap(err, domain.ErrManifestEncodeFailed.Error())
		}
		return nil
	default:
		return zerr.With(domain.ErrUnsupportedFormat, "format", format)
	}
}

func (e *Encoder) document(builders *domain.BuilderSet) document {
	doc := document{Builders: make([]builderEntry, 0, builders.Len())}
	for b := range builders.Walk() {
		entry := builderEntry{
			Name:        b.Name,
			WorkerNames: b.Workers(),
			Fingerprint: e.hasher.ComputeBuilderHash(&b),
			Steps:       make([]stepEntry, 0, len(b.Steps)),
		}
		for i := range b.Steps {
			entry.Steps = append(entry.Steps, newStepEntry(&b.Steps[i]))
		}
		doc.Builders = append(doc.Builders, entry)
	}
	return doc
}
