// Package recovery turns free-form model output into a well-formed AtlasReply.
//
// The pipeline degrades through four tiers of decreasing strictness: verbatim
// strict decode, heuristic repair plus re-decode, per-field pattern extraction
// against the raw text, and finally the canonical default record. Whatever a
// tier produces is coerced into a validated, bounded reply — callers never see
// a failure, only a possibly-default record.
package recovery

import (
	"github.com/charmbracelet/log"

	"atlas/pkg/schema"
)

// Recover parses raw model output into a fully populated reply. It is total
// and pure: no error paths escape, no state is shared between calls.
func Recover(raw string) schema.AtlasReply {
	candidate, found := extractCandidate(raw)
	if !found {
		log.Warn("no JSON-like content in model output, extracting fields from raw text")
		return recoverFields(raw)
	}

	data, err := strictDecode(candidate)
	if err == nil {
		log.Debug("model output decoded verbatim")
		return coerceReply(data)
	}
	log.Debug("strict decode failed, attempting repair", "error", err)

	data, err = strictDecode(repairCandidate(candidate))
	if err == nil {
		log.Info("model output decoded after repair")
		return coerceReply(data)
	}
	log.Warn("decode failed after repair, falling back to field extraction", "error", err)

	return recoverFields(raw)
}

// recoverFields runs the last-resort field extractor over the raw text and
// coerces whatever it found. Zero located fields means the canonical default
// record.
func recoverFields(raw string) schema.AtlasReply {
	partial := extractPartialFields(raw)
	if len(partial) == 0 {
		log.Warn("field extraction located nothing, returning default record")
		return schema.DefaultReply()
	}
	log.Info("partial fields recovered", "fields", len(partial))
	return coerceReply(partial)
}
