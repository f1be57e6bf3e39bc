package profiler

import (
	"encoding/json"
	"io"
)

// pointState is the serialized form of one region record.
type pointState struct {
	Label           string `json:"label"`
	Running         bool   `json:"running"`
	IsChild         bool   `json:"isChild"`
	TotalDurationMS int64  `json:"totalDurationMs"`
	ChildDurationMS int64  `json:"childDurationMs"`
	Count           int    `json:"count"`
	LogEvents       bool   `json:"logEvents"`
}

// DumpState writes the full record sequence, in insertion order, as indented
// JSON. Diagnostic aid only; it reads the registry without touching it.
func (p *Profiler) DumpState(w io.Writer) error {
	states := make([]pointState, 0, len(p.points))
	for _, pt := range p.points {
		states = append(states, pointState{
			Label:           pt.label,
			Running:         pt.running,
			IsChild:         pt.isChild,
			TotalDurationMS: pt.totalDuration.Milliseconds(),
			ChildDurationMS: pt.childDuration.Milliseconds(),
			Count:           pt.count,
			LogEvents:       pt.logEvents,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(states)
}
