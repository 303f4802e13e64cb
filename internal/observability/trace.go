package observability

import (
	"encoding/json"
	"io"

	"go.trai.ch/zerr"
)

// TraceEvent is one entry of the Chrome Trace Event Format array mill-par-profile.json
// persists, per §6's outbound file format. No example in the retrieved corpus emits this
// exact format, so the encoder is built directly on encoding/json rather than adapted
// from a third-party tracing library.
type TraceEvent struct {
	Name string            `json:"name"`
	Cat  string            `json:"cat,omitempty"`
	Ph   string            `json:"ph"`
	TS   int64             `json:"ts"`
	Dur  int64             `json:"dur"`
	PID  int               `json:"pid"`
	TID  int               `json:"tid"`
	Args map[string]string `json:"args,omitempty"`
}

// WriteTraceEvents streams events to w in the opening-bracket / comma-separated /
// closing-bracket shape §6 specifies, rather than via json.Marshal of the whole slice, so
// a future caller can stream events incrementally without holding the full array in
// memory.
func WriteTraceEvents(w io.Writer, events []TraceEvent) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return zerr.Wrap(err, "failed to write trace event stream header")
	}
	enc := json.NewEncoder(noNewlineWriter{w})
	for i, ev := range events {
		if i > 0 {
			if _, err := io.WriteString(w, ",\n"); err != nil {
				return zerr.Wrap(err, "failed to write trace event separator")
			}
		}
		if err := enc.Encode(ev); err != nil {
			return zerr.Wrap(err, "failed to encode trace event")
		}
	}
	if _, err := io.WriteString(w, "]"); err != nil {
		return zerr.Wrap(err, "failed to write trace event stream footer")
	}
	return nil
}

// noNewlineWriter strips the trailing newline json.Encoder.Encode always appends, so
// WriteTraceEvents controls every separator itself.
type noNewlineWriter struct{ io.Writer }

func (w noNewlineWriter) Write(p []byte) (int, error) {
	if len(p) > 0 && p[len(p)-1] == '\n' {
		n, err := w.Writer.Write(p[:len(p)-1])
		return n + 1, err
	}
	return w.Writer.Write(p)
}
