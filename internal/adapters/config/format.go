package config

import "encoding/json"

// outputsFormat is the domain.ValueFormat every config-declared task uses: its Value is
// always the []string of declared Target paths, so meta.json persistence just round-trips
// a JSON string array.
type outputsFormat struct{}

func (outputsFormat) Read(data []byte) (any, error) {
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (outputsFormat) Write(v any) ([]byte, error) {
	return json.Marshal(v)
}
