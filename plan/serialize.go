package plan

import (
	"fmt"

	"github.com/segmentio/encoding/json"
)

// Marshal renders a plan as its canonical JSON form for the service
// boundary. Field order is fixed by the struct definitions, so identical
// plans marshal to byte-identical output.
func Marshal(p *ExecutionPlan) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize plan: %w", err)
	}
	return data, nil
}

// Unmarshal parses a serialized plan back into an ExecutionPlan. A
// marshal/unmarshal round trip preserves every field.
func Unmarshal(data []byte) (*ExecutionPlan, error) {
	var p ExecutionPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to deserialize plan: %w", err)
	}
	return &p, nil
}
