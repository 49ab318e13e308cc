package models

import (
	"encoding/json"
	"fmt"

	"github.com/ecellnce/campushub/internal/common"
)

// Envelope is the versioned wrapper every collection is persisted in. The
// payload keeps its raw bytes until a caller asks for a concrete type, so
// future schema migrations can inspect the version first.
type Envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Payload       json.RawMessage `json:"payload"`
}

// Seal wraps v in the current envelope version and serializes it.
func Seal[T any](v T) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}
	env := Envelope{SchemaVersion: common.SchemaVersion, Payload: payload}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshaling envelope: %w", err)
	}
	return data, nil
}

// Open decodes an enveloped document into v. A malformed document or an
// envelope from a future schema version yields common.ErrDecode; callers
// fall back to seed data instead of failing.
func Open[T any](data []byte, v *T) error {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: %v", common.ErrDecode, err)
	}
	if env.SchemaVersion == 0 || env.SchemaVersion > common.SchemaVersion {
		return fmt.Errorf("%w: unsupported schema version %d", common.ErrDecode, env.SchemaVersion)
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrDecode, err)
	}
	return nil
}
