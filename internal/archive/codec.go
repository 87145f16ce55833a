package archive

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

// EncodeRun serializes a run, stamping the current versions.
func EncodeRun(r Run) ([]byte, error) {
	r.SchemaVersion = CurrentSchemaVersion
	r.CodecVersion = CurrentCodecVersion
	return json.Marshal(r)
}

// DecodeRun parses a run and rejects records written by another version.
func DecodeRun(data []byte) (Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, err
	}
	if run.SchemaVersion != CurrentSchemaVersion || run.CodecVersion != CurrentCodecVersion {
		return Run{}, fmt.Errorf("%w: schema=%d codec=%d", ErrVersionMismatch, run.SchemaVersion, run.CodecVersion)
	}
	return run, nil
}
