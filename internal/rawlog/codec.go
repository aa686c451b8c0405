package rawlog

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"acrtelemetry/internal/acrerr"
)

// encodeBatch serializes a batch of records into the raw-log chunk payload
// format: a versioned, self-describing encoding (encoding/gob) chosen as
// the closest stdlib analogue to an opaque, language-neutral record
// vector — the chunk framing around it carries no per-record structure of
// its own, so the payload codec is free to evolve independently of the
// container format the sidecar documents.
func encodeBatch[T any](batch []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(batch); err != nil {
		return nil, fmt.Errorf("rawlog: encode batch: %w: %v", acrerr.ErrSerializationFailed, err)
	}
	return buf.Bytes(), nil
}

func decodeBatch[T any](payload []byte) ([]T, error) {
	var batch []T
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&batch); err != nil {
		return nil, fmt.Errorf("rawlog: decode batch: %w: %v", acrerr.ErrSerializationFailed, err)
	}
	return batch, nil
}
