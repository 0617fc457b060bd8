// Package codec registers the JSON wire codec used by every contract-mgmt service.
// Clients select it with grpc.CallContentSubtype(codec.Name); the generated-style
// clients in api/*/v1 do that automatically.
package codec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// Name is the gRPC content-subtype ("application/grpc+json").
const Name = "json"

func init() {
	encoding.RegisterCodec(JSON{})
}

// JSON marshals request and response messages with encoding/json.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal %T: %w", v, err)
	}
	return b, nil
}

func (JSON) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: unmarshal %T: %w", v, err)
	}
	return nil
}

func (JSON) Name() string { return Name }
