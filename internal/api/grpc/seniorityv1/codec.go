package seniorityv1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName — content-subtype gRPC ("application/grpc+json").
const CodecName = "json"

// MaxMessageSize — предел размера сообщения в обе стороны. Все промахи одного файла уходят
// одним батчем, поэтому стандартных 4 МБ gRPC не хватает.
const MaxMessageSize = 256 << 20

// Codec сериализует сообщения seniorityv1 в JSON.
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

func (Codec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("seniorityv1 marshal %T: %w", v, err)
	}
	return b, nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("seniorityv1 unmarshal %T: %w", v, err)
	}
	return nil
}

func (Codec) Name() string {
	return CodecName
}
