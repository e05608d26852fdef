package wire

import (
	"strconv"

	"google.golang.org/protobuf/proto"
)

// Enum is implemented by the named int32 types used for enum fields.
type Enum interface {
	String() string
	EnumValues() map[string]int32
}

// EnumName returns the name registered for v, or its decimal form.
func EnumName(names map[int32]string, v int32) string {
	if s, ok := names[v]; ok {
		return s
	}
	return strconv.Itoa(int(v))
}

// Name is the gRPC content-subtype served by Codec.
const Name = "proto"

// Codec is a gRPC codec for tagged message structs. Values implementing
// proto.Message are passed to the protobuf runtime so well-known types such
// as emptypb.Empty keep working.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return proto.Marshal(m)
	}
	return Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return proto.Unmarshal(data, m)
	}
	return Unmarshal(data, v)
}

func (Codec) Name() string {
	return Name
}
