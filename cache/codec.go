package cache

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec turns cached values into the opaque payloads a CacheService stores.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec is the default payload format.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// MsgpackCodec produces smaller payloads for the Redis backend.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string { return "msgpack" }

func (MsgpackCodec) Marshal(v any) ([]byte, error) { return msgpack.Marshal(v) }

func (MsgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// CodecByName resolves a configured codec name; unknown names yield false.
func CodecByName(name string) (Codec, bool) {
	switch name {
	case "", "json":
		return JSONCodec{}, true
	case "msgpack":
		return MsgpackCodec{}, true
	}
	return nil, false
}
