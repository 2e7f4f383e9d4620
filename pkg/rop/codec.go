package rop

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/zeebo/errs"
)

const (
	successKey = "success"
	failureKey = "failure"
)

// ErrDecode is the class of errors returned when a payload is not a valid
// tagged result.
var ErrDecode = errs.Class("rop decode")

// Codec encodes and decodes the leaf values of a Result. Implementations
// must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var defaultCodec Codec = jsoniter.ConfigCompatibleWithStandardLibrary

var jsonNull = []byte("null")

// field returns the raw value under key. Some codecs keep a JSON null as an
// empty RawMessage; it is handed back as null so leaf decoders accept it.
func field(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if ok && len(raw) == 0 {
		raw = jsonNull
	}
	return raw, ok
}

// EncodeWith writes r as {"success":<value>} or {"failure":<value>}.
func EncodeWith[S, F any](c Codec, r Result[S, F]) ([]byte, error) {
	key, v := failureKey, any(r.failure)
	if r.isSuccess {
		key, v = successKey, any(r.result)
	}

	data, err := c.Marshal(map[string]any{key: v})
	if err != nil {
		return nil, errs.Wrap(err)
	}
	return data, nil
}

// DecodeWith reads a tagged result. The success key is tried first; only if
// it is absent or does not decode as S is the failure key consulted. A
// payload holding both keys therefore decodes as a success.
func DecodeWith[S, F any](c Codec, data []byte) (Result[S, F], error) {
	var fields map[string]json.RawMessage
	if err := c.Unmarshal(data, &fields); err != nil {
		return Result[S, F]{}, ErrDecode.Wrap(err)
	}

	var successErr error
	if raw, ok := field(fields, successKey); ok {
		var v S
		if successErr = c.Unmarshal(raw, &v); successErr == nil {
			return Success[S, F](v), nil
		}
	}

	raw, ok := field(fields, failureKey)
	if !ok {
		if successErr != nil {
			return Result[S, F]{}, ErrDecode.New("%s value: %v", successKey, successErr)
		}
		return Result[S, F]{}, ErrDecode.New("expected %q or %q key", successKey, failureKey)
	}

	var f F
	if err := c.Unmarshal(raw, &f); err != nil {
		return Result[S, F]{}, ErrDecode.New("%s value: %v", failureKey, err)
	}
	return Fail[S](f), nil
}

func (r Result[S, F]) MarshalJSON() ([]byte, error) {
	return EncodeWith(defaultCodec, r)
}

// UnmarshalJSON follows DecodeWith: when both keys are present the success
// key wins. On error the receiver is left untouched.
func (r *Result[S, F]) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeWith[S, F](defaultCodec, data)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}
