package cache

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// KeySerializer builds a cache key from an operation name and its arguments.
// Equal inputs must always produce equal keys.
type KeySerializer interface {
	SerializeKey(operation string, args ...any) string
}

// defaultKeySerializer snake-cases the operation name, prepends an optional
// namespace and renders each argument deterministically.
type defaultKeySerializer struct {
	namespace string
}

// NewNamespacedKeySerializer prefixes every key with namespace, e.g. "posts".
// An empty namespace leaves keys unprefixed.
func NewNamespacedKeySerializer(namespace string) KeySerializer {
	return &defaultKeySerializer{namespace: toSnake(namespace)}
}

// SerializeKey builds "[namespace::]operation[::arg...]".
func (s *defaultKeySerializer) SerializeKey(operation string, args ...any) string {
	parts := make([]string, 0, len(args)+2)
	if s.namespace != "" {
		parts = append(parts, s.namespace)
	}
	parts = append(parts, toSnake(operation))

	for _, arg := range args {
		parts = append(parts, s.serializeValue(arg))
	}

	return strings.Join(parts, KeySeparator)
}

func (s *defaultKeySerializer) serializeValue(v any) string {
	if v == nil {
		return "nil"
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "nil"
		}
		return s.serializeValue(rv.Elem().Interface())
	}

	// uuid.UUID, time.Time and enum types render through their String method.
	if stringer, ok := v.(fmt.Stringer); ok {
		return stringer.String()
	}

	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return fmt.Sprintf("%v", v)

	case reflect.Slice:
		if rv.IsNil() {
			return "slice:nil"
		}
		return s.serializeList("slice", rv)

	case reflect.Array:
		return s.serializeList("array", rv)

	case reflect.Map:
		if rv.IsNil() {
			return "map:nil"
		}
		return s.serializeMap(rv)

	case reflect.Func, reflect.Chan:
		// Not stable across processes; never use these in distributed keys.
		return fmt.Sprintf("%s:%p", rv.Kind(), v)
	}

	return s.jsonFallback(v)
}

func (s *defaultKeySerializer) serializeList(kind string, rv reflect.Value) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = s.serializeValue(rv.Index(i).Interface())
	}
	return fmt.Sprintf("%s[%d]:{%s}", kind, len(parts), strings.Join(parts, ","))
}

// serializeMap sorts pairs by their rendered key.
func (s *defaultKeySerializer) serializeMap(rv reflect.Value) string {
	pairs := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, s.serializeValue(iter.Key().Interface())+"="+s.serializeValue(iter.Value().Interface()))
	}
	sort.Strings(pairs)
	return fmt.Sprintf("map[%d]:{%s}", len(pairs), strings.Join(pairs, ","))
}

func (s *defaultKeySerializer) jsonFallback(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("fallback:%T", v)
	}
	return "json:" + string(data)
}
