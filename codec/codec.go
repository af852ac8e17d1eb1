// Package codec centralizes the serialization used by book bundle snapshots.
//
// Codec selection is a compatibility boundary: snapshots record the codec
// name in their header so older files can always be decoded by name, no
// matter what the library default is at the time.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Snapshot files are self-describing: they store the codec name in their
// header and are opened by selecting the codec here.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
