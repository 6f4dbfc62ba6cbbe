package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// RefKind discriminates the shapes a stored document reference can take.
// Historical data holds references as typed refs, embedded maps carrying a
// display name, path strings ("Users/<id>") and bare id strings; they are
// decoded exactly once, here, into a tagged variant.
type RefKind int

const (
	// RefByID points at a document in a collection.
	RefByID RefKind = iota
	// RefEmbedded carries a display name inline and points at nothing.
	RefEmbedded
	// RefRaw is an undecodable raw string, kept verbatim.
	RefRaw
)

// Ref is a pointer from one stored document to another.
type Ref struct {
	Kind       RefKind `json:"-"`
	Collection string  `json:"collection,omitempty"`
	ID         string  `json:"id,omitempty"`
	// Name is set only for RefEmbedded.
	Name string `json:"name,omitempty"`
	// Text is set only for RefRaw.
	Text string `json:"text,omitempty"`
}

// NewRef builds a canonical by-id reference.
func NewRef(collection, id string) Ref {
	return Ref{Kind: RefByID, Collection: collection, ID: id}
}

// IsZero reports whether the reference is empty.
func (r Ref) IsZero() bool {
	return r.Collection == "" && r.ID == "" && r.Name == "" && r.Text == ""
}

// Display returns the best display string the reference itself can offer,
// without fetching the target: the embedded name, the target id, or the raw
// text.
func (r Ref) Display() string {
	switch r.Kind {
	case RefEmbedded:
		return r.Name
	case RefRaw:
		return r.Text
	default:
		return r.ID
	}
}

// DecodeRef normalizes any of the historical reference encodings into a Ref.
func DecodeRef(v interface{}) Ref {
	switch val := v.(type) {
	case Ref:
		return val
	case *Ref:
		return *val
	case string:
		return decodeRefString(val)
	case map[string]interface{}:
		return decodeRefMap(val)
	case bson.M:
		return decodeRefMap(val)
	case bson.D:
		return decodeRefMap(val.Map())
	case nil:
		return Ref{}
	default:
		return Ref{Kind: RefRaw, Text: fmt.Sprintf("%v", v)}
	}
}

func decodeRefString(s string) Ref {
	if s == "" {
		return Ref{}
	}
	// Path-style encodings: "Users/abc" or "/Users/abc".
	trimmed := strings.TrimPrefix(s, "/")
	if idx := strings.IndexByte(trimmed, '/'); idx > 0 && idx < len(trimmed)-1 {
		return Ref{Kind: RefByID, Collection: trimmed[:idx], ID: trimmed[idx+1:]}
	}
	return Ref{Kind: RefRaw, Text: s}
}

func decodeRefMap(m map[string]interface{}) Ref {
	str := func(key string) string {
		if s, ok := m[key].(string); ok {
			return s
		}
		return ""
	}

	// Canonical and DBRef-style by-id shapes.
	if id := str("id"); id != "" {
		return Ref{Kind: RefByID, Collection: str("collection"), ID: id}
	}
	if id := str("$id"); id != "" {
		return Ref{Kind: RefByID, Collection: str("$ref"), ID: id}
	}

	// Embedded documents carrying a display name.
	if name := str("serviceName"); name != "" {
		return Ref{Kind: RefEmbedded, Name: name}
	}
	if name := str("name"); name != "" {
		return Ref{Kind: RefEmbedded, Name: name}
	}

	return Ref{}
}

// MarshalBSONValue writes the canonical {collection, id} encoding. Embedded
// and raw refs round-trip through their own shape so legacy documents are
// not rewritten on update.
func (r Ref) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch r.Kind {
	case RefEmbedded:
		return bson.MarshalValue(bson.M{"name": r.Name})
	case RefRaw:
		return bson.MarshalValue(r.Text)
	default:
		return bson.MarshalValue(bson.M{"collection": r.Collection, "id": r.ID})
	}
}

// UnmarshalBSONValue decodes any of the historical encodings.
func (r *Ref) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	var v interface{}
	if err := raw.Unmarshal(&v); err != nil {
		return fmt.Errorf("failed to decode reference: %w", err)
	}
	*r = DecodeRef(v)
	return nil
}
