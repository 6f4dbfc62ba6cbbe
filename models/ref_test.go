package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestDecodeRefPathStrings(t *testing.T) {
	for _, input := range []string{"Users/abc123", "/Users/abc123"} {
		ref := DecodeRef(input)
		if ref.Kind != RefByID {
			t.Fatalf("DecodeRef(%q): expected RefByID, got %v", input, ref.Kind)
		}
		if ref.Collection != "Users" || ref.ID != "abc123" {
			t.Fatalf("DecodeRef(%q): got collection=%q id=%q", input, ref.Collection, ref.ID)
		}
	}
}

func TestDecodeRefBareString(t *testing.T) {
	ref := DecodeRef("abc123")
	if ref.Kind != RefRaw {
		t.Fatalf("expected RefRaw, got %v", ref.Kind)
	}
	if ref.Text != "abc123" {
		t.Fatalf("expected text %q, got %q", "abc123", ref.Text)
	}
	if ref.Display() != "abc123" {
		t.Fatalf("expected display %q, got %q", "abc123", ref.Display())
	}
}

func TestDecodeRefCanonicalDocument(t *testing.T) {
	ref := DecodeRef(bson.M{"collection": "Users", "id": "abc123"})
	if ref.Kind != RefByID || ref.Collection != "Users" || ref.ID != "abc123" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestDecodeRefDBRefDocument(t *testing.T) {
	ref := DecodeRef(bson.D{{Key: "$ref", Value: "Users"}, {Key: "$id", Value: "abc123"}})
	if ref.Kind != RefByID || ref.Collection != "Users" || ref.ID != "abc123" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestDecodeRefEmbeddedService(t *testing.T) {
	ref := DecodeRef(bson.M{"serviceName": "Oil Change"})
	if ref.Kind != RefEmbedded {
		t.Fatalf("expected RefEmbedded, got %v", ref.Kind)
	}
	if ref.Display() != "Oil Change" {
		t.Fatalf("expected display %q, got %q", "Oil Change", ref.Display())
	}
}

func TestDecodeRefNilAndEmpty(t *testing.T) {
	if ref := DecodeRef(nil); !ref.IsZero() {
		t.Fatalf("expected zero ref for nil, got %+v", ref)
	}
	if ref := DecodeRef(""); !ref.IsZero() {
		t.Fatalf("expected zero ref for empty string, got %+v", ref)
	}
}

func TestDecodeRefIdempotent(t *testing.T) {
	ref := NewRef("Users", "abc123")
	again := DecodeRef(ref)
	if again != ref {
		t.Fatalf("decoding a Ref must be identity: %+v vs %+v", again, ref)
	}
}

func TestRefDisplayByID(t *testing.T) {
	ref := NewRef("services", "svc-1")
	if ref.Display() != "svc-1" {
		t.Fatalf("expected id as display, got %q", ref.Display())
	}
}
