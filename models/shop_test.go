package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestDecodeOpeningHoursWeekdayMap(t *testing.T) {
	hours := decodeOpeningHours(bson.M{
		"tuesday": bson.M{"open": "08:00", "close": "17:00"},
		"monday":  bson.M{"open": "09:00", "close": "18:00"},
		"sunday":  bson.M{"closed": true},
	})

	if len(hours) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(hours))
	}
	// Weekday order, not map order.
	if hours[0].Day != "monday" || hours[0].Hours != "09:00 - 18:00" {
		t.Fatalf("unexpected first entry: %+v", hours[0])
	}
	if hours[1].Day != "tuesday" {
		t.Fatalf("unexpected second entry: %+v", hours[1])
	}
	if hours[2].Day != "sunday" || hours[2].Hours != "Closed" {
		t.Fatalf("unexpected last entry: %+v", hours[2])
	}
}

func TestDecodeOpeningHoursFlattenedList(t *testing.T) {
	hours := decodeOpeningHours(bson.A{
		bson.M{"day": "Monday", "hours": "09:00 - 18:00"},
		bson.M{"day": "Saturday", "hours": "10:00 - 14:00"},
	})

	if len(hours) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(hours))
	}
	if hours[0].Day != "Monday" || hours[0].Hours != "09:00 - 18:00" {
		t.Fatalf("unexpected first entry: %+v", hours[0])
	}
}

func TestDecodeOpeningHoursUnknownShape(t *testing.T) {
	if hours := decodeOpeningHours(42); hours != nil {
		t.Fatalf("expected nil for unknown shape, got %+v", hours)
	}
}

func TestVehicleDescriptionFallbacks(t *testing.T) {
	v := Vehicle{Make: "Toyota", Model: "Corolla", LicensePlate: "KDA 123X"}
	if got := v.Description(); got != "Corolla Toyota KDA 123X" {
		t.Fatalf("unexpected description: %q", got)
	}

	empty := Vehicle{}
	if got := empty.Description(); got != "Unknown Vehicle Unknown Make Unknown License Plate" {
		t.Fatalf("unexpected fallback description: %q", got)
	}

	partial := Vehicle{Model: "Civic"}
	if got := partial.Description(); got != "Civic Unknown Make Unknown License Plate" {
		t.Fatalf("unexpected partial description: %q", got)
	}
}
