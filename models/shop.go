package models

import (
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// MechanicShop is a service provider.
type MechanicShop struct {
	ID              string       `bson:"id" json:"id"`
	Name            string       `bson:"name" json:"name"`
	Address         string       `bson:"address" json:"address"`
	PhoneNumber     string       `bson:"phoneNumber" json:"phoneNumber"`
	Email           string       `bson:"email" json:"email"`
	ServicesOffered []Ref        `bson:"servicesOffered,omitempty" json:"servicesOffered,omitempty"`
	OpeningHours    OpeningHours `bson:"openingHours,omitempty" json:"openingHours,omitempty"`
}

// DayHours is one weekday's opening hours, already formatted for display.
type DayHours struct {
	Day   string `bson:"day" json:"day"`
	Hours string `bson:"hours" json:"hours"`
}

// OpeningHours is an ordered list of per-day hours. Stored data comes in two
// shapes: a weekday-keyed map of {open, close, closed} documents, or an
// already-flattened list of {day, hours} pairs; both decode into the same
// ordered list.
type OpeningHours []DayHours

var weekdayOrder = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// UnmarshalBSONValue accepts both stored shapes.
func (oh *OpeningHours) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	var v interface{}
	if err := raw.Unmarshal(&v); err != nil {
		return fmt.Errorf("failed to decode opening hours: %w", err)
	}
	*oh = decodeOpeningHours(v)
	return nil
}

func decodeOpeningHours(v interface{}) OpeningHours {
	switch val := v.(type) {
	case bson.D:
		return decodeOpeningHoursMap(val.Map())
	case bson.M:
		return decodeOpeningHoursMap(val)
	case map[string]interface{}:
		return decodeOpeningHoursMap(val)
	case bson.A:
		return decodeOpeningHoursList(val)
	case []interface{}:
		return decodeOpeningHoursList(val)
	default:
		return nil
	}
}

func decodeOpeningHoursMap(m map[string]interface{}) OpeningHours {
	var result OpeningHours
	for day, data := range m {
		switch d := data.(type) {
		case bson.D:
			result = append(result, dayHoursFromDoc(day, d.Map()))
		case bson.M:
			result = append(result, dayHoursFromDoc(day, d))
		case map[string]interface{}:
			result = append(result, dayHoursFromDoc(day, d))
		case string:
			result = append(result, DayHours{Day: day, Hours: d})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		oi, iok := weekdayOrder[strings.ToLower(result[i].Day)]
		oj, jok := weekdayOrder[strings.ToLower(result[j].Day)]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return result[i].Day < result[j].Day
	})
	return result
}

func dayHoursFromDoc(day string, data map[string]interface{}) DayHours {
	if closed, _ := data["closed"].(bool); closed {
		return DayHours{Day: day, Hours: "Closed"}
	}
	open, _ := data["open"].(string)
	closeAt, _ := data["close"].(string)
	return DayHours{Day: day, Hours: open + " - " + closeAt}
}

func decodeOpeningHoursList(items []interface{}) OpeningHours {
	var result OpeningHours
	for _, item := range items {
		var m map[string]interface{}
		switch it := item.(type) {
		case bson.D:
			m = it.Map()
		case bson.M:
			m = it
		case map[string]interface{}:
			m = it
		default:
			continue
		}
		day, _ := m["day"].(string)
		hours, _ := m["hours"].(string)
		if day != "" {
			result = append(result, DayHours{Day: day, Hours: hours})
		}
	}
	return result
}
