package domain

import (
	"encoding/json"
	"testing"
)

func TestFlexStringDecodes(t *testing.T) {
	tests := []struct {
		in   string
		want FlexString
	}{
		{`"abc"`, "abc"},
		{`42`, "42"},
		{`49.99`, "49.99"},
		{`true`, "true"},
		{`null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f FlexString
			if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.in, err)
			}
			if f != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.in, f, tt.want)
			}
		})
	}
}

func TestFlexStringRejectsObjects(t *testing.T) {
	var f FlexString
	if err := json.Unmarshal([]byte(`{"a":1}`), &f); err == nil {
		t.Error("expected error decoding an object into FlexString")
	}
}

func TestRecipeDecodesMixedFields(t *testing.T) {
	body := `{"id": 7, "name": "Protein Smoothie", "calories": 320, "prepTime": "5 min",
		"macros": {"protein": "30g", "carbs": 40}, "ingredients": ["banana", "whey"]}`
	var r Recipe
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if r.ID != "7" || r.Calories != "320" || r.PrepTime != "5 min" {
		t.Errorf("unexpected scalars: %+v", r)
	}
	if r.Macros["protein"] != "30g" || r.Macros["carbs"] != "40" {
		t.Errorf("unexpected macros: %v", r.Macros)
	}
}

func TestMacrosFromString(t *testing.T) {
	var m Macros
	if err := json.Unmarshal([]byte(`"high protein"`), &m); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if m["summary"] != "high protein" {
		t.Errorf("macros = %v, want summary entry", m)
	}
}

func TestNewCartItem(t *testing.T) {
	item := NewCartItem(Product{ID: "p1", Name: "Kettlebell", Price: "49.99"})
	if item.ID != "p1" || item.Name != "Kettlebell" || item.Price != "$49.99" {
		t.Errorf("NewCartItem = %+v", item)
	}
}
