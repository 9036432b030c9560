package core

import (
	"testing"
	"time"
)

func TestStringField(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		want    string
		wantOK  bool
		wantErr bool
	}{
		{"plain string", Record{"v": "hello"}, "hello", true, false},
		{"absent", Record{}, "", false, false},
		{"null", Record{"v": nil}, "", false, false},
		{"integral number", Record{"v": float64(42)}, "42", true, false},
		{"fractional number", Record{"v": 3.5}, "3.5", true, false},
		{"boolean", Record{"v": true}, "true", true, false},
		{"object", Record{"v": map[string]any{}}, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := stringField(tt.rec, "v")
			if (err != nil) != tt.wantErr {
				t.Fatalf("stringField() error = %v, wantErr %v", err, tt.wantErr)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("stringField() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIntField(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		want    int64
		wantOK  bool
		wantErr bool
	}{
		{"json number", Record{"v": float64(15)}, 15, true, false},
		{"numeric string", Record{"v": "100"}, 100, true, false},
		{"padded string", Record{"v": " 7 "}, 7, true, false},
		{"absent", Record{}, 0, false, false},
		{"null", Record{"v": nil}, 0, false, false},
		{"fractional", Record{"v": 1.5}, 0, false, true},
		{"non-numeric string", Record{"v": "abc"}, 0, false, true},
		{"boolean", Record{"v": true}, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := intField(tt.rec, "v")
			if (err != nil) != tt.wantErr {
				t.Fatalf("intField() error = %v, wantErr %v", err, tt.wantErr)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("intField() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBoolField(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		want    bool
		wantOK  bool
		wantErr bool
	}{
		{"true", Record{"v": true}, true, true, false},
		{"false", Record{"v": false}, false, true, false},
		{"string true", Record{"v": "true"}, true, true, false},
		{"absent", Record{}, false, false, false},
		{"number", Record{"v": float64(1)}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := boolField(tt.rec, "v")
			if (err != nil) != tt.wantErr {
				t.Fatalf("boolField() error = %v, wantErr %v", err, tt.wantErr)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("boolField() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTimeField(t *testing.T) {
	rec := Record{"ts": "2024-06-01T12:00:00Z"}
	got, ok, err := timeField(rec, "ts")
	if err != nil || !ok {
		t.Fatalf("timeField() = (%v, %v, %v), want valid timestamp", got, ok, err)
	}
	want := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("timeField() = %v, want %v", got, want)
	}

	if _, _, err := timeField(Record{"ts": "06/01/2024"}, "ts"); err == nil {
		t.Error("timeField() expected error for non-RFC3339 input")
	}
}

func TestRequireString(t *testing.T) {
	if _, err := requireString(Record{}, "email"); err == nil {
		t.Error("requireString() expected error for absent field")
	}
	if _, err := requireString(Record{"email": "  "}, "email"); err == nil {
		t.Error("requireString() expected error for blank field")
	}
	got, err := requireString(Record{"email": "a@b.c"}, "email")
	if err != nil || got != "a@b.c" {
		t.Errorf("requireString() = (%q, %v), want (%q, nil)", got, err, "a@b.c")
	}
}

func TestEnumValue(t *testing.T) {
	if _, err := enumValue("status", "paid", orderStatuses); err != nil {
		t.Errorf("enumValue() unexpected error: %v", err)
	}
	if _, err := enumValue("status", "PAID", orderStatuses); err == nil {
		t.Error("enumValue() expected error for case mismatch")
	}
	if _, err := enumValue("status", "unknown", orderStatuses); err == nil {
		t.Error("enumValue() expected error for unknown value")
	}
}

func TestOptionalID(t *testing.T) {
	id, err := optionalID(Record{"id": float64(9)})
	if err != nil || id != 9 {
		t.Errorf("optionalID() = (%d, %v), want (9, nil)", id, err)
	}
	id, err = optionalID(Record{})
	if err != nil || id != 0 {
		t.Errorf("optionalID() = (%d, %v), want (0, nil)", id, err)
	}
	if _, err := optionalID(Record{"id": "abc"}); err == nil {
		t.Error("optionalID() expected error for unparsable id")
	}
}

func TestLenientID(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want int64
	}{
		{"numeric", Record{"id": float64(42)}, 42},
		{"numeric string", Record{"id": "42"}, 42},
		{"non-numeric string", Record{"id": "EMP-042"}, 0},
		{"absent", Record{}, 0},
		{"null", Record{"id": nil}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lenientID(tt.rec); got != tt.want {
				t.Errorf("lenientID() = %d, want %d", got, tt.want)
			}
		})
	}
}
