package schedule

import (
	"encoding/json"
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) TimeOfDay {
	t.Helper()
	parsed, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return parsed
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "afternoon",
			input: "17:00:00",
			want:  "17:00:00",
		},
		{
			name:  "midnight",
			input: "00:00:00",
			want:  "00:00:00",
		},
		{
			name:  "last second of the day",
			input: "23:59:59",
			want:  "23:59:59",
		},
		{
			name:    "hour out of range",
			input:   "24:00:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			input:   "12:60:00",
			wantErr: true,
		},
		{
			name:    "not a time",
			input:   "later",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q): expected error, got %v", tt.input, parsed)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got := parsed.String(); got != tt.want {
				t.Errorf("String(): expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAt(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 30, 15, 999, time.UTC)
	if got, want := At(now), mustParse(t, "18:30:15"); got != want {
		t.Errorf("At: expected %v, got %v", want, got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	end := mustParse(t, "17:00:00")

	data, err := json.Marshal(end)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"17:00:00"` {
		t.Errorf("expected \"17:00:00\", got %s", data)
	}

	var decoded TimeOfDay
	if err = json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded != end {
		t.Errorf("round trip: expected %v, got %v", end, decoded)
	}
}

func TestEvaluate(t *testing.T) {
	end17 := mustParse(t, "17:00:00")
	at1800 := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
	at1000 := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		end      *TimeOfDay
		prev     Flags
		isCreate bool
		want     Flags
	}{
		{
			name:     "create after end hour expires",
			now:      at1800,
			end:      &end17,
			isCreate: true,
			want:     Flags{IsActive: false, HasExpired: true},
		},
		{
			name:     "create before end hour is active",
			now:      at1000,
			end:      &end17,
			isCreate: true,
			want:     Flags{IsActive: true, HasExpired: false},
		},
		{
			name:     "create without end hour is active",
			now:      at1800,
			end:      nil,
			isCreate: true,
			want:     Flags{IsActive: true, HasExpired: false},
		},
		{
			name: "update inside window preserves active flags",
			now:  at1000,
			end:  &end17,
			prev: Flags{IsActive: true, HasExpired: false},
			want: Flags{IsActive: true, HasExpired: false},
		},
		{
			name: "update inside window does not resurrect expired task",
			now:  at1000,
			end:  &end17,
			prev: Flags{IsActive: false, HasExpired: true},
			want: Flags{IsActive: false, HasExpired: true},
		},
		{
			name: "update after end hour expires",
			now:  at1800,
			end:  &end17,
			prev: Flags{IsActive: true, HasExpired: false},
			want: Flags{IsActive: false, HasExpired: true},
		},
		{
			name: "update without end hour preserves flags",
			now:  at1800,
			end:  nil,
			prev: Flags{IsActive: false, HasExpired: true},
			want: Flags{IsActive: false, HasExpired: true},
		},
		{
			name:     "create exactly at end hour is still active",
			now:      time.Date(2025, 3, 14, 17, 0, 0, 0, time.UTC),
			end:      &end17,
			isCreate: true,
			want:     Flags{IsActive: true, HasExpired: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.now, tt.end, tt.prev, tt.isCreate)
			if got != tt.want {
				t.Errorf("Evaluate: expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
