package oversight

import (
	"encoding/json"
	"testing"
)

func TestParseSpotAmount(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    float64
		err     bool
	}{
		{
			name:    "string amount",
			payload: `{"data":{"amount":"64123.45","base":"BTC","currency":"USD"}}`,
			want:    64123.45,
		},
		{
			name:    "number amount",
			payload: `{"data":{"amount":64123.45}}`,
			want:    64123.45,
		},
		{
			name:    "thousands separators",
			payload: `{"data":{"amount":"64,123.45"}}`,
			want:    64123.45,
		},
		{
			name:    "missing amount",
			payload: `{"data":{"base":"BTC"}}`,
			err:     true,
		},
		{
			name:    "empty price",
			payload: `{"data":{"amount":"0"}}`,
			err:     true,
		},
		{
			name:    "garbage amount",
			payload: `{"data":{"amount":"not-a-number"}}`,
			err:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var jobj any
			if err := json.Unmarshal([]byte(tt.payload), &jobj); err != nil {
				t.Fatalf("bad payload: %v", err)
			}
			got, err := parseSpotAmount(jobj)
			if tt.err {
				if err == nil {
					t.Fatalf("parseSpotAmount() = %v, want an error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSpotAmount() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseSpotAmount() = %v, want %v", got, tt.want)
			}
		})
	}
}
