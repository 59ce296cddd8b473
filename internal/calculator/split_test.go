package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestShare(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		n       int
		want    string
		wantErr bool
	}{
		{name: "even split", amount: 300, n: 3, want: "100"},
		{name: "uneven split keeps fraction", amount: 101, n: 2, want: "50.5"},
		{name: "single participant", amount: 42, n: 1, want: "42"},
		{name: "repeating fraction", amount: 100, n: 3, want: "33.3333333333333333"},
		{name: "zero participants should error", amount: 10, n: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Share(tt.amount, tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("Share() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Share(%d, %d) = %s, want %s", tt.amount, tt.n, got, tt.want)
			}
		})
	}
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name      string
		entry     Entry
		wantField string
	}{
		{
			name:  "valid expense",
			entry: Entry{Amount: 300, PaidBy: "a", SplitBetween: []string{"a", "b"}},
		},
		{
			name:      "zero amount",
			entry:     Entry{Amount: 0, PaidBy: "a", SplitBetween: []string{"a"}},
			wantField: "amount",
		},
		{
			name:      "negative amount",
			entry:     Entry{Amount: -5, PaidBy: "a", SplitBetween: []string{"a"}},
			wantField: "amount",
		},
		{
			name:      "missing payer",
			entry:     Entry{Amount: 5, SplitBetween: []string{"a"}},
			wantField: "paid_by",
		},
		{
			name:      "empty split",
			entry:     Entry{Amount: 5, PaidBy: "a"},
			wantField: "split_between",
		},
		{
			name:      "duplicate split member",
			entry:     Entry{Amount: 5, PaidBy: "a", SplitBetween: []string{"a", "a"}},
			wantField: "split_between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Validate() field = %s, want %s", verr.Field, tt.wantField)
			}
		})
	}
}
