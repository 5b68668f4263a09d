package commands

import "testing"

func TestValidateFees(t *testing.T) {
	tests := []struct {
		name    string
		fees    float64
		wantErr bool
	}{
		{"zero is free consultation", 0, false},
		{"positive fee", 150, false},
		{"fractional fee", 99.50, false},
		{"negative fee rejected", -1, true},
		{"large negative rejected", -500, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFees(tt.fees)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFees(%g) error = %v, wantErr %v", tt.fees, err, tt.wantErr)
			}
		})
	}
}
