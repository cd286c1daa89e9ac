package components

import "testing"

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		name  string
		state UIState
		value int
	}{
		{"UINormal should be 0", UINormal, 0},
		{"UIHovered should be 1", UIHovered, 1},
		{"UIClicked should be 2", UIClicked, 2},
		{"UIDisabled should be 3", UIDisabled, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
		})
	}
}
