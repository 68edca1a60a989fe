package logic

import "testing"

func TestCheckRivalry(t *testing.T) {
	tests := []struct {
		name          string
		team          string
		opponent      string
		wantRivalry   bool
		wantIntensity string
		wantImpact    float64
	}{
		{"classic rivalry", "Boston Celtics", "Los Angeles Lakers", true, "high", 1.05},
		{"reversed order", "Los Angeles Lakers", "Boston Celtics", true, "high", 1.05},
		{"medium era", "Chicago Bulls", "Detroit Pistons", true, "medium", 1.03},
		{"historic era", "Boston Celtics", "Philadelphia 76ers", true, "low", 1.01},
		{"no rivalry", "Utah Jazz", "Orlando Magic", false, "normal", 1.0},
		{"same team", "Miami Heat", "Miami Heat", false, "normal", 1.0},
		{"empty opponent", "Miami Heat", "", false, "normal", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckRivalry(tt.team, tt.opponent)
			if got.IsRivalry != tt.wantRivalry {
				t.Errorf("IsRivalry = %v, want %v", got.IsRivalry, tt.wantRivalry)
			}
			if got.Intensity != tt.wantIntensity {
				t.Errorf("Intensity = %q, want %q", got.Intensity, tt.wantIntensity)
			}
			if got.ImpactFactor != tt.wantImpact {
				t.Errorf("ImpactFactor = %v, want %v", got.ImpactFactor, tt.wantImpact)
			}
		})
	}
}

func TestRivalryIntensityFromEra(t *testing.T) {
	tests := []struct {
		era  string
		want string
	}{
		{"1960s-present", "high"},
		{"2010s", "high"},
		{"2020s", "high"},
		{"1990s", "medium"},
		{"2000s", "medium"},
		{"1960s-1980s", "low"},
		{"", "low"},
	}
	for _, tt := range tests {
		if got := rivalryIntensity(tt.era); got != tt.want {
			t.Errorf("rivalryIntensity(%q) = %q, want %q", tt.era, got, tt.want)
		}
	}
}
