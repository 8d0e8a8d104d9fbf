package updater

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    int
	}{
		{"equal", "1.0.0", "1.0.0", 0},
		{"equal with v prefix", "v1.0.0", "1.0.0", 0},
		{"current older", "1.0.0", "1.1.0", -1},
		{"current newer", "2.0.0", "1.9.9", 1},
		{"patch difference", "1.0.1", "1.0.2", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareVersions(tt.current, tt.latest)
			if err != nil {
				t.Fatalf("CompareVersions() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.current, tt.latest, got, tt.want)
			}
		})
	}

	t.Run("invalid version", func(t *testing.T) {
		if _, err := CompareVersions("not-a-version", "1.0.0"); err == nil {
			t.Error("CompareVersions() = nil error, want parse failure")
		}
	})
}

func TestIsUpdateAvailable(t *testing.T) {
	available, err := IsUpdateAvailable("1.0.0", "v1.2.0")
	if err != nil {
		t.Fatalf("IsUpdateAvailable() error = %v", err)
	}
	if !available {
		t.Error("IsUpdateAvailable(1.0.0, v1.2.0) = false, want true")
	}

	available, err = IsUpdateAvailable("1.2.0", "1.2.0")
	if err != nil {
		t.Fatalf("IsUpdateAvailable() error = %v", err)
	}
	if available {
		t.Error("IsUpdateAvailable(1.2.0, 1.2.0) = true, want false")
	}
}
