package sysmon

import (
	"strings"
	"testing"
)

func TestSample(t *testing.T) {
	s := Sample()

	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %v", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %v", s.MemPercent)
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	s := Stats{CPUPercent: 12.34, MemPercent: 56.78}
	got := s.Describe()
	for _, want := range []string{"CPU 12.3%", "memory 56.8%"} {
		if !strings.Contains(got, want) {
			t.Errorf("Describe() = %q, want it to contain %q", got, want)
		}
	}
}
