package format

import "testing"

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		bytes uint64
		want  string
	}{
		{"Bytes", 512, "512 B"},
		{"Kibibytes", 2048, "2.0 KiB"},
		{"Mebibytes", 5 * 1024 * 1024, "5.0 MiB"},
		{"Gibibytes", 3 * 1024 * 1024 * 1024, "3.0 GiB"},
		{"Fractional", 1536, "1.5 KiB"},
		{"Zero", 0, "0 B"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatBytes(tt.bytes); got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
