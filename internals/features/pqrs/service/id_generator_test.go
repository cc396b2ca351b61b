// file: internals/features/pqrs/service/id_generator_test.go
package service

import (
	"strings"
	"testing"
	"time"
)

func TestGeneratePqrID(t *testing.T) {
	// 2025-08-30 23:30 en Bogotá = 2025-08-31 04:30 UTC:
	// la fecha del radicado usa UTC, la hora usa el reloj local.
	bogota := time.FixedZone("America/Bogota", -5*60*60)
	now := time.Date(2025, 8, 30, 23, 30, 0, 0, bogota)

	got := GeneratePqrID(now, 7)
	want := "PQR-20250831-233007"
	if got != want {
		t.Fatalf("GeneratePqrID = %q, want %q", got, want)
	}
}

func TestGeneratePqrIDSuffixPadding(t *testing.T) {
	now := time.Date(2025, 1, 2, 9, 5, 0, 0, time.UTC)

	cases := []struct {
		suffix int
		want   string
	}{
		{0, "PQR-20250102-090500"},
		{3, "PQR-20250102-090503"},
		{42, "PQR-20250102-090542"},
		{123, "PQR-20250102-090523"}, // módulo 100
	}
	for _, tc := range cases {
		if got := GeneratePqrID(now, tc.suffix); got != tc.want {
			t.Errorf("suffix %d: got %q, want %q", tc.suffix, got, tc.want)
		}
	}
}

func TestNewPqrIDShape(t *testing.T) {
	id := NewPqrID()
	if !strings.HasPrefix(id, "PQR-") {
		t.Fatalf("radicado sin prefijo PQR-: %q", id)
	}
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("radicado con formato inesperado: %q", id)
	}
	if len(parts[1]) != 8 || len(parts[2]) != 6 {
		t.Fatalf("longitudes de fecha/hora inesperadas en %q", id)
	}
}
