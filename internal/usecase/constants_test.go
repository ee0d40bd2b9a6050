package usecase_test

import (
	"testing"

	"github.com/iho/acctledger/internal/usecase"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero gets default", 0, usecase.DefaultListLimit},
		{"negative gets default", -5, usecase.DefaultListLimit},
		{"in range passes through", 50, 50},
		{"at the cap", usecase.MaxListLimit, usecase.MaxListLimit},
		{"above the cap", 500, usecase.MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := usecase.ClampLimit(tt.limit); got != tt.want {
				t.Errorf("ClampLimit(%d) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}
