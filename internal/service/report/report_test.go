package report

import (
	"context"
	"testing"

	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/pkg/reqctx"
)

func TestListForScoping(t *testing.T) {
	svc := New(catalog.New())

	tests := []struct {
		name      string
		principal reqctx.Principal
		wantLen   int
	}{
		{"admin sees all", reqctx.Principal{ID: 1, Role: "admin"}, 6},
		{"patient scoped", reqctx.Principal{ID: 7, Role: "patient"}, 1},
		{"doctor scoped", reqctx.Principal{ID: 4, Role: "doctor"}, 2},
		{"unknown patient empty", reqctx.Principal{ID: 99, Role: "patient"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListFor(context.Background(), tt.principal)
			if err != nil {
				t.Fatalf("ListFor returned error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.principal.Role == "patient" {
				for _, r := range got {
					if r.PatientID != tt.principal.ID {
						t.Errorf("report %d belongs to patient %d", r.ID, r.PatientID)
					}
				}
			}
		})
	}
}
