package workorder

import "testing"

func TestCanCreate(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CreateContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "valid preventive order",
			ctx:         CreateContext{AssetCode: "GEN-001", Type: "PM", Priority: "2", ETA: "2025-11-05"},
			wantAllowed: true,
		},
		{
			name:        "valid corrective order",
			ctx:         CreateContext{AssetCode: "GEN-001", Type: "CM", Priority: "1", ETA: "2025-11-05"},
			wantAllowed: true,
		},
		{
			name:       "missing asset code",
			ctx:        CreateContext{Type: "PM", Priority: "2", ETA: "2025-11-05"},
			wantReason: "asset code is required",
		},
		{
			name:       "unknown type",
			ctx:        CreateContext{AssetCode: "GEN-001", Type: "XX", Priority: "2", ETA: "2025-11-05"},
			wantReason: "invalid work order type: XX (valid: PM, CM)",
		},
		{
			name:       "priority out of range",
			ctx:        CreateContext{AssetCode: "GEN-001", Type: "PM", Priority: "4", ETA: "2025-11-05"},
			wantReason: "invalid priority: 4 (valid: 1, 2, 3)",
		},
		{
			name:       "missing eta",
			ctx:        CreateContext{AssetCode: "GEN-001", Type: "PM", Priority: "2"},
			wantReason: "eta is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreate(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}
