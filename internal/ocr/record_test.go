package ocr

import "testing"

func TestNewRecordDefaults(t *testing.T) {
	rec := NewRecord("  IMG_1.jpg ", "raw")
	if rec.ImageID != "IMG_1.jpg" {
		t.Errorf("ImageID = %q", rec.ImageID)
	}
	if rec.Role != RoleUnknown {
		t.Errorf("Role = %q, want unknown", rec.Role)
	}
	if rec.HasEvidence() {
		t.Error("fresh record should carry no evidence")
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"IMG_1.JPG", "jpg"},
		{"photos/item.png", "png"},
		{"noextension", "jpg"},
		{"trailingdot.", "jpg"},
		{"dir.v2/file", "jpg"},
	}

	for _, tt := range tests {
		rec := Record{ImageID: tt.id}
		if got := rec.Ext(); got != tt.want {
			t.Errorf("Ext(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
