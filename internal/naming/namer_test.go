package naming

import (
	"testing"

	"argus/internal/consensus"
	"argus/internal/ocr"
)

func subject(id string) ocr.Record {
	r := ocr.NewRecord(id, "")
	r.Role = ocr.RoleSubject
	return r
}

func certificate(id string) ocr.Record {
	r := ocr.NewRecord(id, "")
	r.Role = ocr.RoleCOA
	return r
}

func resolution(sku, desc string) consensus.Resolution {
	return consensus.Resolution{SKU: sku, Description: desc, Resolved: true}
}

func TestAssignDiscardsCertificates(t *testing.T) {
	n := New(Config{DiscardCOA: true})
	got := n.Assign("G001",
		[]ocr.Record{certificate("img1"), subject("img2"), subject("img3")},
		resolution("ABC-100", "RARE FIGURE"))

	if len(got) != 3 {
		t.Fatalf("got %d assignments, want 3", len(got))
	}
	if !got[0].Excluded {
		t.Error("certificate member should be excluded")
	}
	if got[0].FileName != "ABC-100-RARE FIGURE-COA.jpg" {
		t.Errorf("audit name = %q, want %q", got[0].FileName, "ABC-100-RARE FIGURE-COA.jpg")
	}
	if got[1].FileName != "ABC-100-RARE FIGURE-1.jpg" || got[1].Excluded {
		t.Errorf("first subject = %q (excluded=%v)", got[1].FileName, got[1].Excluded)
	}
	if got[2].FileName != "ABC-100-RARE FIGURE-2.jpg" {
		t.Errorf("second subject = %q, want sequence 2", got[2].FileName)
	}
}

func TestAssignPositionalSequencePolicy(t *testing.T) {
	n := New(Config{DiscardCOA: true, SequenceCountsExcluded: true})
	got := n.Assign("G001",
		[]ocr.Record{certificate("img1"), subject("img2"), subject("img3")},
		resolution("ABC-100", "RARE FIGURE"))

	if got[1].FileName != "ABC-100-RARE FIGURE-2.jpg" {
		t.Errorf("first subject = %q, want slot 2 under positional numbering", got[1].FileName)
	}
	if got[2].FileName != "ABC-100-RARE FIGURE-3.jpg" {
		t.Errorf("second subject = %q, want slot 3", got[2].FileName)
	}
}

func TestAssignKeepsCertificatesWithMarker(t *testing.T) {
	n := New(Config{})
	got := n.Assign("G001",
		[]ocr.Record{certificate("img1"), subject("img2")},
		resolution("ABC-100", "RARE FIGURE"))

	if got[0].Excluded {
		t.Error("certificates are kept when discard is off")
	}
	if got[0].FileName != "ABC-100-RARE FIGURE-COA.jpg" {
		t.Errorf("certificate name = %q, want COA marker", got[0].FileName)
	}
	if got[1].FileName != "ABC-100-RARE FIGURE-1.jpg" {
		t.Errorf("subject name = %q, want sequence 1", got[1].FileName)
	}
}

func TestAssignCollisionSuffix(t *testing.T) {
	n := New(Config{})
	res := resolution("ABC-100", "RARE FIGURE")
	first := n.Assign("G001", []ocr.Record{subject("IMG_0042.jpg")}, res)
	second := n.Assign("G002", []ocr.Record{subject("IMG_0099.jpg")}, res)

	if first[0].Collision {
		t.Error("first assignment should not collide")
	}
	if !second[0].Collision {
		t.Fatal("second assignment should be flagged as a collision")
	}
	if second[0].FileName != "ABC-100-RARE FIGURE-1-img0099j.jpg" {
		t.Errorf("collision name = %q", second[0].FileName)
	}
}

func TestAssignTruncatesDescription(t *testing.T) {
	n := New(Config{MaxDescriptionLength: 10})
	got := n.Assign("G001", []ocr.Record{subject("img1")},
		resolution("ABC-100", "RARE FIGURE WITH A VERY LONG TAIL"))

	if !got[0].Truncated {
		t.Fatal("expected truncation flag")
	}
	if got[0].FileName != "ABC-100-RARE FIGUR-1.jpg" {
		t.Errorf("truncated name = %q", got[0].FileName)
	}
}

func TestAssignWithoutSKU(t *testing.T) {
	n := New(Config{})
	got := n.Assign("G001", []ocr.Record{subject("img1")}, resolution("", "RARE FIGURE"))

	if got[0].FileName != "RARE FIGURE-1.jpg" {
		t.Errorf("name = %q, want description-only form", got[0].FileName)
	}
	if got[0].Folder != UnsortedFolder {
		t.Errorf("folder = %q, want %q", got[0].Folder, UnsortedFolder)
	}
}

func TestAssignPreservesExtension(t *testing.T) {
	n := New(Config{})
	got := n.Assign("G001", []ocr.Record{subject("scan-17.PNG")}, resolution("ABC-100", "RARE FIGURE"))
	if got[0].FileName != "ABC-100-RARE FIGURE-1.png" {
		t.Errorf("name = %q, want lowercased png extension", got[0].FileName)
	}
}
