package source

import (
	"testing"
)

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.hs", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3} // offsets of the \n bytes
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.hs", []byte("main = putStrLn x"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("test.hs", []byte("main = putStrLn y"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("test.hs")
	if !exists {
		t.Fatal("Expected file to exist after Add")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	if string(fs.Get(id1).Content) != "main = putStrLn x" {
		t.Error("Expected the first version to stay reachable by ID")
	}
}

func TestCRLFNormalization(t *testing.T) {
	normalized, changed := normalizeCRLF([]byte("a\r\nb\r\n"))
	if !changed {
		t.Error("Expected CRLF normalization to be detected")
	}
	if string(normalized) != "a\nb\n" {
		t.Errorf("Expected normalized content %q, got %q", "a\nb\n", string(normalized))
	}

	// Lone \r survives untouched.
	kept, changed := normalizeCRLF([]byte("a\rb"))
	if changed {
		t.Error("Lone \\r must not count as a replacement")
	}
	if string(kept) != "a\rb" {
		t.Errorf("Expected %q, got %q", "a\rb", string(kept))
	}
}

func TestBOMRemoval(t *testing.T) {
	content := []byte{0xEF, 0xBB, 0xBF, 'x', '\n'}
	withoutBOM, hadBOM := removeBOM(content)
	if !hadBOM {
		t.Error("Expected BOM to be detected")
	}
	if string(withoutBOM) != "x\n" {
		t.Errorf("Expected content without BOM %q, got %q", "x\n", string(withoutBOM))
	}
}

func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.hs", []byte("ab\ncd\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline ends line 1
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 3, Col: 2}},
	}
	for _, tt := range tests {
		got, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if got != tt.want {
			t.Errorf("Resolve(off=%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestResolveExpandedTabs(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.hs", []byte("\tfoo\n  \tx"))

	// A tab at column 1 pushes the next character to column 9.
	start, end := fs.ResolveExpanded(Span{File: id, Start: 1, End: 4})
	if start != (LineCol{Line: 1, Col: 9}) {
		t.Errorf("identifier after tab starts at %+v, want 1:9", start)
	}
	if end != (LineCol{Line: 1, Col: 12}) {
		t.Errorf("identifier after tab ends at %+v, want 1:12", end)
	}

	// "  \t" on line 2: cols 1,2 are spaces, tab at col 3 jumps to col 9.
	start, _ = fs.ResolveExpanded(Span{File: id, Start: 8, End: 9})
	if start != (LineCol{Line: 2, Col: 9}) {
		t.Errorf("x after space-space-tab starts at %+v, want 2:9", start)
	}
}

func TestResolveExpandedUTF8(t *testing.T) {
	fs := NewFileSet()
	// α is two bytes but one display column.
	id := fs.AddVirtual("test.hs", []byte("α = x"))

	start, _ := fs.ResolveExpanded(Span{File: id, Start: 3, End: 4})
	if start != (LineCol{Line: 1, Col: 3}) {
		t.Errorf("'=' after α starts at %+v, want 1:3", start)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.hs", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := map[uint32]string{
		1: "first",
		2: "second",
		3: "third",
		4: "",
		0: "",
	}
	for num, want := range cases {
		if got := f.GetLine(num); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", num, got, want)
		}
	}
}
