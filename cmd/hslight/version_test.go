package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderVersionPretty(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123"}
	var buf bytes.Buffer
	renderVersionPretty(&buf, info, versionOptions{showHash: true})
	out := buf.String()
	if !strings.Contains(out, "hslight 1.2.3") {
		t.Fatalf("missing version line in %q", out)
	}
	if !strings.Contains(out, "commit: abc123") {
		t.Fatalf("missing commit line in %q", out)
	}
}

func TestRenderVersionJSON(t *testing.T) {
	info := versionInfo{Version: "1.2.3"}
	var buf bytes.Buffer
	if err := renderVersionJSON(&buf, info, versionOptions{showDate: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"tool": "hslight"`) {
		t.Fatalf("missing tool field in %q", out)
	}
	if !strings.Contains(out, `"build_date": "unknown"`) {
		t.Fatalf("missing build_date fallback in %q", out)
	}
}
