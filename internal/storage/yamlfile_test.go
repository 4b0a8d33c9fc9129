package storage

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestYAML_RoundTrip(t *testing.T) {
	want := sampleSnapshot()

	var buf bytes.Buffer
	if err := WriteYAML(&buf, want); err != nil {
		t.Fatalf("WriteYAML returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "recommended_by: Ana") {
		t.Fatalf("expected snake_case keys in export, got:\n%s", buf.String())
	}

	got, err := ReadYAML(&buf)
	if err != nil {
		t.Fatalf("ReadYAML returned error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestReadYAML_RejectsUnknownVersion(t *testing.T) {
	_, err := ReadYAML(strings.NewReader("version: 7\njournal: {}\n"))
	if err == nil {
		t.Fatal("expected error for unsupported version")
	}
}
