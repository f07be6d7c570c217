package sink

import (
	"archive/tar"
	"bytes"
	"io"
	"testing"
)

// TestTarSinkRoundTrip mirrors the reference tar writer's own multi-file
// regression test: write several entries, then read them back with the
// standard library's own tar reader and check names, sizes and content.
func TestTarSinkRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	s := NewTarSink(&buf)

	if err := s.Write("noto_sans_regular/0-255.pbf", []byte("content 1")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Write("noto_sans_regular/index.json", []byte(`{"ranges":["0-255"]}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	tr := tar.NewReader(&buf)
	var got []struct {
		name string
		body string
		mode int64
	}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("reading tar entry: %v", err)
		}
		body := make([]byte, hdr.Size)
		if _, err := io.ReadFull(tr, body); err != nil {
			t.Fatalf("reading entry body: %v", err)
		}
		got = append(got, struct {
			name string
			body string
			mode int64
		}{hdr.Name, string(body), hdr.Mode})
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].name != "noto_sans_regular/0-255.pbf" || got[0].body != "content 1" {
		t.Errorf("entry 0 = %+v", got[0])
	}
	if got[0].mode != 0o644 {
		t.Errorf("entry 0 mode = %o, want 0644", got[0].mode)
	}
	if got[1].name != "noto_sans_regular/index.json" || got[1].body != `{"ranges":["0-255"]}` {
		t.Errorf("entry 1 = %+v", got[1])
	}
}

func TestTarSinkEntriesHaveFixedEpochAndOwnership(t *testing.T) {
	var buf bytes.Buffer
	s := NewTarSink(&buf)
	if err := s.Write("f.pbf", []byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	tr := tar.NewReader(&buf)
	hdr, err := tr.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !hdr.ModTime.Equal(epoch) {
		t.Errorf("ModTime = %v, want epoch", hdr.ModTime)
	}
	if hdr.Uid != 0 || hdr.Gid != 0 {
		t.Errorf("Uid/Gid = %d/%d, want 0/0", hdr.Uid, hdr.Gid)
	}
}
