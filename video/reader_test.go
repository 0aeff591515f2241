package video

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"
)

// fakeJPEG builds a minimal marker-correct JPEG-shaped byte sequence. The
// payload contains a stuffed 0xFF 0x00 pair like real entropy-coded data, so
// the splitter must not terminate on it.
func fakeJPEG(fill byte) []byte {
	return []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xDB, 0x00, 0x04, fill, fill, // a fake segment
		fill, 0xFF, 0x00, fill, // stuffed 0xFF inside scan data
		0xFF, 0xD9, // EOI
	}
}

func TestReadJPEGFrame_SplitsConcatenatedStream(t *testing.T) {
	first := fakeJPEG(0x11)
	second := fakeJPEG(0x22)
	stream := bufio.NewReader(bytes.NewReader(append(append([]byte{}, first...), second...)))

	got, err := readJPEGFrame(stream)
	if err != nil {
		t.Fatalf("readJPEGFrame() first frame error: %v", err)
	}
	if !bytes.Equal(got, first) {
		t.Errorf("first frame = % X, want % X", got, first)
	}

	got, err = readJPEGFrame(stream)
	if err != nil {
		t.Fatalf("readJPEGFrame() second frame error: %v", err)
	}
	if !bytes.Equal(got, second) {
		t.Errorf("second frame = % X, want % X", got, second)
	}

	if _, err = readJPEGFrame(stream); err != io.EOF {
		t.Errorf("readJPEGFrame() at end of stream = %v, want io.EOF", err)
	}
}

func TestReadJPEGFrame_EmptyStream(t *testing.T) {
	stream := bufio.NewReader(bytes.NewReader(nil))
	if _, err := readJPEGFrame(stream); err != io.EOF {
		t.Errorf("readJPEGFrame() on empty stream = %v, want io.EOF", err)
	}
}

func TestReadJPEGFrame_TruncatedFrame(t *testing.T) {
	truncated := fakeJPEG(0x33)
	truncated = truncated[:len(truncated)-2] // chop the EOI marker
	stream := bufio.NewReader(bytes.NewReader(truncated))

	_, err := readJPEGFrame(stream)
	if err == nil || err == io.EOF {
		t.Errorf("readJPEGFrame() on truncated frame = %v, want a truncation error", err)
	}
}

func TestOpenFrameReader_MissingFile(t *testing.T) {
	_, err := OpenFrameReader("/path/to/nonexistent/video.mp4")
	if err == nil {
		t.Fatal("OpenFrameReader() on missing file should return an error")
	}

	var openErr *OpenError
	if !errors.As(err, &openErr) {
		t.Errorf("OpenFrameReader() error type = %T, want *OpenError", err)
	}
}
