package video

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// OpenError reports a video file the decoder could not open: missing file,
// unreadable container, unsupported codec.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open video %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// FrameReader decodes a single video into a lazy, forward-only stream of
// JPEG-encoded frames. The stream can be consumed at most once; Close must be
// called whether or not the stream was drained.
type FrameReader struct {
	path       string
	frameCount int
	cmd        *exec.Cmd
	stdout     *bufio.Reader
	stderr     bytes.Buffer
	done       bool
	closed     bool
}

// OpenFrameReader probes the file and starts an ffmpeg MJPEG pipe over it.
// Failures to stat, probe or start the decoder are reported as *OpenError.
func OpenFrameReader(path string) (*FrameReader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	frameCount, err := GetFrameCount(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	cmd := exec.Command("ffmpeg",
		"-v", "error",
		"-i", path,
		"-f", "image2pipe",
		"-vcodec", "mjpeg",
		"-q:v", "2",
		"-",
	)

	r := &FrameReader{
		path:       path,
		frameCount: frameCount,
		cmd:        cmd,
	}
	cmd.Stderr = &r.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	r.stdout = bufio.NewReaderSize(stdout, 1<<20)

	if err := cmd.Start(); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	return r, nil
}

// FrameCount returns the probe-reported total number of frames. The value may
// be approximate for some container formats.
func (r *FrameReader) FrameCount() int {
	return r.frameCount
}

// ReadNext returns the next frame in stream order as JPEG bytes, or io.EOF
// once the stream is exhausted. Any other error means the stream is broken
// and no further reads will succeed.
func (r *FrameReader) ReadNext() ([]byte, error) {
	if r.done {
		return nil, io.EOF
	}

	frame, err := readJPEGFrame(r.stdout)
	if err == io.EOF {
		r.done = true
		if werr := r.wait(); werr != nil {
			return nil, werr
		}
		return nil, io.EOF
	}
	if err != nil {
		r.done = true
		return nil, fmt.Errorf("reading frame from %s: %w", r.path, err)
	}

	return frame, nil
}

// Close releases the decoder. Safe to call after normal exhaustion or to
// abort mid-stream; always call it.
func (r *FrameReader) Close() error {
	if r.closed {
		return nil
	}
	if !r.done {
		// Abort: ffmpeg is still producing, kill it before reaping
		_ = r.cmd.Process.Kill()
		r.done = true
		_ = r.cmd.Wait()
		r.closed = true
		return nil
	}
	return r.wait()
}

// wait reaps the decoder process exactly once
func (r *FrameReader) wait() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg failed on %s: %w\n%s", r.path, err, firstLine(r.stderr.String()))
	}
	return nil
}

// readJPEGFrame splits the next complete JPEG image out of an MJPEG byte
// stream. ffmpeg's mjpeg muxer emits bare concatenated JPEGs, so frames are
// delimited by the SOI (FFD8) and EOI (FFD9) markers; within entropy-coded
// data 0xFF is always followed by a stuffed 0x00 or an RSTn marker, so a bare
// FFD9 only terminates the image.
func readJPEGFrame(r *bufio.Reader) ([]byte, error) {
	// Scan to the start-of-image marker. A clean EOF here is end of stream.
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.ErrUnexpectedEOF {
				err = io.EOF
			}
			return nil, err
		}
		if b != 0xFF {
			continue
		}
		b, err = r.ReadByte()
		if err != nil {
			return nil, io.EOF
		}
		if b == 0xD8 {
			break
		}
	}

	frame := make([]byte, 2, 64*1024)
	frame[0], frame[1] = 0xFF, 0xD8

	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("truncated frame: %w", err)
		}
		frame = append(frame, b)
		if b != 0xFF {
			continue
		}
		b, err = r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("truncated frame: %w", err)
		}
		frame = append(frame, b)
		if b == 0xD9 {
			return frame, nil
		}
	}
}
