package lgzip

import (
	"compress/gzip"
	"io"
	"sync"
)

// NewCompressReader returns a reader yielding the gzip-compressed bytes of
// r. Compression runs in a goroutine feeding a pipe, so large payloads
// stream instead of being buffered whole.
func NewCompressReader(r io.Reader) io.ReadCloser {
	pr, pw := io.Pipe()

	reader := &compressReader{pr: pr}
	reader.wg.Add(1)

	go func() {
		defer reader.wg.Done()

		gzipWriter := gzip.NewWriter(pw)
		if _, err := io.Copy(gzipWriter, r); err != nil && err != io.EOF {
			pw.CloseWithError(err)
			return
		}
		if err := gzipWriter.Close(); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.Close()
	}()

	return reader
}

// NewDecompressReader returns a reader yielding the decompressed bytes of
// the gzip stream r.
func NewDecompressReader(r io.Reader) (*gzip.Reader, error) {
	return gzip.NewReader(r)
}

type compressReader struct {
	pr *io.PipeReader
	wg sync.WaitGroup
}

func (r *compressReader) Read(p []byte) (int, error) {
	return r.pr.Read(p)
}

// Close tears down the pipe and waits for the compressing goroutine.
func (r *compressReader) Close() error {
	if err := r.pr.Close(); err != nil {
		return err
	}
	r.wg.Wait()
	return nil
}
