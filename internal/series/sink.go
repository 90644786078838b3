package series

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"home_energy_coach/platform/logger"

	"golang.org/x/sync/errgroup"
)

const csvContentType = "text/csv"

// Sink receives a complete generated series.
type Sink interface {
	Name() string
	Write(ctx context.Context, records []Record) error
}

// Export writes records to every sink concurrently. Each sink owns its
// output; the first failure cancels the others.
func Export(ctx context.Context, log *logger.Logger, records []Record, sinks ...Sink) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, sink := range sinks {
		g.Go(func() error {
			if err := sink.Write(ctx, records); err != nil {
				return fmt.Errorf("%s sink: %w", sink.Name(), err)
			}
			log.SeriesWritten(sink.Name(), len(records))
			return nil
		})
	}
	return g.Wait()
}

// FileSink writes the series as CSV to a local path. The file is replaced
// atomically.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Name() string { return "file" }

func (s *FileSink) Write(_ context.Context, records []Record) (err error) {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".series-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteCSV(tmp, records); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename to %s: %w", s.path, err)
	}
	return nil
}

// ObjectUploader stores a file in an object storage bucket.
type ObjectUploader interface {
	UploadFile(ctx context.Context, bucket, folder, fileName, contentType string, reader io.Reader, size int64) (string, error)
}

// ObjectSink uploads the series as a CSV object.
type ObjectSink struct {
	uploader ObjectUploader
	bucket   string
	folder   string
	fileName string
	log      *logger.Logger
}

func NewObjectSink(uploader ObjectUploader, bucket, folder, fileName string, log *logger.Logger) *ObjectSink {
	return &ObjectSink{
		uploader: uploader,
		bucket:   bucket,
		folder:   folder,
		fileName: fileName,
		log:      log,
	}
}

func (s *ObjectSink) Name() string { return "object_storage" }

func (s *ObjectSink) Write(ctx context.Context, records []Record) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return err
	}
	key, err := s.uploader.UploadFile(ctx, s.bucket, s.folder, s.fileName, csvContentType, bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return err
	}
	s.log.Info("series uploaded", "bucket", s.bucket, "key", key)
	return nil
}
