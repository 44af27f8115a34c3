// internal/output/writer.go - Output writing implementation
package output

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb/geojson"

	"mvt-render-feature/internal/labels"
)

// FileWriter writes extraction results to a file with optional gzip
// compression.
type FileWriter struct {
	formatter   Formatter
	destination Destination
}

// NewFileWriter creates a new file-based writer.
func NewFileWriter(config *WriterConfig, path string) (*FileWriter, error) {
	formatter, err := NewFormatter(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter: %w", err)
	}

	destination, err := newFileDestination(path, config.Compression)
	if err != nil {
		return nil, fmt.Errorf("failed to create file destination: %w", err)
	}

	return &FileWriter{
		formatter:   formatter,
		destination: destination,
	}, nil
}

// Write serializes and writes one extraction result.
func (w *FileWriter) Write(collection *geojson.FeatureCollection, stats *labels.Stats) error {
	data, err := w.formatter.Format(collection, stats)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}

	if _, err := w.destination.Write(data); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	return nil
}

// Close closes the writer and the underlying destination.
func (w *FileWriter) Close() error {
	return w.destination.Close()
}

// StdoutWriter writes extraction results to standard output.
type StdoutWriter struct {
	formatter Formatter
}

// NewStdoutWriter creates a new stdout-based writer.
func NewStdoutWriter(config *WriterConfig) (*StdoutWriter, error) {
	formatter, err := NewFormatter(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter: %w", err)
	}
	return &StdoutWriter{formatter: formatter}, nil
}

// Write serializes one extraction result to stdout.
func (w *StdoutWriter) Write(collection *geojson.FeatureCollection, stats *labels.Stats) error {
	data, err := w.formatter.Format(collection, stats)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}

	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("write to stdout failed: %w", err)
	}

	// Trailing newline for readability.
	_, err = os.Stdout.Write([]byte("\n"))
	return err
}

// Close is a no-op for the stdout writer.
func (w *StdoutWriter) Close() error {
	return nil
}

// NewWriter creates a writer for the given destination; an empty path
// selects stdout.
func NewWriter(config *WriterConfig, path string) (Writer, error) {
	if path == "" {
		return NewStdoutWriter(config)
	}
	return NewFileWriter(config, path)
}

// fileDestination is a file sink with optional gzip compression.
type fileDestination struct {
	file *os.File
	gzip *gzip.Writer
	name string
}

func newFileDestination(path string, compressed bool) (*fileDestination, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if compressed && !strings.HasSuffix(path, ".gz") {
		path += ".gz"
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	destination := &fileDestination{
		file: file,
		name: path,
	}
	if compressed {
		destination.gzip = gzip.NewWriter(file)
	}
	return destination, nil
}

func (d *fileDestination) Write(data []byte) (int, error) {
	if d.gzip != nil {
		return d.gzip.Write(data)
	}
	return d.file.Write(data)
}

func (d *fileDestination) Close() error {
	if d.gzip != nil {
		if err := d.gzip.Close(); err != nil {
			d.file.Close()
			return err
		}
	}
	return d.file.Close()
}

func (d *fileDestination) Name() string {
	return d.name
}

var _ io.WriteCloser = (*fileDestination)(nil)
