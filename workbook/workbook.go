// Package workbook is a command facade over an excelize workbook: document
// properties, cell values, merged ranges, preset styles, alignment, fonts,
// number formats, row and column sizes, images and saving.
//
// A Workbook serialises all commands with a mutex. Commands issued through
// ActiveSheet target whichever sheet is active when the call is made;
// Sheet(i) returns a handle bound to one sheet regardless of that state.
package workbook

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Workbook owns one in-memory excelize file.
type Workbook struct {
	mu     sync.Mutex
	file   *excelize.File
	active int
	styles *styleCache
	opts   Options
	log    zerolog.Logger
}

// New creates an empty workbook with a single sheet.
func New(opts Options) *Workbook {
	f := excelize.NewFile()
	return &Workbook{
		file:   f,
		active: f.GetActiveSheetIndex(),
		styles: newStyleCache(f),
		opts:   opts,
		log:    opts.logger(),
	}
}

// File exposes the underlying excelize file for operations the facade does not cover.
// Callers must not use it concurrently with the facade.
func (w *Workbook) File() *excelize.File {
	return w.file
}

// Close releases the temporary files held by excelize.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// SetProperties sets the document metadata. Creator also fills LastModifiedBy,
// Keywords and Category; Title and Description receive the upper-cased title,
// Subject the title as given.
func (w *Workbook) SetProperties(creator, title string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	upper := strings.ToUpper(title)
	if err := w.file.SetDocProps(&excelize.DocProperties{
		Creator:        creator,
		LastModifiedBy: creator,
		Title:          upper,
		Subject:        title,
		Description:    upper,
		Keywords:       creator,
		Category:       creator,
	}); err != nil {
		return fmt.Errorf("set doc props: %w", err)
	}

	w.log.Debug().Str("creator", creator).Str("title", title).Msg("set properties")
	return nil
}

// SheetCount returns the number of sheets in the workbook.
func (w *Workbook) SheetCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.file.GetSheetList())
}

// AddSheet appends a sheet and returns its 0-based index. The active sheet is unchanged.
func (w *Workbook) AddSheet(name string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.NewSheet(name); err != nil {
		return 0, fmt.Errorf("new sheet %q: %w", name, err)
	}

	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return 0, fmt.Errorf("sheet index %q: %w", name, err)
	}

	w.log.Debug().Str("sheet", name).Int("index", idx).Msg("add sheet")
	return idx, nil
}

// SetActiveSheet makes the sheet at the 0-based index the target of later
// ActiveSheet commands and the sheet shown when the file is opened.
func (w *Workbook) SetActiveSheet(index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkIndex(index); err != nil {
		return err
	}

	w.file.SetActiveSheet(index)
	w.active = index

	w.log.Debug().Int("index", index).Msg("set active sheet")
	return nil
}

// ActiveIndex returns the index of the active sheet.
func (w *Workbook) ActiveIndex() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

// ActiveSheet returns a handle for the sheet that is active now.
func (w *Workbook) ActiveSheet() *Sheet {
	w.mu.Lock()
	defer w.mu.Unlock()
	return &Sheet{wb: w, name: w.file.GetSheetName(w.active)}
}

// Sheet returns a handle bound to the sheet at the 0-based index.
func (w *Workbook) Sheet(index int) (*Sheet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkIndex(index); err != nil {
		return nil, err
	}
	return &Sheet{wb: w, name: w.file.GetSheetName(index)}, nil
}

func (w *Workbook) checkIndex(index int) error {
	if index < 0 || index >= len(w.file.GetSheetList()) {
		return fmt.Errorf("%w: %d", ErrSheetIndex, index)
	}
	return nil
}

// Save writes the workbook as fileName into the output directory and returns
// fileName unchanged.
func (w *Workbook) Save(fileName, pathPrefix string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	dir, err := w.outputDir(pathPrefix)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fileName)
	if err := w.file.SaveAs(path); err != nil {
		return "", &IOError{Op: "save", Path: path, Err: err}
	}

	w.log.Debug().Str("path", path).Msg("saved workbook")
	return fileName, nil
}

// outputDir returns Options.OutputDir after checking it is a directory, or
// else "<prefix>uploads" when it exists and "<prefix>../uploads" otherwise.
func (w *Workbook) outputDir(prefix string) (string, error) {
	if w.opts.OutputDir != "" {
		info, err := os.Stat(w.opts.OutputDir)
		if err != nil {
			return "", &IOError{Op: "output dir", Path: w.opts.OutputDir, Err: err}
		}
		if !info.IsDir() {
			return "", &IOError{Op: "output dir", Path: w.opts.OutputDir, Err: fmt.Errorf("not a directory")}
		}
		return w.opts.OutputDir, nil
	}

	uploads := filepath.Join(prefix, "uploads")
	if info, err := os.Stat(uploads); err == nil && info.IsDir() {
		return uploads, nil
	}
	return filepath.Join(prefix, "..", "uploads"), nil
}

// WriteTo writes the workbook in xlsx format to wr.
func (w *Workbook) WriteTo(wr io.Writer) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.WriteTo(wr)
}

// Bytes returns the workbook in xlsx format.
func (w *Workbook) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
