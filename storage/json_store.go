package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifestep/model"
)

// boardFile is the on-disk shape of a board
type boardFile struct {
	Height *int         `json:"height"`
	Width  *int         `json:"width"`
	Board  [][]fileCell `json:"board"`
}

// fileCell accepts JSON integers and numeric strings
type fileCell model.Cell

func (c *fileCell) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return errors.Wrapf(model.ErrInvalidCell, "[fileCell] %s is not an integer", string(data))
	}
	*c = fileCell(f)
	return nil
}

// FileStore loads and saves boards as JSON files on the local filesystem
type FileStore struct{}

// NewFileStore returns a store rooted at the process working directory
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads a board from filename
func (s *FileStore) Load(filename string) (*model.Board, error) {
	return Load(filename)
}

// Save writes b to filename
func (s *FileStore) Save(filename string, b *model.Board) error {
	return Save(filename, b)
}

// Load reads and validates a board file. A missing file satisfies errors.Is(err, fs.ErrNotExist).
func Load(filename string) (*model.Board, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}

	b, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to decode board from file: %+v", filename)
	}
	return b, nil
}

// Decode parses board JSON
func Decode(data []byte) (*model.Board, error) {
	var f boardFile
	if err := json.Unmarshal(data, &f); err != nil {
		if errors.Is(err, model.ErrInvalidCell) {
			return nil, err
		}
		return nil, errors.Wrapf(model.ErrMalformedInput, "[Decode] %v", err)
	}

	switch {
	case f.Height == nil:
		return nil, errors.Wrap(model.ErrMalformedInput, "[Decode] missing height")
	case f.Width == nil:
		return nil, errors.Wrap(model.ErrMalformedInput, "[Decode] missing width")
	case f.Board == nil:
		return nil, errors.Wrap(model.ErrMalformedInput, "[Decode] missing board")
	}

	rows := make([][]model.Cell, len(f.Board))
	for i, r := range f.Board {
		rows[i] = make([]model.Cell, len(r))
		for j, c := range r {
			rows[i][j] = model.Cell(c)
		}
	}
	return model.NewBoardFromRows(*f.Height, *f.Width, rows)
}

// Save writes b to filename as JSON, replacing any existing file
func Save(filename string, b *model.Board) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	if err = os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrapf(err, "[Save] failed to write file: %+v", filename)
	}
	return nil
}

// Encode serializes b in the same shape Decode accepts
func Encode(b *model.Board) ([]byte, error) {
	height, width := b.Height(), b.Width()
	out := struct {
		Height int            `json:"height"`
		Width  int            `json:"width"`
		Board  [][]model.Cell `json:"board"`
	}{
		Height: height,
		Width:  width,
		Board:  b.Rows(),
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(out); err != nil {
		return nil, errors.Wrap(err, "[Encode] failed to marshal board")
	}
	return buf.Bytes(), nil
}
