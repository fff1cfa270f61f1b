package arc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Grid is a rectangular block of color indices. Row 0 is the top row.
// Rectangularity is left to the data source.
type Grid [][]int

// Dims returns the row count and the length of the first row.
func (g Grid) Dims() (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// Validate checks that the grid has rows and every cell maps to a palette color.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return ErrEmptyGrid
	}
	for r, row := range g {
		for c, v := range row {
			if _, err := Lookup(v); err != nil {
				return fmt.Errorf("cell (%d, %d): %w", r, c, err)
			}
		}
	}
	return nil
}

// FormatRow renders one row as a literal sequence, e.g. "[0, 1, 2]".
func FormatRow(row []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range row {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

// Pair is an example input grid together with its solution.
type Pair struct {
	Input  Grid `json:"input"`
	Output Grid `json:"output"`
}

// Task is the typed view of a record. HasTrain and HasTest record whether the
// keys were present at all, independently of how many pairs they hold.
type Task struct {
	Train    []Pair
	Test     []Pair
	HasTrain bool
	HasTest  bool
}

type taskDoc struct {
	Train *[]Pair `json:"train"`
	Test  *[]Pair `json:"test"`
}

// Record is one parsed task file. Raw holds the document bytes and Value the
// generic decoded form, whatever its shape.
type Record struct {
	Name  string
	Raw   json.RawMessage
	Value any
}

// NewRecord parses a document into a Record.
func NewRecord(name string, data []byte) (Record, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Record{}, err
	}
	return Record{Name: name, Raw: json.RawMessage(data), Value: v}, nil
}

// IsMapping reports whether the record's top-level value is a JSON object.
func (r Record) IsMapping() bool {
	_, ok := r.Value.(map[string]any)
	return ok
}

// Task decodes the train/test view of the record.
func (r Record) Task() (*Task, error) {
	if !r.IsMapping() {
		return nil, ErrNotMapping
	}
	var doc taskDoc
	if err := json.Unmarshal(r.Raw, &doc); err != nil {
		return nil, fmt.Errorf("decode task %s: %w", r.Name, err)
	}
	t := &Task{}
	if doc.Train != nil {
		t.Train, t.HasTrain = *doc.Train, true
	}
	if doc.Test != nil {
		t.Test, t.HasTest = *doc.Test, true
	}
	return t, nil
}

// Compact returns the raw document on a single line.
func (r Record) Compact() string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, r.Raw); err != nil {
		return string(r.Raw)
	}
	return buf.String()
}

// Dataset is the ordered list of records read from one directory.
type Dataset struct {
	Name    string
	Dir     string
	Records []Record
}

func (d Dataset) Len() int { return len(d.Records) }

func (d Dataset) At(i int) Record { return d.Records[i] }
