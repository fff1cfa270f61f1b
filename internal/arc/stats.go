package arc

// Summary aggregates counts over a dataset.
type Summary struct {
	Tasks      int
	TrainPairs int
	TestPairs  int
	Malformed  int
	MaxRows    int
	MaxCols    int
	// TestCells holds the cell count of each task's first test input, in dataset order.
	TestCells []float64
}

// Summarize walks every record. Records that cannot be decoded count as malformed.
func Summarize(ds Dataset) Summary {
	s := Summary{Tasks: ds.Len()}
	for _, rec := range ds.Records {
		task, err := rec.Task()
		if err != nil {
			s.Malformed++
			continue
		}
		s.TrainPairs += len(task.Train)
		s.TestPairs += len(task.Test)

		for _, p := range task.Train {
			s.observe(p.Input)
			s.observe(p.Output)
		}
		for _, p := range task.Test {
			s.observe(p.Input)
			s.observe(p.Output)
		}
		if len(task.Test) > 0 {
			rows, cols := task.Test[0].Input.Dims()
			s.TestCells = append(s.TestCells, float64(rows*cols))
		}
	}
	return s
}

func (s *Summary) observe(g Grid) {
	rows, cols := g.Dims()
	if rows > s.MaxRows {
		s.MaxRows = rows
	}
	if cols > s.MaxCols {
		s.MaxCols = cols
	}
}
