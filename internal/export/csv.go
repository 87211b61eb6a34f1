package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/sim"
)

const fieldsPerParticle = 4

// WriteCSV writes one row per sampled frame: step, time, then x, y, vx, vy
// for every particle in id order.
func WriteCSV(out io.Writer, result *sim.Result) error {
	w := csv.NewWriter(out)

	if len(result.Frames) == 0 {
		w.Flush()
		return w.Error()
	}

	n := len(result.Frames[0].Positions)
	header := []string{"step", "time"}
	for i := 0; i < n; i++ {
		header = append(header,
			fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i),
			fmt.Sprintf("vx%d", i), fmt.Sprintf("vy%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for _, f := range result.Frames {
		row = append(row[:0], strconv.Itoa(f.Step), strconv.FormatFloat(f.Time, 'f', 6, 64))
		for i := 0; i < n; i++ {
			p, v := f.Positions[i], f.Velocities[i]
			row = append(row,
				strconv.FormatFloat(p.X, 'g', -1, 64), strconv.FormatFloat(p.Y, 'g', -1, 64),
				strconv.FormatFloat(v.X, 'g', -1, 64), strconv.FormatFloat(v.Y, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ReadCSV parses frames written by WriteCSV.
func ReadCSV(in io.Reader) ([]dynamo.Frame, error) {
	r := csv.NewReader(in)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []dynamo.Frame{}, nil
	}

	cols := len(records[0])
	if cols < 2 || (cols-2)%fieldsPerParticle != 0 {
		return nil, fmt.Errorf("malformed header with %d columns", cols)
	}
	n := (cols - 2) / fieldsPerParticle

	frames := make([]dynamo.Frame, 0, len(records)-1)
	for line, record := range records[1:] {
		step, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: step: %w", line+1, err)
		}
		vals := make([]float64, cols-1)
		for i, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: column %d: %w", line+1, i+1, err)
			}
			vals[i] = v
		}

		f := dynamo.Frame{
			Step:       step,
			Time:       vals[0],
			Positions:  make([]dynamo.Vec2, n),
			Velocities: make([]dynamo.Vec2, n),
		}
		for i := 0; i < n; i++ {
			base := 1 + i*fieldsPerParticle
			f.Positions[i] = dynamo.V(vals[base], vals[base+1])
			f.Velocities[i] = dynamo.V(vals[base+2], vals[base+3])
		}
		frames = append(frames, f)
	}

	return frames, nil
}
