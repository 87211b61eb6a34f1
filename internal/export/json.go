package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/sim"
)

// Meta describes the run a result came from.
type Meta struct {
	Scene     string  `json:"scene"`
	Scheme    string  `json:"scheme"`
	Dt        float64 `json:"dt"`
	Gravity   float64 `json:"gravity"`
	Particles int     `json:"particles"`
	Springs   int     `json:"springs"`
}

type frameData struct {
	Step       int          `json:"step"`
	Time       float64      `json:"time"`
	Positions  [][2]float64 `json:"positions"`
	Velocities [][2]float64 `json:"velocities"`
}

type ExportData struct {
	Meta
	Steps   int                `json:"steps"`
	Frames  []frameData        `json:"frames"`
	Energy  []float64          `json:"energy"`
	Metrics map[string]float64 `json:"metrics"`
	Errors  []string           `json:"errors,omitempty"`
}

func WriteJSON(w io.Writer, meta Meta, result *sim.Result) error {
	data := ExportData{
		Meta:    meta,
		Steps:   result.StepsTaken,
		Frames:  make([]frameData, len(result.Frames)),
		Energy:  result.Energy,
		Metrics: result.Metrics,
	}

	for i, f := range result.Frames {
		data.Frames[i] = frameData{
			Step:       f.Step,
			Time:       f.Time,
			Positions:  pairs(f.Positions),
			Velocities: pairs(f.Velocities),
		}
	}
	for _, err := range result.Errors {
		data.Errors = append(data.Errors, err.Error())
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func pairs(vs []dynamo.Vec2) [][2]float64 {
	out := make([][2]float64, len(vs))
	for i, v := range vs {
		out[i] = [2]float64{v.X, v.Y}
	}
	return out
}
