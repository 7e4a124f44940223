package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/grid"
)

// Pair is one alignment job: {"id": "...", "x": [...], "y": [...]}.
type Pair struct {
	ID string    `json:"id,omitempty"`
	X  []float64 `json:"x"`
	Y  []float64 `json:"y"`
}

// Score is a float64 that survives JSON round trips when infinite:
// ±Inf and NaN are written as the strings "+Inf", "-Inf" and "NaN".
type Score float64

// MarshalJSON implements json.Marshaler.
func (s Score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler and accepts numbers or the
// strings produced by MarshalJSON.
func (s *Score) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*s = Score(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("score %q: %w", v, ErrBadInput)
		}
		*s = Score(f)
	default:
		return fmt.Errorf("score %s: %w", b, ErrBadInput)
	}

	return nil
}

// Position mirrors grid.Position with JSON tags.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CellReport is one grid entry in a report.
type CellReport struct {
	Score Score  `json:"score"`
	Mask  string `json:"mask"`
}

// Report is the JSON view of an align.Result.
type Report struct {
	ID       string         `json:"id,omitempty"`
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Score    Score          `json:"score"`
	Position Position       `json:"position"`
	Grid     [][]CellReport `json:"grid,omitempty"`
}

// NewReport converts res. The grid, row-major with Y outer, is included only
// when withGrid is set.
func NewReport(id string, res *align.Result, withGrid bool) Report {
	r := Report{
		ID:       id,
		Width:    res.Width(),
		Height:   res.Height(),
		Score:    Score(res.Score()),
		Position: Position{X: res.Position().X, Y: res.Position().Y},
	}
	if !withGrid {
		return r
	}
	g := res.Grid()
	r.Grid = make([][]CellReport, g.Height())
	for y := range r.Grid {
		row := make([]CellReport, g.Width())
		for x := range row {
			c := g.Cell(grid.Pos(x, y))
			row[x] = CellReport{Score: Score(c.Score), Mask: c.Mask.String()}
		}
		r.Grid[y] = row
	}

	return r
}

// openInput returns the file named by args[0], or stdin when there is no
// argument or it is "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

func decodePair(r io.Reader) (Pair, error) {
	var p Pair
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("decode pair: %v: %w", err, ErrBadInput)
	}

	return p, nil
}

func decodePairs(r io.Reader) ([]Pair, error) {
	var ps []Pair
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ps); err != nil {
		return nil, fmt.Errorf("decode pairs: %v: %w", err, ErrBadInput)
	}

	return ps, nil
}

func readPair(cmd *cobra.Command, args []string) (Pair, error) {
	in, err := openInput(cmd, args)
	if err != nil {
		return Pair{}, err
	}
	defer in.Close()

	return decodePair(in)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
