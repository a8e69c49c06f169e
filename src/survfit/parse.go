package survfit

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
)

// Wire shapes. A competing-risks file carries a "series" array; a
// multi-state file carries "states" + "probabilities". The kind is decided
// by which fields are present, not by an explicit tag.
type seriesJSON struct {
	Name     string    `json:"name"`
	Time     []float64 `json:"time"`
	Estimate []float64 `json:"estimate"`
	Variance []float64 `json:"variance,omitempty"`
}

type resultJSON struct {
	Series        []seriesJSON `json:"series,omitempty"`
	Time          []float64    `json:"time,omitempty"`
	States        []string     `json:"states,omitempty"`
	Probabilities [][]float64  `json:"probabilities,omitempty"`
	Strata        []Stratum    `json:"strata,omitempty"`
}

// StripJSONC loads a JSONC file (full-line // comments only) and returns raw
// JSON bytes suitable for unmarshalling. Inline // is kept because of URLs.
func StripJSONC(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		out = append(out, []byte(line+"\n")...)
	}
	return out, scanner.Err()
}

// LoadFile reads a .json or .jsonc results file and returns the fit it
// contains.
func LoadFile(path string) (Fit, error) {
	b, err := StripJSONC(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes a results document, detecting the kind from which fields
// are present. A document with neither curve series nor a state matrix is
// ErrUnsupportedInputKind.
func Parse(b []byte) (Fit, error) {
	var raw resultJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	switch {
	case len(raw.States) > 0 || raw.Probabilities != nil:
		m := &MultiStateResult{
			Time:   raw.Time,
			States: raw.States,
			Probs:  raw.Probabilities,
			Strata: raw.Strata,
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
		return m, nil
	case raw.Series != nil:
		c := &CompetingRisksResult{Series: make([]CurveSeries, 0, len(raw.Series))}
		for _, s := range raw.Series {
			if len(s.Estimate) != len(s.Time) {
				return nil, &ShapeError{Reason: "series " + s.Name + " estimate length != time length",
					Want: len(s.Time), Got: len(s.Estimate)}
			}
			pts := make([]CurvePoint, len(s.Time))
			for i := range s.Time {
				pts[i] = CurvePoint{Time: s.Time[i], Estimate: s.Estimate[i]}
				if i < len(s.Variance) {
					pts[i].Variance = s.Variance[i]
				}
			}
			c.Series = append(c.Series, CurveSeries{Name: s.Name, Points: pts})
		}
		// Point order is the estimator's own; it is trusted, not re-sorted.
		return c, nil
	default:
		return nil, ErrUnsupportedInputKind
	}
}
