// Command export renders the thermometer templates to PNG files and writes
// their geometry to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"

	pledge "github.com/cheeem/RadioKPledgeImageGeneration"
	"github.com/cheeem/RadioKPledgeImageGeneration/testcases"
)

const outDir = "testdata/templates"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		Templates []jsonTemplate `json:"templates"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			img := testcases.Template(tc)

			if _, err := pledge.Save(filepath.Join(outDir, name+".png"), img); err != nil {
				panic(err)
			}

			f := pledge.NewFiller()
			span := pledge.FindBounds(pledge.Column(img, tc.Width/2), f.EdgeColor)
			out.Templates = append(out.Templates, toJSON(name, tc, span))
		}
	}

	f, err := os.Create("testdata/templates.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTemplate struct {
	Name     string    `json:"name"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Tube     float64   `json:"tube"`
	BulbR    float64   `json:"bulb_r"`
	Wall     float64   `json:"wall"`
	CTM      []float64 `json:"ctm,omitempty"`
	Interior [2]int    `json:"interior"`
}

func toJSON(name string, tc testcases.TestCase, span pledge.Span) jsonTemplate {
	jt := jsonTemplate{
		Name:     name,
		Width:    tc.Width,
		Height:   tc.Height,
		Tube:     tc.Shape.Tube,
		BulbR:    tc.Shape.BulbR,
		Wall:     tc.Shape.Wall,
		Interior: [2]int{span.Start, span.End},
	}
	if tc.CTM != (matrix.Matrix{}) {
		jt.CTM = tc.CTM[:]
	}
	return jt
}
