package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lightplot/figwire-go/pkg/figwire/models"
)

func TestToJSON(t *testing.T) {
	spec := &models.ChartSpec{
		SavePath: "out/plot.png",
		Width:    4,
		Height:   3,
		Series: []models.Series{
			{Kind: models.SeriesLine, X: []float64{0, 1}, Y: []float64{1, 0}, Label: "sq"},
		},
	}

	data, err := ToJSON(spec, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded models.ChartSpec
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.SavePath != spec.SavePath || len(decoded.Series) != 1 {
		t.Errorf("decoded = %+v, expected %+v", decoded, spec)
	}

	pretty, err := ToJSON(spec, true)
	if err != nil {
		t.Fatalf("ToJSON pretty failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"save_path\"") {
		t.Errorf("pretty output not indented: %s", pretty)
	}
}
