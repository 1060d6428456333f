// Package output serializes decoded charts for CLI consumption.
package output

import (
	"encoding/json"

	"github.com/lightplot/figwire-go/pkg/figwire/models"
)

// ToJSON serializes a decoded chart to JSON.
func ToJSON(spec *models.ChartSpec, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(spec, "", "  ")
	}
	return json.Marshal(spec)
}
