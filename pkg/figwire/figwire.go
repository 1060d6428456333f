package figwire

import (
	"fmt"
	"io"
	"os"

	"github.com/lightplot/figwire-go/pkg/figwire/models"
	"github.com/lightplot/figwire-go/pkg/figwire/render"
	"github.com/lightplot/figwire-go/pkg/figwire/wire"
)

// Decode reads one complete figure stream from r.
func Decode(r io.Reader) (*models.ChartSpec, error) {
	return wire.Decode(r)
}

// DecodeFile decodes the figure stream stored at path.
func DecodeFile(path string) (*models.ChartSpec, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return wire.Decode(f)
}

// RenderSpec renders an already decoded chart under outDir. It reports
// whether an output file was saved; a chart with an empty save path renders
// without saving, which is not an error.
func RenderSpec(spec *models.ChartSpec, outDir string, opts Options) (bool, error) {
	return render.Render(spec, opts.backend(), render.Params{
		OutDir: outDir,
		Legend: opts.Legend,
	})
}

// MakeImage decodes the figure stream at inputPath and renders it under
// outDir. It reports whether an output file was saved.
func MakeImage(inputPath, outDir string, opts Options) (bool, error) {
	spec, err := DecodeFile(inputPath)
	if err != nil {
		return false, err
	}
	return RenderSpec(spec, outDir, opts)
}
