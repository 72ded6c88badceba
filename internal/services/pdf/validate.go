package pdf

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// validateStructure runs pdfcpu's validator over the whole document.
// Relaxed mode tolerates the small structural violations most real-world
// generators produce while still catching broken xref tables and
// truncated files.
func validateStructure(data []byte) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.Validate(bytes.NewReader(data), conf)
}
