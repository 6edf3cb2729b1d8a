package interfaces

import (
	"smartsales365/internal/domain/prompt"
	"smartsales365/internal/domain/reportdata"
)

// IReportRenderer turns an assembled dataset into one exported artifact
// format. Implementations exist per output format; the report use case
// selects one by the interpreted format token.
type IReportRenderer interface {
	Render(params prompt.Params, data reportdata.Dataset) ([]byte, error)
	ContentType() string
	FileExtension() string
}
