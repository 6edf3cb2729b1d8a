package render

import (
	"encoding/json"

	"smartsales365/internal/domain/prompt"
	"smartsales365/internal/domain/reportdata"
)

// JSONRenderer emits the dataset as an indented UTF-8 document together with
// the interpreted parameters, so a consumer can reproduce the query.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(params prompt.Params, data reportdata.Dataset) ([]byte, error) {
	doc := map[string]any{
		"descripcion": params.Description,
		"parametros":  params.Serializable(),
		"datos":       data.Payload(),
	}
	return json.MarshalIndent(doc, "", "  ")
}

func (r *JSONRenderer) ContentType() string {
	return "application/json"
}

func (r *JSONRenderer) FileExtension() string {
	return "json"
}
