package http

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPISpec []byte

var loadOpenAPI = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("parse openapi.yaml: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi.yaml: %w", err)
	}
	return doc, nil
})

// OpenAPIDocument returns the parsed and validated API description.
func OpenAPIDocument() (*openapi3.T, error) {
	return loadOpenAPI()
}

// swaggerDoc feeds the embedded description to the swagger UI.
type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	doc, err := loadOpenAPI()
	if err != nil {
		return "{}"
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}

func getOpenAPI(ctx echo.Context) error {
	doc, err := loadOpenAPI()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, doc)
}
