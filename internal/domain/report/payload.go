package report

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var payloadValidator = validator.New()

// Payload is the structured report body. It replaces the ad-hoc JSON blobs
// the dashboard used to pass around with an explicit schema validated at
// the store boundary.
type Payload struct {
	Label   string        `json:"label" validate:"required,max=120"`
	Summary Summary       `json:"summary"`
	Series  []SeriesPoint `json:"series" validate:"dive"`
}

// Summary is the numeric rollup shown on the dashboard cards.
type Summary struct {
	Total       int `json:"total" validate:"gte=0"`
	Abertos     int `json:"abertos" validate:"gte=0"`
	Fechados    int `json:"fechados" validate:"gte=0"`
	Pendentes   int `json:"pendentes" validate:"gte=0"`
	EmAndamento int `json:"em_andamento" validate:"gte=0"`
}

// SeriesPoint is one bucket of the period's time series.
type SeriesPoint struct {
	Name  string `json:"name" validate:"required"`
	Value int    `json:"value" validate:"gte=0"`
}

func (p Payload) Validate() error {
	if err := payloadValidator.Struct(p); err != nil {
		return fmt.Errorf("invalid report payload: %w", err)
	}
	return nil
}
