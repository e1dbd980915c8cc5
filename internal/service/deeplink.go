package service

import (
	"net/url"
	"strings"

	"fare-compare-api/internal/models"
)

// Rapido and Namma Yatri publish no pickup/drop deep-link parameters.
const (
	olaBookingURL = "https://book.olacabs.com/"
	uberLinkURL   = "https://m.uber.com/ul/"
	RapidoURL     = "https://rapido.bike/"
	NammaURL      = "https://nammayatri.in/"
)

// BuildLinks returns provider continuation URLs. Inputs are percent-encoded but otherwise not validated.
func BuildLinks(origin, destination string) models.Links {
	o, d := encodeComponent(origin), encodeComponent(destination)
	return models.Links{
		Ola:    olaBookingURL + "?pickup=" + o + "&drop=" + d,
		Uber:   uberLinkURL + "?action=setPickup&pickup=" + o + "&dropoff=" + d,
		Rapido: RapidoURL,
		Namma:  NammaURL,
	}
}

// encodeComponent escapes s for a query value, spelling spaces as %20 so app links decode them the same way browsers do.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
