package skyscrapper

import (
	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/tidwall/gjson"
)

// parseAirports maps a searchAirport payload to airports, dropping entries without
// a code or a name. A payload without a truthy status and a data array yields none.
func parseAirports(body []byte, limit int) []domain.Airport {
	airports := []domain.Airport{}
	if !gjson.ValidBytes(body) {
		return airports
	}

	root := gjson.ParseBytes(body)
	data := root.Get("data")
	if !root.Get("status").Bool() || !data.IsArray() {
		return airports
	}

	data.ForEach(func(_, entry gjson.Result) bool {
		if len(airports) >= limit {
			return false
		}
		if !entry.IsObject() {
			return true
		}

		name := entry.Get("presentation.suggestionTitle").String()
		if name == "" {
			name = entry.Get("presentation.title").String()
		}

		a := domain.Airport{
			Code:     entry.Get("skyId").String(),
			Name:     name,
			City:     entry.Get("navigation.localizedName").String(),
			Country:  entry.Get("presentation.subtitle").String(),
			Type:     entry.Get("navigation.entityType").String(),
			EntityID: entry.Get("navigation.entityId").String(),
		}
		if a.EntityID == "" {
			a.EntityID = entry.Get("entityId").String()
		}
		if dist := entry.Get("navigation.relevantFlightParams.distance"); dist.Type == gjson.Number {
			v := dist.Float()
			a.Distance = &v
		}

		if a.Code == "" || a.Name == "" {
			return true
		}
		airports = append(airports, a)
		return true
	})

	return airports
}
