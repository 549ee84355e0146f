package skyscrapper

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/flight-search/flight-search-web/internal/domain"
	"github.com/flight-search/flight-search-web/internal/infrastructure/timeutil"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// fallbackIDPrefix marks ids derived from leg contents rather than supplied upstream.
const fallbackIDPrefix = "leg-"

// Normalizer converts searchFlights payloads into display records.
// It never fails: malformed itineraries and legs are skipped one at a time.
type Normalizer struct {
	logger zerolog.Logger
}

// NewNormalizer creates a Normalizer that reports skipped input on logger.
func NewNormalizer(logger zerolog.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize flattens data.itineraries[].legs[] into records, in upstream order.
// requestedCabin is used for legs that carry no cabin class of their own.
func (n *Normalizer) Normalize(raw []byte, requestedCabin domain.CabinClass) []domain.FlightRecord {
	records := []domain.FlightRecord{}

	if !gjson.ValidBytes(raw) {
		n.logger.Warn().Int("bytes", len(raw)).Msg("Itinerary payload is not valid JSON")
		return records
	}

	itineraries := gjson.GetBytes(raw, "data.itineraries")
	if !itineraries.IsArray() {
		n.logger.Warn().Str("type", itineraries.Type.String()).Msg("Itinerary payload has no itinerary list")
		return records
	}

	ids := newIDSet()
	skipped := 0
	itineraryIdx := -1

	itineraries.ForEach(func(_, itinerary gjson.Result) bool {
		itineraryIdx++
		legs := itinerary.Get("legs")
		if !itinerary.IsObject() || !legs.IsArray() {
			skipped++
			n.logger.Debug().Int("itinerary", itineraryIdx).Msg("Skipping itinerary without legs")
			return true
		}

		price := priceOf(itinerary.Get("price"))
		refundable := optionalBool(itinerary.Get("isRefundable"))

		legIdx := -1
		legs.ForEach(func(_, leg gjson.Result) bool {
			legIdx++
			if !leg.IsObject() || (!leg.Get("origin").IsObject() && !leg.Get("destination").IsObject()) {
				skipped++
				n.logger.Debug().
					Int("itinerary", itineraryIdx).
					Int("leg", legIdx).
					Msg("Skipping leg without origin and destination")
				return true
			}

			record := normalizeLeg(leg, requestedCabin)
			record.ID = ids.claim(record.ID)
			record.Price = price
			record.Refundable = refundable
			records = append(records, record)
			return true
		})
		return true
	})

	if skipped > 0 {
		n.logger.Info().Int("skipped", skipped).Int("kept", len(records)).Msg("Skipped malformed itinerary entries")
	}

	return records
}

// normalizeLeg builds one record from a leg object. ID, Price and Refundable are
// filled by the caller.
func normalizeLeg(leg gjson.Result, requestedCabin domain.CabinClass) domain.FlightRecord {
	airline := firstNonEmpty(
		leg.Get("marketingCarrier.name").String(),
		leg.Get("operatingCarrier.name").String(),
	)
	flightNumber := leg.Get("marketingCarrier.code").String() + leg.Get("marketingCarrier.flightNumber").String()
	airlineCode := domain.InferAirlineCode(airline, flightNumber)

	departureRaw := leg.Get("departure").String()
	arrivalRaw := leg.Get("arrival").String()

	durationMinutes := int(leg.Get("durationInMinutes").Int())
	stops := int(leg.Get("stopCount").Int())

	cabin := requestedCabin
	if c := leg.Get("cabinClass").String(); c != "" {
		cabin = domain.CabinClass(c)
	}

	record := domain.FlightRecord{
		ID:              leg.Get("id").String(),
		Departure:       flightPoint(leg.Get("origin"), departureRaw, leg.Get("originTerminal").String()),
		Arrival:         flightPoint(leg.Get("destination"), arrivalRaw, leg.Get("destinationTerminal").String()),
		Airline:         airline,
		AirlineCode:     airlineCode,
		Logos:           domain.AirlineLogoURLs(airlineCode),
		FlightNumber:    flightNumber,
		Duration:        domain.FormatDuration(durationMinutes),
		DurationMinutes: max(durationMinutes, 0),
		Stops:           stops,
		StopsLabel:      domain.StopsLabel(stops),
		StopDetails:     stopDetails(leg.Get("stops")),
		Aircraft:        leg.Get("equipment.name").String(),
		CabinClass:      cabin,
		SeatsAvailable:  optionalInt(leg.Get("seatsAvailable")),
		Baggage:         baggage(leg.Get("baggage")),
		Eco:             eco(leg.Get("sustainability")),
	}

	if record.ID == "" {
		record.ID = fallbackID(airline, flightNumber, departureRaw, arrivalRaw)
	}

	return record
}

func flightPoint(place gjson.Result, timestamp, terminal string) domain.FlightPoint {
	name := place.Get("name").String()

	city := place.Get("city").String()
	if city == "" {
		if words := strings.Fields(name); len(words) > 0 {
			city = words[0]
		}
	}

	return domain.FlightPoint{
		Airport:  name,
		Code:     firstNonEmpty(place.Get("displayCode").String(), place.Get("id").String()),
		Time:     clockTime(timestamp),
		Terminal: terminal,
		City:     city,
	}
}

// clockTime renders an upstream timestamp as "HH:mm" in its own wall clock.
func clockTime(timestamp string) string {
	if timestamp == "" {
		return ""
	}
	t, err := timeutil.ParseWallClock(timestamp)
	if err != nil {
		return ""
	}
	return timeutil.FormatTime(t)
}

// priceOf prefers a non-zero price.raw, then price.amount, else 0. Both may be
// numbers or numeric strings.
func priceOf(price gjson.Result) float64 {
	if raw, ok := numeric(price.Get("raw")); ok && raw != 0 {
		return raw
	}
	if amount, ok := numeric(price.Get("amount")); ok {
		return amount
	}
	return 0
}

func numeric(v gjson.Result) (float64, bool) {
	switch v.Type {
	case gjson.Number:
		return v.Float(), true
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
		return f, err == nil
	}
	return 0, false
}

func stopDetails(stops gjson.Result) []domain.StopDetail {
	details := []domain.StopDetail{}
	if !stops.IsArray() {
		return details
	}
	stops.ForEach(func(_, stop gjson.Result) bool {
		details = append(details, domain.StopDetail{
			Airport:  stop.Get("airport.name").String(),
			Duration: domain.FormatDuration(int(stop.Get("durationInMinutes").Int())),
		})
		return true
	})
	return details
}

func baggage(b gjson.Result) *domain.BaggageInfo {
	if !b.IsObject() {
		return nil
	}
	return &domain.BaggageInfo{
		CarryOn:     b.Get("cabinBag").Bool(),
		CheckedBags: int(b.Get("checkedBag").Int()),
	}
}

func eco(s gjson.Result) *domain.EcoInfo {
	if !s.Exists() || s.Type == gjson.Null {
		return nil
	}
	co2 := s.Get("co2")
	return &domain.EcoInfo{
		Emissions:  strings.TrimSpace(co2.Get("amount").String() + " " + co2.Get("unit").String()),
		Comparison: co2.Get("comparison").String(),
	}
}

func optionalInt(v gjson.Result) *int {
	if v.Type != gjson.Number {
		return nil
	}
	i := int(v.Int())
	return &i
}

func optionalBool(v gjson.Result) *bool {
	if v.Type != gjson.True && v.Type != gjson.False {
		return nil
	}
	b := v.Bool()
	return &b
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// fallbackID derives a stable id from the fields that identify a leg.
func fallbackID(airline, flightNumber, departure, arrival string) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{airline, flightNumber, departure, arrival}, "|")))
	return fallbackIDPrefix + hex.EncodeToString(sum[:])[:12]
}

// idSet hands out ids that are unique within one result set. Repeats get "~2",
// "~3" and so on.
type idSet map[string]struct{}

func newIDSet() idSet {
	return idSet{}
}

func (s idSet) claim(id string) string {
	candidate := id
	for n := 2; ; n++ {
		if _, taken := s[candidate]; !taken {
			s[candidate] = struct{}{}
			return candidate
		}
		candidate = id + "~" + strconv.Itoa(n)
	}
}
