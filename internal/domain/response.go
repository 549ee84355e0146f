package domain

// NoFlightsMessage is shown whenever a search produces no displayable records.
const NoFlightsMessage = "No flights found"

// SearchResponse is what the results list renders.
type SearchResponse struct {
	SearchCriteria SearchCriteria `json:"searchCriteria"`
	Metadata       SearchMetadata `json:"metadata"`
	Flights        []FlightRecord `json:"flights"`

	// Message is set to NoFlightsMessage when Flights is empty
	Message string `json:"message,omitempty"`
}

// SearchCriteria echoes the resolved search back to the client.
type SearchCriteria struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	DepartDate  string     `json:"departDate"`
	ReturnDate  string     `json:"returnDate,omitempty"`
	TripType    TripType   `json:"tripType"`
	Passengers  int        `json:"passengers"`
	CabinClass  CabinClass `json:"cabinClass"`
	Currency    string     `json:"currency"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	TotalResults int   `json:"totalResults"`
	SearchTimeMs int64 `json:"searchTimeMs"`

	// FilteredOut counts records removed by the request's filters
	FilteredOut int `json:"filteredOut,omitempty"`
}

// NewSearchResponse builds a response for the request. A nil or empty flights slice
// produces an empty list with the "No flights found" message.
// Origin and Destination are the resolved airport codes when resolution succeeded,
// otherwise the user's text.
func NewSearchResponse(req *SearchRequest, origin, destination string, flights []FlightRecord, metadata SearchMetadata) *SearchResponse {
	if flights == nil {
		flights = []FlightRecord{}
	}
	metadata.TotalResults = len(flights)

	resp := &SearchResponse{
		SearchCriteria: SearchCriteria{
			Origin:      origin,
			Destination: destination,
			DepartDate:  req.DepartDate,
			ReturnDate:  req.ReturnDate,
			TripType:    req.TripType,
			Passengers:  req.PassengerCount(),
			CabinClass:  req.CabinClass,
			Currency:    req.Currency,
		},
		Metadata: metadata,
		Flights:  flights,
	}
	if len(flights) == 0 {
		resp.Message = NoFlightsMessage
	}
	return resp
}
