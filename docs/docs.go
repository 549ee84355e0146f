// Package docs holds the OpenAPI description served under /swagger/.
//
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.HealthResponse"}}
                }
            }
        },
        "/api/v1/flights/search": {
            "post": {
                "description": "Resolves both airports, queries Sky Scrapper and returns normalized flight legs.\nUpstream failures produce an empty result with the \"No flights found\" message.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flights"],
                "summary": "Search for flights",
                "parameters": [
                    {"description": "Search criteria", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SearchFlightsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SearchResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorDetail"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/airports": {
            "get": {
                "description": "Returns up to 10 airports matching the query. Queries shorter than two\ncharacters return an empty list. Responses superseded by a newer lookup\nfor the same session and field are marked stale and carry no airports.",
                "produces": ["application/json"],
                "tags": ["airports"],
                "summary": "Airport autocomplete",
                "parameters": [
                    {"type": "string", "description": "Text typed into the field", "name": "query", "in": "query", "required": true},
                    {"type": "string", "default": "origin", "description": "origin or destination", "name": "field", "in": "query"},
                    {"type": "string", "description": "Client session used to order lookups", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SuggestionsDTO"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/calendar/view": {"post": {"tags": ["calendar"], "summary": "Render the date picker", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "Current picker state", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/http.CalendarRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CalendarResponse"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}}}},
        "/api/v1/calendar/select": {"post": {"tags": ["calendar"], "summary": "Click a day", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "State and clicked date", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CalendarRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CalendarResponse"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}}}},
        "/api/v1/calendar/advance": {"post": {"tags": ["calendar"], "summary": "Move the visible window", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "State and month step", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CalendarRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CalendarResponse"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}}}},
        "/api/v1/calendar/reset": {"post": {"tags": ["calendar"], "summary": "Clear both dates", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "Current picker state", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CalendarRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CalendarResponse"}}}}},
        "/api/v1/calendar/trip-type": {"post": {"tags": ["calendar"], "summary": "Switch between round trip and one way", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "State and trip type", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CalendarRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CalendarResponse"}}, "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}}}},
        "/api/v1/calendar/open": {"post": {"tags": ["calendar"], "summary": "Show the picker", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "Current picker state", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/http.CalendarRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CalendarResponse"}}}}},
        "/api/v1/calendar/close": {"post": {"tags": ["calendar"], "summary": "Hide the picker", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "Current picker state", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/http.CalendarRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CalendarResponse"}}}}}
    },
    "definitions": {
        "http.SearchFlightsRequest": {
            "type": "object",
            "properties": {
                "origin": {"type": "string", "example": "Istanbul"},
                "destination": {"type": "string", "example": "New York"},
                "departDate": {"type": "string", "example": "2025-06-01"},
                "returnDate": {"type": "string", "example": "2025-06-10"},
                "tripType": {"type": "string", "example": "roundtrip"},
                "passengers": {"$ref": "#/definitions/http.PassengersDTO"},
                "cabinClass": {"type": "string", "example": "economy"},
                "currency": {"type": "string", "example": "USD"},
                "filters": {"$ref": "#/definitions/http.FilterDTO"}
            }
        },
        "http.PassengersDTO": {
            "type": "object",
            "properties": {
                "adults": {"type": "integer", "example": 1},
                "children": {"type": "integer", "example": 0},
                "infants": {"type": "integer", "example": 0},
                "lapInfants": {"type": "integer", "example": 0}
            }
        },
        "http.FilterDTO": {
            "type": "object",
            "properties": {
                "maxStops": {"type": "integer", "example": 0},
                "airlines": {"type": "array", "items": {"type": "string"}, "example": ["TK", "LH"]},
                "priceRange": {"$ref": "#/definitions/http.PriceRangeDTO"}
            }
        },
        "http.PriceRangeDTO": {
            "type": "object",
            "properties": {
                "min": {"type": "number", "example": 100},
                "max": {"type": "number", "example": 800}
            }
        },
        "http.CalendarRequest": {
            "type": "object",
            "properties": {
                "state": {"$ref": "#/definitions/calendar.State"},
                "date": {"type": "string", "example": "2025-06-01"},
                "months": {"type": "integer", "example": 1},
                "tripType": {"type": "string", "example": "oneway"}
            }
        },
        "http.CalendarResponse": {
            "type": "object",
            "properties": {
                "view": {"$ref": "#/definitions/calendar.View"}
            }
        },
        "http.SuggestionsDTO": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "origin"},
                "query": {"type": "string", "example": "ista"},
                "stale": {"type": "boolean"},
                "airports": {"type": "array", "items": {"$ref": "#/definitions/http.AirportDTO"}}
            }
        },
        "http.AirportDTO": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "IST"},
                "name": {"type": "string", "example": "Istanbul"},
                "city": {"type": "string"},
                "country": {"type": "string"},
                "type": {"type": "string"},
                "entityId": {"type": "string"},
                "distance": {"type": "number"},
                "label": {"type": "string", "example": "Istanbul (IST)"}
            }
        },
        "calendar.State": {
            "type": "object",
            "properties": {
                "currentMonth": {"type": "string", "example": "2025-06"},
                "departDate": {"type": "string", "example": "2025-06-01"},
                "returnDate": {"type": "string", "example": "2025-06-10"},
                "tripType": {"type": "string", "example": "roundtrip"},
                "open": {"type": "boolean"}
            }
        },
        "calendar.View": {
            "type": "object",
            "properties": {
                "state": {"$ref": "#/definitions/calendar.State"},
                "phase": {"type": "string", "example": "DEPART_SET"},
                "today": {"type": "string", "example": "2025-05-20"},
                "weekdays": {"type": "array", "items": {"type": "string"}},
                "months": {"type": "array", "items": {"$ref": "#/definitions/calendar.MonthGrid"}}
            }
        },
        "calendar.MonthGrid": {
            "type": "object",
            "properties": {
                "month": {"type": "string", "example": "2025-06"},
                "title": {"type": "string", "example": "June 2025"},
                "offset": {"type": "integer", "example": 6},
                "days": {"type": "array", "items": {"$ref": "#/definitions/calendar.DayCell"}}
            }
        },
        "calendar.DayCell": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "day": {"type": "integer"},
                "selected": {"type": "boolean"},
                "isToday": {"type": "boolean"},
                "inRange": {"type": "boolean"},
                "disabled": {"type": "boolean"}
            }
        },
        "domain.SearchResponse": {
            "type": "object",
            "properties": {
                "searchCriteria": {"$ref": "#/definitions/domain.SearchCriteria"},
                "metadata": {"$ref": "#/definitions/domain.SearchMetadata"},
                "flights": {"type": "array", "items": {"$ref": "#/definitions/domain.FlightRecord"}},
                "message": {"type": "string", "example": "No flights found"}
            }
        },
        "domain.SearchCriteria": {
            "type": "object",
            "properties": {
                "origin": {"type": "string"},
                "destination": {"type": "string"},
                "departDate": {"type": "string"},
                "returnDate": {"type": "string"},
                "tripType": {"type": "string"},
                "passengers": {"type": "integer"},
                "cabinClass": {"type": "string"},
                "currency": {"type": "string"}
            }
        },
        "domain.SearchMetadata": {
            "type": "object",
            "properties": {
                "totalResults": {"type": "integer"},
                "searchTimeMs": {"type": "integer"},
                "filteredOut": {"type": "integer"}
            }
        },
        "domain.FlightRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "departure": {"$ref": "#/definitions/domain.FlightPoint"},
                "arrival": {"$ref": "#/definitions/domain.FlightPoint"},
                "airline": {"type": "string"},
                "airlineCode": {"type": "string"},
                "logos": {"type": "array", "items": {"type": "string"}},
                "flightNumber": {"type": "string"},
                "price": {"type": "number"},
                "duration": {"type": "string", "example": "11h 5m"},
                "durationMinutes": {"type": "integer"},
                "stops": {"type": "integer"},
                "stopsLabel": {"type": "string", "example": "Nonstop"},
                "stopDetails": {"type": "array", "items": {"$ref": "#/definitions/domain.StopDetail"}},
                "aircraft": {"type": "string"},
                "cabinClass": {"type": "string"},
                "seatsAvailable": {"type": "integer"},
                "baggage": {"$ref": "#/definitions/domain.BaggageInfo"},
                "refundable": {"type": "boolean"},
                "eco": {"$ref": "#/definitions/domain.EcoInfo"}
            }
        },
        "domain.FlightPoint": {
            "type": "object",
            "properties": {
                "airport": {"type": "string"},
                "code": {"type": "string"},
                "time": {"type": "string", "example": "09:30"},
                "terminal": {"type": "string"},
                "city": {"type": "string"}
            }
        },
        "domain.StopDetail": {
            "type": "object",
            "properties": {
                "airport": {"type": "string"},
                "duration": {"type": "string"}
            }
        },
        "domain.BaggageInfo": {
            "type": "object",
            "properties": {
                "carryOn": {"type": "boolean"},
                "checkedBags": {"type": "integer"}
            }
        },
        "domain.EcoInfo": {
            "type": "object",
            "properties": {
                "emissions": {"type": "string", "example": "412 kg"},
                "comparison": {"type": "string"}
            }
        },
        "response.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "validation_error"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "response.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "service": {"type": "string"},
                "time": {"type": "string"},
                "cache": {"type": "string", "example": "disabled"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Flight Search Web API",
	Description:      "Backend for the flight search web UI: airport autocomplete, the date range picker and normalized Sky Scrapper search results.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
