// Package daycare defines the domain types for the daycare directory and
// the HTTP client for its read-only roster endpoint.
//
// # Data Model
//
// A Dog is one record of the roster payload, identified by its chip
// number. The roster is replaced wholesale on every fetch and its order is
// significant downstream. Missing fields degrade to documented fallbacks
// (DisplayName, OwnerName, ImageURL) instead of failing the render.
//
// Status is the one shared attendance enum. StatusAll exists only for
// filtering and is rejected anywhere a concrete value is required.
//
// # Errors
//
// FetchRoster distinguishes its failure modes: *StatusError for non-2xx
// responses (carrying the code), *FormatError when the body is not a JSON
// array of records, and wrapped transport errors otherwise; IsTimeout
// picks deadline expiry out of the latter. *ValidationError covers bad
// input to status changes.
//
// # Writes
//
// There is no write API. StatusSubmitter models the future one, and
// MockSubmitter stands in so the toggle path already has the shape of a
// request/response round trip.
package daycare
