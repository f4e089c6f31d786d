// Package statuspage provides types, interfaces, and helpers for working
// with the statuspage.io REST API (v1).
//
// # Overview
//
// The statuspage package defines the domain types (e.g., Page, Component,
// Incident, Subscriber, Metric) and the interfaces for resource-oriented
// clients (e.g., IncidentsClient, ComponentsClient). A concrete
// implementation of these clients is provided by the spclient package,
// which wires configuration and transport. Most consumers should import
// spclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/al26p/statuspage-go/pkg/spclient"
//	  "github.com/al26p/statuspage-go/pkg/statuspage"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := spclient.New(&statuspage.Config{
//	    APIKey: "...",
//	    PageID: "abc123",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  incidents, err := cli.Incidents().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = incidents
//	}
//
// # Errors
//
// Every non-2xx response maps to exactly one concrete error type:
// BadRequestError (400), UnauthorizedError (401/403), NotFoundError
// (404), ValidationError (422, with field detail), RateLimitedError
// (429), ServerError (5xx), and UnexpectedStatusError for anything
// else. Network failures surface as TransportError and malformed JSON
// bodies as ParseError; neither is ever conflated with an API error.
// Helpers such as IsNotFound, IsUnauthorized, and IsValidation make it
// easy to branch on common cases with errors.As semantics.
//
// # Dynamic JSON
//
// Free-form JSON (incident metadata, or any payload parsed via
// ParseValue) is represented by Value, a tagged union over JSON object,
// array, string, number, bool, and null. Missing-key access is an
// explicit, checked failure (ErrKeyNotFound) rather than a silent nil.
//
// # Pagination
//
// The library retrieves a single page of results per List call. The
// page and per_page query parameters are exposed through ListParams so
// callers can paginate explicitly; no automatic aggregation is done.
package statuspage
