// Package api provides an HTTP implementation of the domain.APIClient
// interface used by eatgo.
//
// The remote service exposes regions, categories, restaurants and their
// reviews, plus a separate login endpoint that issues access tokens. This
// package offers a concrete JSON client for it.
//
// Supported operations include:
//   - Listing regions and categories.
//   - Listing restaurants for a region name and category id.
//   - Fetching a single restaurant, and its reviews.
//   - Exchanging credentials for an access token.
//   - Posting a review with a bearer token.
//
// All requests accept a context for cancellation and deadlines and carry an
// X-Request-ID header. Concurrent identical GETs share one round trip. An
// optional token-bucket limiter throttles outbound calls. Non-2xx statuses are
// returned as *StatusError with the method, path and status text; nothing is
// retried.
package api
