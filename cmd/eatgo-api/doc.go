// Package main runs the in-memory restaurant API used by eatgo during
// development and tests.
//
// HTTP API
//
//	GET /regions
//	    List regions.
//
//	GET /categories
//	    List categories.
//
//	GET /restaurants?region={name}&category={id}
//	    List restaurants in the named region with the given category.
//
//	GET /restaurants/{id}
//	    Return one restaurant with its reviews.
//
//	POST /session { "email": ..., "password": ... }
//	    Exchange credentials for { "accessToken": ... }.
//
//	POST /restaurants/{id}/reviews { "score": N, "description": ... }
//	    Add a review. Requires "Authorization: Bearer <accessToken>".
//
// Behaviour
//
//   - All state is held in memory and lost on process exit. The server starts
//     with a small seeded data set and one user, tester@example.com / test.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - An access log records method, path, status, bytes and duration for each
//     request.
//   - The default listen address is :8080.
package main
