// Package fakeapi is an in-memory implementation of the restaurant API used by
// eatgo during development and tests.
//
// HTTP API
//
//	GET /regions
//	GET /categories
//	GET /restaurants?region={name}&category={id}
//	    Restaurants in the named region with the given category id.
//
//	GET /restaurants/{id}
//	    The restaurant with its reviews, newest last.
//
//	POST /restaurants/{id}/reviews  { "score": N, "description": "..." }
//	    Requires "Authorization: Bearer <token>". The reviewer name is taken
//	    from the token's user.
//
//	POST /session  { "email": "...", "password": "..." }
//	    Returns { "accessToken": "..." } or 401.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - An access log records method, path, status, bytes and duration.
package fakeapi
