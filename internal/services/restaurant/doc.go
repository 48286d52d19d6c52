// Package restaurant loads a restaurant's detail page and submits reviews.
//
// LoadRestaurant marks the detail as loading before any network call, then
// fetches the restaurant and its reviews and sets both. SendReview posts a
// review and then re-reads the review list from the server instead of
// appending locally, so what is shown always matches what was stored.
package restaurant
