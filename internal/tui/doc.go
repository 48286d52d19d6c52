// Package tui is the interactive terminal view of eatgo.
//
// Every model renders from the shared state store and changes it only by
// dispatching actions or running command procedures through the store. The
// pages are:
//
//   - CatalogModel      regions, categories and the matching restaurants
//   - RestaurantModel   one restaurant with its reviews and the review form
//   - LoginModel        the login form, or a logout control when logged in
//
// App is the root model. It switches between pages and re-renders whenever
// the store changes.
package tui
