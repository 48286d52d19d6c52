// Package commands defines the eatgo CLI and wires dependencies for subcommands.
//
// Commands
//
//   - regions       List regions
//   - categories    List categories
//   - restaurants   List restaurants for a region and category
//   - restaurant    Show one restaurant with its reviews
//   - login         Log in and keep the access token
//   - logout        Forget the access token
//   - review        Post a review for a restaurant
//   - tui           Start the interactive view
//   - config        Write (init) or print (show) the settings file
//
// # Implementation
//
// The root command loads the config, builds the logger and the dependency
// graph (token store, API client, state store, services) and restores a saved
// session before any subcommand runs. Subcommands drive the same command
// procedures the interactive view uses and print from the resulting state.
package commands
