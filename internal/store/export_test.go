package store

// WithCheapKDF keeps scrypt fast in tests.
var WithCheapKDF = withScryptParams(1<<10, 8, 1)
