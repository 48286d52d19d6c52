// Package store provides file-based persistence for eatgo's durable client
// data.
//
// ItemFileStore is a small key/value store implementing domain.TokenStore. It
// keeps every item in one JSON file under the configured home directory,
// written atomically via a temp file and rename. When a passphrase is set,
// values are sealed with a scrypt-derived ChaCha20-Poly1305 key before they
// touch disk. All methods are concurrency-safe via internal locking.
package store
