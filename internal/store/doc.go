// Package store defines interfaces for catalog persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the handlers and services, allowing them to remain independent of
// specific database technologies or persistence details.
package store
