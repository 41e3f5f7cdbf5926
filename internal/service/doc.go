// Package service contains application logic that spans more than one store.
//
// Single-entity CRUD goes straight from the API handlers to the stores in
// internal/store. SetItemService sits between the handlers and the set item
// store because, when reference checking is enabled, creating or updating a
// set item reads the sets, products and ads tables in the same transaction as
// the write.
package service
