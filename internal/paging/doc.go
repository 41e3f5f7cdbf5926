// Package paging turns list query parameters into a validated PageRequest.
//
// The accepted query shape is declared once in pageQuery; Resolver applies
// defaults and coercion rules and checks the sort field against the allow-list
// supplied by the caller. Listing is cursor based and forward only: a cursor
// is the id of the last record of the previous page.
package paging
