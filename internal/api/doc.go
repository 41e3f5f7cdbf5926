// Package api handles incoming HTTP requests for the catalog resources:
// products, ads, sets and set items. It decodes and validates JSON bodies,
// resolves list pagination, calls the stores (and, for set items, the
// service layer) and maps results and errors to JSON responses.
//
// Errors are translated by MapErrorToStatusCode: validation failures and
// database rejections become 400, missing records 404, everything else 500.
// Error bodies carry a safe message and the request's trace ID.
package api
