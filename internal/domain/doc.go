// Package domain contains the catalog entities (products, ads, sets and set
// items) and the error taxonomy shared by the store and API layers. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
