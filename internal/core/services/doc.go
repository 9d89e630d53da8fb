// Package services contains the core business logic: the analysis
// pipeline, the document collection with its cache invariant, and
// query-time search.
//
// Services implement the driving ports and depend only on the driven
// ports, the domain, and the analyzer packages.
package services
