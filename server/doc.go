// Package server exposes the planner and executor over HTTP.
//
// POST /query accepts {"query": "..."} and returns the compiled plan plus
// the result rows; ?plan=only skips execution. GET /status reports store
// configuration and uptime. Every planning failure maps to a 4xx response
// carrying the error kind, so clients can distinguish a missing FROM
// clause from an unsupported predicate without parsing message text.
package server
