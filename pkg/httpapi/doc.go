// Package httpapi exposes a model schema over HTTP.
//
//	POST /parse     {"value": "16 Mar 60", "mode": "date"}
//	POST /validate  form body, multiparameter keys such as date_of_birth(1i) allowed
//	GET  /schema    declared attributes
//	GET  /health    liveness probe
//
// Every response uses the same envelope: {"data": ..., "error": {"code",
// "message", "details"}}. Validation failures answer 422 with per-field
// messages in details; assignment failures answer 400. Validation messages
// are translated to the best match for the Accept-Language header.
package httpapi
