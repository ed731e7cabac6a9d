// Package contentapi implements the driven.ContentClient port against a
// Storyblok-compatible management API.
//
// Requests are authenticated with a bearer token bound at construction and
// throttled through a dual-strategy rate limiter: a proactive token bucket
// plus reactive Retry-After handling. Story listing is paginated using the
// Total response header with a hard page cap.
package contentapi
