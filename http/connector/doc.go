// Package connector is the request/response message model of the
// server: a structured surface over pre-parsed header, parameter and
// cookie data on the way in, and a write-once commit protocol turning
// buffered output into wire bytes on the way out.
//
// One exchange is owned by exactly one worker; nothing in this package
// locks. Instances are reused across connections through Recycle and
// [ExchangePool].
package connector
