// Package tracing wraps OpenTelemetry so that console blocks and their tasks
// can be traced without the rest of the module importing the SDK.
package tracing
