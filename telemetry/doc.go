// Package telemetry wires the module's structured logging. Every checker
// and sub-checker start/stop/timeout is logged through a *logiface.Logger
// backed by zerolog (github.com/joeycumines/izerolog), rather than through
// fmt.Println or the standard log package, matching the rest of the
// dependency pack's logging choice for services of this shape.
package telemetry
