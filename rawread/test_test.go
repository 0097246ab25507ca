package rawread

// Shared test helpers: an event recorder that captures the callback sequence
// as readable strings and can inject a failure at a chosen event.

import "fmt"

type eventRecorder struct {
	events  []string
	failOn  string // event string to fail at, "" to never fail
	failErr error
}

func (er *eventRecorder) record(ev string) error {
	if er.failOn != "" && ev == er.failOn {
		return er.failErr
	}
	er.events = append(er.events, ev)

	return nil
}

func (er *eventRecorder) callbacks() Callbacks {
	return Callbacks{
		ObjectBegin: func() error { return er.record("object_begin") },
		ObjectEnd:   func() error { return er.record("object_end") },
		ArrayBegin:  func() error { return er.record("array_begin") },
		ArrayEnd:    func() error { return er.record("array_end") },
		Key:         func(text []byte) error { return er.record(fmt.Sprintf("key %s", text)) },
		Type:        func(text []byte) error { return er.record(fmt.Sprintf("type %s", text)) },
		Primitive:   func(text []byte) error { return er.record(fmt.Sprintf("primitive %s", text)) },
	}
}
