// Package mocks provides centralized mock implementations for testing.
//
// Mocks expose a function field per interface method so each test can
// override behavior, plus default return values and call tracking:
//
//	handler := &mocks.MockEventHandler{
//	    HandleEventFn: func(ctx context.Context, e *events.Event) error {
//	        return nil
//	    },
//	}
//	emitter.RegisterHandler(handler)
//	// ...
//	types := handler.Types()
//
// When adding a new mock to this package, name the file after the interface
// being mocked.
package mocks
