// Package courier executes typed HTTP requests and funnels every
// failure through a closed error taxonomy.
//
// Callers describe one HTTP call declaratively as an Endpoint: URL,
// method, headers, and body, with the expected response shape bound at
// the type level. The Executor turns the contract into a wire request,
// hands it to a swappable Transport, interprets the status code,
// decodes the body, and returns either the decoded value or exactly
// one taxonomy error. Callers never see raw transport or decoder
// failures.
//
// # Quick Start
//
//	exec := courier.New(
//	    courier.WithServiceName("billing"),
//	)
//
//	type Invoice struct {
//	    ID    int    `json:"id"`
//	    Total string `json:"total"`
//	}
//
//	req := courier.NewRequest[Invoice]("https://api.example.com/invoices/42").
//	    Header("Authorization", "Bearer "+token)
//
//	invoice, err := courier.Do(ctx, exec, req)
//
// # Error Handling
//
// Every failure is one of the closed set of kinds. ServerError and
// AuthenticationFailure are the cases callers typically treat
// specially; everything else is terminal-and-report:
//
//	invoice, err := courier.Do(ctx, exec, req)
//	switch {
//	case errors.Is(err, courier.ErrAuthenticationFailure):
//	    promptForCredentials()
//	case errors.Is(err, courier.ErrServerError):
//	    var cerr *courier.Error
//	    errors.As(err, &cerr)
//	    log.Printf("server status %d", cerr.StatusCode())
//	}
//
// # Asynchronous Calls
//
// Perform starts the call and returns a one-shot Call handle. Exactly
// one outcome is delivered per call; cancelling the context before
// completion suppresses delivery:
//
//	call := courier.Perform(ctx, exec, req)
//	invoice, err := call.Wait(ctx)
//
// # Request Bodies
//
// A raw byte payload wins over parameters; parameters alone are
// JSON-encoded from the closed Value variant; with neither, the body
// is empty:
//
//	req := courier.NewRequest[CreatedUser](url).
//	    Method(courier.MethodPost).
//	    Param("name", courier.String("jane")).
//	    Param("admin", courier.Bool(true))
//
// # Testing
//
// The Transport interface decouples the executor from real network
// I/O. MockTransport scripts byte payloads and status codes and
// records every request:
//
//	mock := courier.NewMockTransport().StubResponse(200, `{"id":1}`)
//	exec := courier.New(courier.WithTransport(mock))
//
// # Observability
//
// Each call emits an OpenTelemetry client span and request duration,
// error, and in-flight metrics. Debug logging through zerolog is
// available with WithDebug and WithLogger. Decode failures log their
// structural detail as a diagnostic side channel; the returned error
// stays fixed and uniform.
package courier
