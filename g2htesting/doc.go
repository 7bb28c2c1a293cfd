// Package g2htesting holds the fixture used to test the generated HTTP/JSON
// bridge end to end: a small Greeter service whose messages carry three enums
// with deliberately overlapping integer values, the hand-maintained protoc
// output for it, the companion code protoc-gen-g2h produces for it, and a
// TestServer with predictable responses.
//
// Serve the fixture with GreeterHandler(&g2htesting.TestServer{}) and issue
// plain HTTP POST requests against it.
package g2htesting
