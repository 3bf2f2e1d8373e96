// Package tuuid implements Universally Unique Identifiers (UUIDs) as defined
// by RFC 4122, with primary support for version 1 (time-based) UUIDs and
// additional support for version 4 (random) UUIDs.
//
// A version 1 UUID encodes a 60-bit timestamp counted in 100-nanosecond
// intervals since 1582-10-15, a 14-bit clock sequence, and a 48-bit node
// identifier. System clocks typically resolve to only a few milliseconds, so
// the generator synthesizes sub-millisecond ordering with a small "tick"
// counter and falls back to the clock sequence when the tick budget runs out
// or the clock moves backward. This makes version 1 UUIDs suitable for:
//   - Request and event identifiers that should sort roughly by creation time
//   - Correlating records produced by a single node
//   - Workloads that burst many identifiers inside one clock quantum
//
// Basic Usage:
//
//	// Generate a new version 1 UUID
//	id, err := tuuid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Generate a version 4 (random) UUID
//	id, err = tuuid.NewV4()
//
//	// Parse a UUID from string
//	id, err = tuuid.Parse("urn:uuid:01234567-89ab-4def-8123-456789abcdef")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Inspect the RFC 4122 fields
//	fmt.Println(id.TimeLow, id.Node, id.Version())
//
// Custom Generator:
//
//	// Create a dedicated generator with its own clock state and node identity
//	gen := tuuid.NewGenerator()
//	for i := 0; i < 1000; i++ {
//	    id, err := gen.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // Use id...
//	}
//
// Thread Safety:
//
// All operations are thread-safe. A Generator serializes the whole
// read-modify-write of its clock state behind one mutex; interleaving any
// part of that sequence between callers could emit colliding field values.
//
// Standards Compliance:
//
// This implementation follows RFC 4122. A version 1 UUID carries:
//   - 32-bit time_low, 16-bit time_mid, 16-bit time_hi_and_version
//   - 8-bit clock_seq_hi_and_reserved, 8-bit clock_seq_low
//   - 48-bit node with the multicast bit set, marking a randomly
//     generated (non-MAC) node identifier per RFC 4122 §4.1.6
package tuuid
