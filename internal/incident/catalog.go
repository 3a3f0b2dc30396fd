// Per-service log message catalogs, conditioned on error/normal mode.
package incident

import (
	"fmt"
	"math/rand"
)

type msgFunc func(r *rand.Rand) string

type serviceCatalog struct {
	normal []msgFunc
	errors []msgFunc
}

// Message draws a log message for the service, falling back to the
// generic catalog for services without dedicated templates. It is
// shared with the standalone app-log dataset builder.
func Message(r *rand.Rand, service string, errorMode bool) string {
	cat, ok := catalogs[service]
	if !ok {
		cat = catalogs["app"]
	}
	pool := cat.normal
	if errorMode {
		pool = cat.errors
	}
	return pool[r.Intn(len(pool))](r)
}

func port(r *rand.Rand) int   { return 1024 + r.Intn(64512) }
func pid(r *rand.Rand) int    { return 100 + r.Intn(32000) }
func millis(r *rand.Rand) int { return 1 + r.Intn(5000) }
func kbytes(r *rand.Rand) int { return 1 + r.Intn(4096) }

var catalogs = map[string]serviceCatalog{
	"nginx": {
		normal: []msgFunc{
			func(r *rand.Rand) string {
				return fmt.Sprintf("GET /api/v1/status HTTP/1.1 200 %d bytes in %dms", kbytes(r)*10, millis(r)/10+1)
			},
			func(r *rand.Rand) string {
				return fmt.Sprintf("accepted connection from 10.0.%d.%d:%d", r.Intn(256), r.Intn(256), port(r))
			},
			func(r *rand.Rand) string { return fmt.Sprintf("reloading worker processes, %d active", 1+r.Intn(8)) },
		},
		errors: []msgFunc{
			func(r *rand.Rand) string {
				return fmt.Sprintf("upstream timed out (110: Connection timed out) while reading response header, upstream port %d", port(r))
			},
			func(r *rand.Rand) string { return fmt.Sprintf("worker process %d exited on signal 9", pid(r)) },
			func(r *rand.Rand) string {
				return fmt.Sprintf("502 Bad Gateway: no live upstreams after %dms", millis(r))
			},
		},
	},
	"app": {
		normal: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("request completed in %dms", millis(r)/10+1) },
			func(r *rand.Rand) string { return fmt.Sprintf("session cache refreshed, %d entries", r.Intn(5000)) },
			func(r *rand.Rand) string { return fmt.Sprintf("background job finished, processed %d items", r.Intn(1000)) },
		},
		errors: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("request aborted after %dms: context deadline exceeded", millis(r)) },
			func(r *rand.Rand) string { return fmt.Sprintf("unhandled panic in worker %d: runtime error", pid(r)) },
			func(r *rand.Rand) string { return fmt.Sprintf("dropped %d queued events, buffer full", r.Intn(500)) },
		},
	},
	"api": {
		normal: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("POST /v2/orders 201 in %dms", millis(r)/10+1) },
			func(r *rand.Rand) string { return fmt.Sprintf("rate limiter: %d requests in window", r.Intn(10000)) },
		},
		errors: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("downstream call failed after %dms, retrying", millis(r)) },
			func(r *rand.Rand) string { return fmt.Sprintf("circuit breaker open for dependency on port %d", port(r)) },
		},
	},
	"postgres": {
		normal: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("checkpoint complete: wrote %d buffers", r.Intn(10000)) },
			func(r *rand.Rand) string { return fmt.Sprintf("autovacuum of table finished in %dms", millis(r)) },
			func(r *rand.Rand) string { return fmt.Sprintf("connection authorized: database=app pid=%d", pid(r)) },
		},
		errors: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("deadlock detected, process %d waiting", pid(r)) },
			func(r *rand.Rand) string { return fmt.Sprintf("slow query: duration %dms exceeds threshold", millis(r)+1000) },
			func(r *rand.Rand) string { return "FATAL: remaining connection slots reserved for superuser" },
		},
	},
	"backup": {
		normal: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("incremental backup complete, %d KB written", kbytes(r)*100) },
		},
		errors: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("backup aborted after %dms: write stalled", millis(r)) },
		},
	},
	"redis": {
		normal: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("background save done in %dms", millis(r)) },
			func(r *rand.Rand) string { return fmt.Sprintf("%d keys expired this cycle", r.Intn(1000)) },
		},
		errors: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("client on port %d dropped: output buffer limit reached", port(r)) },
			func(r *rand.Rand) string { return fmt.Sprintf("evicted %d keys, maxmemory reached", r.Intn(10000)) },
		},
	},
	"worker": {
		normal: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("dequeued %d tasks in %dms", r.Intn(200), millis(r)/10+1) },
		},
		errors: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("task %d failed after %dms, requeued", pid(r), millis(r)) },
		},
	},
	"scheduler": {
		normal: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("scheduled %d jobs for next interval", r.Intn(100)) },
		},
		errors: []msgFunc{
			func(r *rand.Rand) string { return fmt.Sprintf("missed schedule window by %dms", millis(r)) },
		},
	},
}
