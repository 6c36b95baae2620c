// Package acl is the anti-corruption layer between the upstream APIs and the
// domain. Upstream DTOs never leave this package.
//
// Every adapter call is a single HTTP exchange whose failures are converted
// at the point of origin into a *domain.NormalizedError:
//
//   - transport failure (connect, TLS, timeout): "500 Internal Server Error"
//     with the transport message as detail, which lands in the "500" bucket
//   - non-2xx status: the canonical status line (e.g. "404 Not Found") with
//     no detail, so the bucket default applies
//   - unreadable 2xx body (bad JSON, missing or null field, wrong type):
//     the "500" bucket with the decode message as detail
//
// Adapters:
//
//   - [SpeciesClient]: GET {species base}/{name}
//   - [TranslationClient]: POST {translation base}{dialect path} with {"text": ...}
//
// Both also implement ports.HealthChecker via [BaseAdapter.CheckReachable].
package acl
