// Package domain contains the core domain model for unitix.
//
// The domain is UI- and persistence-agnostic: it does not depend on YAML parsing,
// the terminal, or the filesystem. Infra/adapters map into/from these types.
//
// A Registry is built once from a list of categories and is read-only afterwards,
// so it can be shared freely between goroutines.
package domain
