// Package config loads a YAML configuration file into a generic read-only
// document. Every top-level value is classified into a small closed set of
// shapes (string, string sequence, boolean, absent, other) at parse time.
// Loading is deliberately forgiving: any failure yields an empty document so
// callers can continue with per-key defaults.
package config
