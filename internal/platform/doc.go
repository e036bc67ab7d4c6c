package platform

// Package platform contains OS integration glue: filesystem helpers, default
// directory discovery, filename sanitizing, and external tool lookup.
