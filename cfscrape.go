// Package cfscrape extracts competitive-programming problems from the
// Codeforces problemset. It drives a real browser to render one problem
// page at a time, pulls a fixed set of fields (title, limits, statement
// body, sample tests, tags) out of the rendered markup, and persists each
// problem as a plain-text statement plus a JSON record.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/,
// goquery/, fs/, sqlite/).
package cfscrape
