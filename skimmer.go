// Package skimmer turns web pages and search results into structured,
// readable records: a title, a short description, a best-effort publish
// date, and the main article text with navigation, ads, and other
// boilerplate stripped away. It also composes a metasearch query with
// per-result extraction, producing one aggregate record that mixes search
// metadata with scraped content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, searxng/, goquery/).
package skimmer
