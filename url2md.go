// Package url2md turns article URLs into clean Markdown. It fetches the
// page (falling back to a Wayback Machine snapshot when direct retrieval
// fails or is blocked), locates the platform-specific article container,
// strips boilerplate, repairs lazy-loaded images, and renders the
// remaining HTML as Markdown ready for a blog post editor.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g. goquery/, wayback/, markdown/).
package url2md
