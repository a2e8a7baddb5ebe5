// Speclint validates JSON service specification documents.
//
// A specification describes a REST-style service: models, enums, unions,
// resources with operations, parameters, responses, headers, and imports
// of other specifications. Speclint checks a document against the full
// rule set and reports every diagnostic found.
//
// Usage:
//
//	# Validate a single document
//	speclint lint --file service.json
//
//	# Validate a directory of documents
//	speclint lint --dir specs/
//
//	# Revalidate on every change
//	speclint lint --file service.json --watch
//
//	# Start the validation server
//	speclint serve
//
//	# Show version information
//	speclint version
package main

func main() {
	Execute()
}
