// Package parser decodes JSON specification documents into the intermediate
// form consumed by the validator.
//
// The parser is the ingestion boundary: decode failures never escape as
// errors, they become typed diagnostics ("No Data" for empty input, the
// decoder's reason or "Invalid JSON" otherwise). Anything that decodes as a
// JSON object produces a form, however incomplete; deciding whether that
// form is acceptable is the validator's job.
//
// During construction the parser derives everything the rules need but the
// wire format does not carry directly: path placeholder names from ":name"
// segments, response display labels, and deprecated-syntax warnings on type
// labels.
package parser
