// Package extractors provides implementations of the Extractor interface
// for the evidence formats LegalMind accepts. Each extractor knows how to
// turn the raw bytes of one family of MIME types into plain text.
//
// Extractors are registered with the Registry at startup. Uploads no
// extractor claims are decoded as UTF-8 text.
package extractors
