// Package qalog converts exported question/answer transcripts into a
// normalized JSON tree. A transcript is an HTML export of a word-processor
// document whose list indentation encodes the conversation: top-level
// questions, nested follow-up questions, answers, and self-replies.
//
// This package contains domain types, the text normalizer and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., html/, sqlite/,
// goquery/).
package qalog
