// Package normalize canonicalizes raw book and message tokens into the keys
// used for index lookups.
//
// Two policies coexist: PolicyStrict keys accented letters literally, while
// PolicyFoldAccents applies Unicode canonical decomposition (NFD) first so
// that accent differences do not split keys. The active policy is part of an
// engine's configuration and must match between index build and encode.
package normalize
