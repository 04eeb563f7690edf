// Package localtoken provides an encrypted, self-contained credential codec
// for cell-local access tokens and authorization codes.
//
// Features:
// - Encoding and parsing of access tokens ("AL~" prefix) and authorization codes ("GC~" prefix)
// - Issuer-bound AES-256-GCM encryption with HKDF-derived per-issuer keys
// - Reversible digit obfuscation of the issuance timestamp
// - Lossless role-list round-trips with role URL validation
// - Stateless encode/parse safe for concurrent use
//
// A token proves its own validity: successful decryption under the key
// derived for the expected issuer, plus the caller's expiry check, replaces
// any server-side lookup.
package localtoken
