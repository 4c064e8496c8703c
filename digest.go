package mtree

import "github.com/opencontainers/go-digest"

// SHA256Digest returns the entry's SHA-256 checksum as an OCI digest
// value. The second return is false when the attribute is absent.
func (p *Params) SHA256Digest() (digest.Digest, bool) {
	if p.SHA256 == nil {
		return "", false
	}
	return digest.NewDigestFromBytes(digest.SHA256, p.SHA256), true
}

// SHA384Digest returns the entry's SHA-384 checksum as an OCI digest
// value. The second return is false when the attribute is absent.
func (p *Params) SHA384Digest() (digest.Digest, bool) {
	if p.SHA384 == nil {
		return "", false
	}
	return digest.NewDigestFromBytes(digest.SHA384, p.SHA384), true
}

// SHA512Digest returns the entry's SHA-512 checksum as an OCI digest
// value. The second return is false when the attribute is absent.
//
// MD5, SHA-1 and RIPEMD-160 have no registered digest algorithm and stay
// available as raw bytes on Params.
func (p *Params) SHA512Digest() (digest.Digest, bool) {
	if p.SHA512 == nil {
		return "", false
	}
	return digest.NewDigestFromBytes(digest.SHA512, p.SHA512), true
}
