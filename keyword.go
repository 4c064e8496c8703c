package mtree

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/meigma/mtree/internal/decode"
)

// applyKeyword decodes one whitespace-delimited keyword token (such as
// "size=8602", "ignore" or "sha256digest=...") and sets the matching
// attribute on p. The token is split at most once on '='; aliases such as
// md5digest collapse onto one attribute. Unknown keys and missing
// required values are hard errors naming the key and the token.
func applyKeyword(p *Params, tok []byte) error {
	key, val, hasVal := bytes.Cut(tok, []byte{'='})

	// need returns the keyword's value, failing when none follows the '='
	// (or there was no '=' at all).
	need := func() ([]byte, error) {
		if !hasVal || len(val) == 0 {
			return nil, fmt.Errorf("%w: keyword %q in token %q", ErrMissingValue, key, tok)
		}
		return val, nil
	}

	digest := func(name string, size int) ([]byte, error) {
		v, err := need()
		if err != nil {
			return nil, err
		}
		d, err := decode.Hex(v, size)
		if err != nil {
			return nil, fmt.Errorf("%s digest: %w", name, err)
		}
		return d, nil
	}

	counter := func(name string) (*uint64, error) {
		v, err := need()
		if err != nil {
			return nil, err
		}
		n, err := decode.Decimal[uint64](v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &n, nil
	}

	switch string(key) {
	case "cksum":
		n, err := counter("cksum")
		if err != nil {
			return err
		}
		p.Checksum = n
	case "device":
		v, err := need()
		if err != nil {
			return err
		}
		d, err := parseDevice(v)
		if err != nil {
			return err
		}
		p.Device = d
	case "contents":
		v, err := need()
		if err != nil {
			return err
		}
		p.Contents = v
	case "flags":
		v, err := need()
		if err != nil {
			return err
		}
		p.Flags = v
	case "gid":
		n, err := counter("gid")
		if err != nil {
			return err
		}
		p.GID = n
	case "gname":
		v, err := need()
		if err != nil {
			return err
		}
		p.Gname = v
	case "ignore":
		p.Ignore = true
	case "inode":
		n, err := counter("inode")
		if err != nil {
			return err
		}
		p.Inode = n
	case "link":
		v, err := need()
		if err != nil {
			return err
		}
		p.Link = v
	case "md5", "md5digest":
		d, err := digest("md5", 16)
		if err != nil {
			return err
		}
		p.MD5 = d
	case "mode":
		v, err := need()
		if err != nil {
			return err
		}
		m, err := parseFileMode(v)
		if err != nil {
			return err
		}
		p.Mode = &m
	case "nlink":
		n, err := counter("nlink")
		if err != nil {
			return err
		}
		p.NLink = n
	case "nochange":
		p.NoChange = true
	case "optional":
		p.Optional = true
	case "resdevice":
		v, err := need()
		if err != nil {
			return err
		}
		d, err := parseDevice(v)
		if err != nil {
			return err
		}
		p.ResidentDevice = d
	case "rmd160", "rmd160digest", "ripemd160digest":
		d, err := digest("rmd160", 20)
		if err != nil {
			return err
		}
		p.RMD160 = d
	case "sha1", "sha1digest":
		d, err := digest("sha1", 20)
		if err != nil {
			return err
		}
		p.SHA1 = d
	case "sha256", "sha256digest":
		d, err := digest("sha256", 32)
		if err != nil {
			return err
		}
		p.SHA256 = d
	case "sha384", "sha384digest":
		d, err := digest("sha384", 48)
		if err != nil {
			return err
		}
		p.SHA384 = d
	case "sha512", "sha512digest":
		d, err := digest("sha512", 64)
		if err != nil {
			return err
		}
		p.SHA512 = d
	case "size":
		n, err := counter("size")
		if err != nil {
			return err
		}
		p.Size = n
	case "time":
		v, err := need()
		if err != nil {
			return err
		}
		secs, nsecs, err := decode.Timestamp(v)
		if err != nil {
			return err
		}
		if secs > math.MaxInt64 {
			return fmt.Errorf("time %q: seconds out of range", v)
		}
		t := time.Unix(int64(secs), int64(nsecs))
		p.Time = &t
	case "type":
		v, err := need()
		if err != nil {
			return err
		}
		t, err := parseFileType(v)
		if err != nil {
			return err
		}
		p.Type = &t
	case "uid":
		n, err := counter("uid")
		if err != nil {
			return err
		}
		p.UID = n
	case "uname":
		v, err := need()
		if err != nil {
			return err
		}
		p.Uname = v
	default:
		return fmt.Errorf("%w %q in token %q", ErrUnknownKeyword, key, tok)
	}
	return nil
}
