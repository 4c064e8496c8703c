package mtree

import (
	"fmt"
	"strings"
	"time"
)

// Entry is one resolved filesystem record from a manifest.
//
// Entries are emitted in input order. An entry's Params is the /set
// defaults in effect at its line with the line's own keywords applied on
// top; the defaults themselves are never mutated by an entry line.
type Entry struct {
	// Path of the entity the record describes. Relative names are joined
	// onto the virtual current directory; full paths (names containing a
	// '/') are carried verbatim.
	Path string

	// Params holds every attribute present on the entry.
	Params Params
}

// Params is the attribute set of an entry or directive line.
//
// Every attribute is optional: pointer and slice fields are nil when the
// attribute was absent. Ignore, NoChange and Optional carry no value on
// the wire, so true simply records their presence.
//
// Attribute values set by a /set directive are shared between the entries
// resolved under it; treat emitted Params as read-only.
type Params struct {
	// Checksum is the file checksum computed by the default algorithm of
	// the cksum(1) utility.
	Checksum *uint64

	// Device is the device number, for block and char entries.
	Device *Device

	// Contents is the pathname of a file holding this file's contents.
	Contents []byte

	// Flags holds the file flags as symbolic names.
	Flags []byte

	// GID is the numeric group id of the file.
	GID *uint64

	// Gname is the symbolic group name, conventionally at most 32 bytes.
	Gname []byte

	// Ignore requests that any hierarchy below this entry be ignored.
	Ignore bool

	// Inode is the inode number.
	Inode *uint64

	// Link is the symbolic link target, for link entries.
	Link []byte

	// MD5 is the 16-byte MD5 digest of the file.
	MD5 []byte

	// Mode holds the file permissions.
	Mode *FileMode

	// NLink is the expected hard link count.
	NLink *uint64

	// NoChange requests existence checks only, ignoring attributes.
	NoChange bool

	// Optional marks the file as allowed to be missing from the hierarchy.
	Optional bool

	// ResidentDevice is the device containing the file; same format as
	// Device.
	ResidentDevice *Device

	// RMD160 is the 20-byte RIPEMD-160 digest of the file.
	RMD160 []byte

	// SHA1 is the 20-byte SHA-1 digest of the file.
	SHA1 []byte

	// SHA256 is the 32-byte SHA-256 digest of the file.
	SHA256 []byte

	// SHA384 is the 48-byte SHA-384 digest of the file.
	SHA384 []byte

	// SHA512 is the 64-byte SHA-512 digest of the file.
	SHA512 []byte

	// Size is the file size in bytes.
	Size *uint64

	// Time is the file's last modification time.
	Time *time.Time

	// Type is the kind of filesystem entity.
	Type *FileType

	// UID is the numeric owner id of the file.
	UID *uint64

	// Uname is the symbolic owner name, conventionally at most 32 bytes.
	Uname []byte
}

// merge copies every attribute present in delta over p. Attributes absent
// from delta are left alone; the three presence flags are ORed.
func (p *Params) merge(delta *Params) {
	if delta.Checksum != nil {
		p.Checksum = delta.Checksum
	}
	if delta.Device != nil {
		p.Device = delta.Device
	}
	if delta.Contents != nil {
		p.Contents = delta.Contents
	}
	if delta.Flags != nil {
		p.Flags = delta.Flags
	}
	if delta.GID != nil {
		p.GID = delta.GID
	}
	if delta.Gname != nil {
		p.Gname = delta.Gname
	}
	if delta.Ignore {
		p.Ignore = true
	}
	if delta.Inode != nil {
		p.Inode = delta.Inode
	}
	if delta.Link != nil {
		p.Link = delta.Link
	}
	if delta.MD5 != nil {
		p.MD5 = delta.MD5
	}
	if delta.Mode != nil {
		p.Mode = delta.Mode
	}
	if delta.NLink != nil {
		p.NLink = delta.NLink
	}
	if delta.NoChange {
		p.NoChange = true
	}
	if delta.Optional {
		p.Optional = true
	}
	if delta.ResidentDevice != nil {
		p.ResidentDevice = delta.ResidentDevice
	}
	if delta.RMD160 != nil {
		p.RMD160 = delta.RMD160
	}
	if delta.SHA1 != nil {
		p.SHA1 = delta.SHA1
	}
	if delta.SHA256 != nil {
		p.SHA256 = delta.SHA256
	}
	if delta.SHA384 != nil {
		p.SHA384 = delta.SHA384
	}
	if delta.SHA512 != nil {
		p.SHA512 = delta.SHA512
	}
	if delta.Size != nil {
		p.Size = delta.Size
	}
	if delta.Time != nil {
		p.Time = delta.Time
	}
	if delta.Type != nil {
		p.Type = delta.Type
	}
	if delta.UID != nil {
		p.UID = delta.UID
	}
	if delta.Uname != nil {
		p.Uname = delta.Uname
	}
}

// String renders the entry for human consumption.
func (e *Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mtree entry for %q\n", e.Path)
	b.WriteString(e.Params.String())
	return b.String()
}

// String renders every present attribute, one per line.
func (p *Params) String() string {
	var b strings.Builder
	if p.Checksum != nil {
		fmt.Fprintf(&b, "checksum: %d\n", *p.Checksum)
	}
	if p.Device != nil {
		fmt.Fprintf(&b, "device: %s\n", p.Device)
	}
	if p.Contents != nil {
		fmt.Fprintf(&b, "contents: %s\n", p.Contents)
	}
	if p.Flags != nil {
		fmt.Fprintf(&b, "flags: %s\n", p.Flags)
	}
	if p.GID != nil {
		fmt.Fprintf(&b, "gid: %d\n", *p.GID)
	}
	if p.Gname != nil {
		fmt.Fprintf(&b, "gname: %s\n", p.Gname)
	}
	if p.Ignore {
		b.WriteString("ignore\n")
	}
	if p.Inode != nil {
		fmt.Fprintf(&b, "inode: %d\n", *p.Inode)
	}
	if p.Link != nil {
		fmt.Fprintf(&b, "link: %s\n", p.Link)
	}
	if p.MD5 != nil {
		fmt.Fprintf(&b, "md5: %x\n", p.MD5)
	}
	if p.Mode != nil {
		fmt.Fprintf(&b, "mode: %s\n", p.Mode)
	}
	if p.NLink != nil {
		fmt.Fprintf(&b, "nlink: %d\n", *p.NLink)
	}
	if p.NoChange {
		b.WriteString("nochange\n")
	}
	if p.Optional {
		b.WriteString("optional\n")
	}
	if p.ResidentDevice != nil {
		fmt.Fprintf(&b, "resdevice: %s\n", p.ResidentDevice)
	}
	if p.RMD160 != nil {
		fmt.Fprintf(&b, "rmd160: %x\n", p.RMD160)
	}
	if p.SHA1 != nil {
		fmt.Fprintf(&b, "sha1: %x\n", p.SHA1)
	}
	if p.SHA256 != nil {
		fmt.Fprintf(&b, "sha256: %x\n", p.SHA256)
	}
	if p.SHA384 != nil {
		fmt.Fprintf(&b, "sha384: %x\n", p.SHA384)
	}
	if p.SHA512 != nil {
		fmt.Fprintf(&b, "sha512: %x\n", p.SHA512)
	}
	if p.Size != nil {
		fmt.Fprintf(&b, "size: %d\n", *p.Size)
	}
	if p.Time != nil {
		fmt.Fprintf(&b, "time: %s\n", p.Time.UTC().Format(time.RFC3339Nano))
	}
	if p.Type != nil {
		fmt.Fprintf(&b, "type: %s\n", p.Type)
	}
	if p.UID != nil {
		fmt.Fprintf(&b, "uid: %d\n", *p.UID)
	}
	if p.Uname != nil {
		fmt.Fprintf(&b, "uname: %s\n", p.Uname)
	}
	return b.String()
}
