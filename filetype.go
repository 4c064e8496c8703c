package mtree

import "fmt"

// FileType identifies the kind of filesystem entity an entry describes.
type FileType uint8

const (
	// TypeBlockDevice is a block special device.
	TypeBlockDevice FileType = iota
	// TypeCharDevice is a character special device.
	TypeCharDevice
	// TypeDirectory is a directory.
	TypeDirectory
	// TypeFifo is a named pipe.
	TypeFifo
	// TypeFile is a regular file.
	TypeFile
	// TypeSymlink is a symbolic link.
	TypeSymlink
	// TypeSocket is a unix domain socket.
	TypeSocket
)

// parseFileType decodes a type keyword value. The vocabulary is closed;
// anything else fails.
func parseFileType(b []byte) (FileType, error) {
	switch string(b) {
	case "block":
		return TypeBlockDevice, nil
	case "char":
		return TypeCharDevice, nil
	case "dir":
		return TypeDirectory, nil
	case "fifo":
		return TypeFifo, nil
	case "file":
		return TypeFile, nil
	case "link":
		return TypeSymlink, nil
	case "socket":
		return TypeSocket, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFileType, b)
}

// String returns the type's wire name.
func (t FileType) String() string {
	switch t {
	case TypeBlockDevice:
		return "block"
	case TypeCharDevice:
		return "char"
	case TypeDirectory:
		return "dir"
	case TypeFifo:
		return "fifo"
	case TypeFile:
		return "file"
	case TypeSymlink:
		return "link"
	case TypeSocket:
		return "socket"
	}
	return fmt.Sprintf("FileType(%d)", uint8(t))
}
