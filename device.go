package mtree

import (
	"bytes"
	"fmt"
)

// DeviceFormat identifies the operating-system convention used to encode
// a device's major and minor numbers.
type DeviceFormat uint8

const (
	DeviceFormatNative DeviceFormat = iota
	DeviceFormat386BSD
	DeviceFormat4BSD
	DeviceFormatBSDOS
	DeviceFormatFreeBSD
	DeviceFormatHPUX
	DeviceFormatISC
	DeviceFormatLinux
	DeviceFormatNetBSD
	DeviceFormatOSF1
	DeviceFormatSCO
	DeviceFormatSolaris
	DeviceFormatSunOS
	DeviceFormatSVR3
	DeviceFormatSVR4
	DeviceFormatUltrix

	// DeviceFormatUnrecognized marks a format name this package does not
	// know. Device formats are open-ended across operating systems, so an
	// unknown name is preserved (see Device.RawFormat) rather than
	// rejected.
	DeviceFormatUnrecognized
)

var deviceFormatNames = map[string]DeviceFormat{
	"native":  DeviceFormatNative,
	"386bsd":  DeviceFormat386BSD,
	"4bsd":    DeviceFormat4BSD,
	"bsdos":   DeviceFormatBSDOS,
	"freebsd": DeviceFormatFreeBSD,
	"hpux":    DeviceFormatHPUX,
	"isc":     DeviceFormatISC,
	"linux":   DeviceFormatLinux,
	"netbsd":  DeviceFormatNetBSD,
	"osf1":    DeviceFormatOSF1,
	"sco":     DeviceFormatSCO,
	"solaris": DeviceFormatSolaris,
	"sunos":   DeviceFormatSunOS,
	"svr3":    DeviceFormatSVR3,
	"svr4":    DeviceFormatSVR4,
	"ultrix":  DeviceFormatUltrix,
}

func parseDeviceFormat(b []byte) DeviceFormat {
	if f, ok := deviceFormatNames[string(b)]; ok {
		return f
	}
	return DeviceFormatUnrecognized
}

// String returns the format's wire name.
func (f DeviceFormat) String() string {
	for name, v := range deviceFormatNames {
		if v == f {
			return name
		}
	}
	return "unrecognized"
}

// Device is a reference to a unix device, as carried by the device and
// resdevice keywords. Major, minor and subunit keep their raw byte form:
// their numeric encoding depends on the originating operating system, so
// no interpretation is attempted.
type Device struct {
	// Format is the device number encoding convention.
	Format DeviceFormat

	// RawFormat holds the format name as it appeared on the wire. It is
	// set only when Format is DeviceFormatUnrecognized.
	RawFormat []byte

	// Major is the device major identifier.
	Major []byte

	// Minor is the device minor identifier.
	Minor []byte

	// Subunit is the device subunit identifier. Nil when the wire value
	// had only three fields.
	Subunit []byte
}

// parseDevice decodes a device keyword value of the form
// "format,major,minor[,subunit]".
func parseDevice(b []byte) (*Device, error) {
	fields := bytes.SplitN(b, []byte{','}, 4)
	if len(fields) < 1 || len(fields[0]) == 0 {
		return nil, fmt.Errorf("device %q: missing format", b)
	}
	if len(fields) < 2 || len(fields[1]) == 0 {
		return nil, fmt.Errorf("device %q: missing major", b)
	}
	if len(fields) < 3 || len(fields[2]) == 0 {
		return nil, fmt.Errorf("device %q: missing minor", b)
	}
	d := &Device{
		Format: parseDeviceFormat(fields[0]),
		Major:  fields[1],
		Minor:  fields[2],
	}
	if d.Format == DeviceFormatUnrecognized {
		d.RawFormat = fields[0]
	}
	if len(fields) == 4 {
		d.Subunit = fields[3]
	}
	return d, nil
}

// String renders the device in its wire form.
func (d *Device) String() string {
	format := d.Format.String()
	if d.Format == DeviceFormatUnrecognized && len(d.RawFormat) > 0 {
		format = string(d.RawFormat)
	}
	s := fmt.Sprintf("%s,%s,%s", format, d.Major, d.Minor)
	if d.Subunit != nil {
		s += fmt.Sprintf(",%s", d.Subunit)
	}
	return s
}
