package vtf

// VTF 7.x on-disk layout. The 63-byte base header is shared by every
// version; 7.2 appends the depth field and 7.3+ appends the resource
// dictionary. The header is padded to a 16-byte boundary.

var signature = [4]byte{'V', 'T', 'F', 0}

// headerBase is the version-independent header prefix, written with
// encoding/binary in little-endian order (63 bytes).
type headerBase struct {
	Signature     [4]byte
	Major         uint32
	Minor         uint32
	HeaderSize    uint32
	Width         uint16
	Height        uint16
	Flags         uint32
	Frames        uint16
	FirstFrame    uint16
	Padding0      [4]byte
	Reflectivity  [3]float32
	Padding1      [4]byte
	BumpScale     float32
	HighResFormat int32
	MipCount      uint8
	LowResFormat  int32
	LowResWidth   uint8
	LowResHeight  uint8
}

// resourceEntry is one 7.3+ resource dictionary entry.
type resourceEntry struct {
	Tag    [3]byte
	Flags  uint8
	Offset uint32
}

var (
	tagLowRes  = [3]byte{0x01, 0x00, 0x00}
	tagHighRes = [3]byte{0x30, 0x00, 0x00}
)

const (
	headerBaseSize     = 63
	resourceEntrySize  = 8
	headerAlign        = 16
)

// headerSize returns the padded header size for a container of the
// given minor version carrying n resource entries.
func headerSize(minor, n int) int {
	size := headerBaseSize
	if minor >= 2 {
		size += 2 // depth
	}
	if minor >= 3 {
		size += 3 + 4 + 8 // padding, resource count, padding
		size += n * resourceEntrySize
	}
	if rem := size % headerAlign; rem != 0 {
		size += headerAlign - rem
	}
	return size
}
