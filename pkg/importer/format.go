package importer

import (
	"github.com/Garik-/gpscore/pkg/bytebuffer"
	"github.com/Garik-/gpscore/pkg/gpif"
)

// Format is the Guitar Pro file generation.
type Format int

const (
	FormatUnknown Format = iota
	// FormatGP7 is a zip container with a GPIF document.
	FormatGP7
	// FormatGPX is the compressed BCFZ/BCFS container of Guitar Pro 6.
	FormatGPX
	// FormatGP3To5 is the binary format of Guitar Pro 3, 4 and 5.
	FormatGP3To5
)

func (f Format) String() string {
	switch f {
	case FormatGP7:
		return "GP7"
	case FormatGPX:
		return "GPX"
	case FormatGP3To5:
		return "GP3-5"
	}
	return "Unknown"
}

var (
	bcfzMagic = []byte("BCFZ")
	bcfsMagic = []byte("BCFS")
	gp3Magic  = []byte("FICHIER GUITAR PRO")
	gp3Magic2 = []byte("FICHIER GUITARE PRO")
)

// DetectFormat guesses the format from the leading bytes of data.
func DetectFormat(data []byte) Format {
	if gpif.IsContainer(data) {
		return FormatGP7
	}

	buf := bytebuffer.New(data)
	if buf.HasPrefix(bcfzMagic) || buf.HasPrefix(bcfsMagic) {
		return FormatGPX
	}

	// GP3-5 files open with a length prefixed version string
	if err := buf.Skip(1); err == nil && (buf.HasPrefix(gp3Magic) || buf.HasPrefix(gp3Magic2)) {
		return FormatGP3To5
	}
	return FormatUnknown
}
