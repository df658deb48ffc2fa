package domain

// SizeRadix is the divisor between consecutive size units.
const SizeRadix = 1024

// SizeUnit is a position on the byte-size scale.
type SizeUnit int

// Units in ascending order.
const (
	SizeUnitByte SizeUnit = iota
	SizeUnitKilobyte
	SizeUnitMegabyte
	SizeUnitGigabyte
	SizeUnitTerabyte
)

// SizeUnits lists every unit from smallest to largest.
func SizeUnits() []SizeUnit {
	return []SizeUnit{
		SizeUnitByte,
		SizeUnitKilobyte,
		SizeUnitMegabyte,
		SizeUnitGigabyte,
		SizeUnitTerabyte,
	}
}

// MaxSizeUnit is the largest unit; BytesToSize never divides past it.
const MaxSizeUnit = SizeUnitTerabyte

// MessageKey returns the translation key of the unit label.
func (u SizeUnit) MessageKey() string {
	switch u {
	case SizeUnitByte:
		return MsgSizeB
	case SizeUnitKilobyte:
		return MsgSizeKB
	case SizeUnitMegabyte:
		return MsgSizeMB
	case SizeUnitGigabyte:
		return MsgSizeGB
	case SizeUnitTerabyte:
		return MsgSizeTB
	default:
		return ""
	}
}

// SizeMessageKeys returns the label keys of all units, in scale order.
func SizeMessageKeys() []string {
	units := SizeUnits()
	keys := make([]string, len(units))
	for i, u := range units {
		keys[i] = u.MessageKey()
	}
	return keys
}
