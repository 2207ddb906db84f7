package section

// Message header bit layout.
//
// Normal header (bit 7 = 0):
//
//	bit 6    message type (0 = data, 1 = definition)
//	bit 5    developer data flag (definition messages only)
//	bit 4    reserved
//	bit 3..0 local message number (0..15)
//
// Compressed timestamp header (bit 7 = 1):
//
//	bit 6..5 local message number (0..3)
//	bit 4..0 time offset in seconds, applied to the running timestamp
const (
	compressedMask  = 0x80
	definitionMask  = 0x40
	developerMask   = 0x20
	localMesgMask   = 0x0F
	timeOffsetMask  = 0x1F
	compressedLocal = 0x03
)

// MessageType distinguishes the two record kinds of the stream.
type MessageType uint8

const (
	// MessageData is a data message populating a previously defined layout.
	MessageData MessageType = iota
	// MessageDefinition is a definition message declaring a layout.
	MessageDefinition
)

// MessageHeader is the decoded one-byte record header.
type MessageHeader struct {
	// Type tells whether a definition or data message body follows.
	Type MessageType
	// LocalMessageNumber keys the decoder's local definition table.
	LocalMessageNumber uint8
	// ContainsDeveloperData is set on definition messages that append
	// developer field definitions.
	ContainsDeveloperData bool
	// Compressed is set for compressed-timestamp headers; TimeOffset then
	// holds the 5-bit offset.
	Compressed bool
	// TimeOffset is the 5-bit time offset of a compressed header.
	TimeOffset uint8
}

// ParseMessageHeader decodes a record header byte.
func ParseMessageHeader(b uint8) MessageHeader {
	if b&compressedMask != 0 {
		return MessageHeader{
			Type:               MessageData,
			LocalMessageNumber: (b >> 5) & compressedLocal,
			Compressed:         true,
			TimeOffset:         b & timeOffsetMask,
		}
	}
	if b&definitionMask != 0 {
		return MessageHeader{
			Type:                  MessageDefinition,
			LocalMessageNumber:    b & localMesgMask,
			ContainsDeveloperData: b&developerMask != 0,
		}
	}

	return MessageHeader{
		Type:               MessageData,
		LocalMessageNumber: b & localMesgMask,
	}
}
