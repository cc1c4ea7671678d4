package ebds

const (
	MIN_MESSAGE = 5
	MAX_MESSAGE = 255

	// Envelope overhead: STX + LEN + CTRL + ETX + checksum.
	METADATA = 5
)

// Total message lengths in bytes, envelope included.
const (
	omnibusCommandLen = 8
	omnibusReplyLen   = 11

	auxCommandLen = 8
	auxReplyLen   = 11

	baudChangeRequestLen = 6
	baudChangeReplyLen   = 6

	startDownloadCommandLen = 8
	startDownloadReplyLen   = 11

	flashDataPacket   = 32
	flashDataPacket64 = 64

	flashDownloadMessage7bitLen   = 73
	flashDownloadReply7bitLen     = 9
	flashDownloadMessage8bit32Len = 39
	flashDownloadMessage8bit64Len = 71
	flashDownloadReply8bitLen     = 7

	queryExtendedNoteSpecificationLen = 10
	extendedNoteReplyLen              = 30

	setExtendedNoteInhibitsBase  = 9
	cfscEnableLen                = 8
	scEnableLen                  = 19
	extendedNoteInhibitsReplyLen = 12
	setExtendedNoteInhibitsCFSC  = setExtendedNoteInhibitsBase + cfscEnableLen
	setExtendedNoteInhibitsSC    = setExtendedNoteInhibitsBase + scEnableLen

	setEscrowTimeoutCommandLen = 11
	setEscrowTimeoutReplyLen   = 12

	queryValueTableCommandLen = 9
	queryValueTableReplyLen   = 82

	noteRetrievedCommandLen = 10
	noteRetrievedReplyLen   = 13
	noteRetrievedEventLen   = 13

	advancedBookmarkModeCommandLen = 10
	advancedBookmarkModeReplyLen   = 13

	clearAuditDataRequestLen        = 9
	clearAuditDataRequestAckLen     = 13
	clearAuditDataRequestResultsLen = 13

	querySoftwareCrcReplyLen        = 11
	queryBootPartNumberReplyLen     = 14
	queryAppPartNumberReplyLen      = 14
	queryVariantPartNumberReplyLen  = 14
	queryApplicationIdReplyLen      = 14
	queryVariantIdReplyLen          = 14
	queryVariantNameReplyLen        = 37
	queryDeviceCapabilitiesReplyLen = 11

	softResetLen = 8
)
