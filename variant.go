package ebds

// DecodeReply picks the concrete reply type for raw wire bytes and decodes
// into it. Only Omnibus, Extended and FirmwareDownload replies carry enough
// information to identify themselves; aux replies echo nothing usable, so
// they go through DecodeReplyForAux instead.
func DecodeReply(b []byte) (Reply, error) {
	if len(b) < MIN_MESSAGE || len(b) > MAX_MESSAGE {
		return nil, LengthErr{Got: len(b)}
	}

	switch t := NewControl(b[ctrlIndex]).MessageType(); t {
	case OmnibusReplyMsg:
		return decodeReply(NewOmnibusReply(), b)
	case FirmwareDownloadMsg:
		return decodeFirmwareReply(b)
	case ExtendedMsg:
		return decodeExtendedReply(b)
	default:
		return nil, ReplyClassErr(t)
	}
}

// FirmwareDownload replies share one message type; their lengths differ,
// so the length picks the shape.
func decodeFirmwareReply(b []byte) (Reply, error) {
	switch len(b) {
	case baudChangeReplyLen:
		return decodeReply(NewBaudRateChangeReply(), b)
	case startDownloadReplyLen:
		return decodeReply(NewStartDownloadReply(), b)
	case flashDownloadReply7bitLen:
		return decodeReply(NewFlashDownloadReply7bit(), b)
	case flashDownloadReply8bitLen:
		return decodeReply(NewFlashDownloadReply8bit(), b)
	default:
		return nil, FirmwareLenErr(len(b))
	}
}

func decodeExtendedReply(b []byte) (Reply, error) {
	sub := ExtendedType(b[extSubtypeIndex])
	switch sub {
	case ClearAuditDataExt:
		if len(b) < clearAuditDataRequestAckLen {
			return nil, LengthErr{
				Got:  len(b),
				Want: clearAuditDataRequestAckLen,
			}
		}
		// The ack and the results reply are the same shape; byte 10
		// tells them apart.
		switch b[auditResultIndex] {
		case 0x00, 0x01:
			return decodeReply(NewClearAuditDataRequestAck(), b)
		case 0x10, 0x11:
			return decodeReply(NewClearAuditDataRequestResults(), b)
		default:
			return nil, AuditReplyErr(b[auditResultIndex])
		}
	case NoteSpecificationExt:
		return decodeReply(NewExtendedNoteReply(), b)
	case SetNoteInhibitsExt:
		return decodeReply(NewExtendedNoteInhibitsReplyAlt(), b)
	case SetEscrowTimeoutExt:
		return decodeReply(NewSetEscrowTimeoutReply(), b)
	case QueryValueTableExt:
		return decodeReply(NewQueryValueTableReply(), b)
	case NoteRetrievedExt:
		if len(b) < noteRetrievedReplyLen {
			return nil, LengthErr{Got: len(b), Want: noteRetrievedReplyLen}
		}
		// Solicited replies acknowledge with 0x00/0x01; the unsolicited
		// retrieval event carries 0x7f.
		switch b[retrievedIndex] {
		case 0x00, 0x01:
			return decodeReply(NewNoteRetrievedReply(), b)
		case noteRetrievedEvent:
			return decodeReply(NewNoteRetrievedEvent(), b)
		default:
			return nil, AckNakErr(b[retrievedIndex])
		}
	case AdvancedBookmarkExt:
		return decodeReply(NewAdvancedBookmarkModeReply(), b)
	default:
		return nil, SubtypeErr(sub)
	}
}

// DecodeReplyForAux decodes an aux query reply. Aux replies do not echo
// the command byte, so the caller supplies the command it sent as the
// hint that picks the reply type.
func DecodeReplyForAux(b []byte, sent AuxType) (Reply, error) {
	if len(b) < MIN_MESSAGE || len(b) > MAX_MESSAGE {
		return nil, LengthErr{Got: len(b)}
	}
	if t := NewControl(b[ctrlIndex]).MessageType(); t != AuxCommandMsg {
		return nil, TypeErr{Got: t, Want: AuxCommandMsg}
	}

	switch sent {
	case QuerySoftwareCrc:
		return decodeReply(NewQuerySoftwareCrcReply(), b)
	case QueryBootPartNumber:
		return decodeReply(NewQueryBootPartNumberReply(), b)
	case QueryApplicationPartNumber:
		return decodeReply(NewQueryApplicationPartNumberReply(), b)
	case QueryVariantName:
		return decodeReply(NewQueryVariantNameReply(), b)
	case QueryVariantPartNumber:
		return decodeReply(NewQueryVariantPartNumberReply(), b)
	case QueryDeviceCapabilities:
		return decodeReply(NewQueryDeviceCapabilitiesReply(), b)
	case QueryApplicationId:
		return decodeReply(NewQueryApplicationIdReply(), b)
	case QueryVariantId:
		return decodeReply(NewQueryVariantIdReply(), b)
	default:
		return nil, AuxReplyErr(sent)
	}
}

// DecodeCommand picks the concrete command type for raw wire bytes. It is
// the device-side counterpart of DecodeReply, useful for traffic capture
// and acceptor emulation.
func DecodeCommand(b []byte) (Command, error) {
	if len(b) < MIN_MESSAGE || len(b) > MAX_MESSAGE {
		return nil, LengthErr{Got: len(b)}
	}

	switch t := NewControl(b[ctrlIndex]).MessageType(); t {
	case OmnibusCommandMsg:
		return decodeCommand(NewOmnibusCommand(), b)
	case AuxCommandMsg:
		return decodeAuxCommand(b)
	case ExtendedMsg:
		return decodeExtendedCommand(b)
	default:
		return nil, CommandClassErr(t)
	}
}

func decodeAuxCommand(b []byte) (Command, error) {
	if len(b) < auxCommandLen {
		return nil, LengthErr{Got: len(b), Want: auxCommandLen}
	}

	sub := AuxType(b[auxTypeIndex])
	switch sub {
	case QueryBootPartNumber:
		return decodeCommand(NewQueryBootPartNumberCommand(), b)
	case QueryApplicationPartNumber:
		return decodeCommand(NewQueryApplicationPartNumberCommand(), b)
	case QueryVariantPartNumber:
		return decodeCommand(NewQueryVariantPartNumberCommand(), b)
	case QueryVariantName:
		return decodeCommand(NewQueryVariantNameCommand(), b)
	case QueryDeviceCapabilities:
		return decodeCommand(NewQueryDeviceCapabilitiesCommand(), b)
	case SoftResetCmd:
		return decodeCommand(NewSoftReset(), b)
	default:
		return nil, AuxCommandErr(sub)
	}
}

// Shortest decodable Extended command: envelope plus subtype.
const minExtendedCommandLen = 8

func decodeExtendedCommand(b []byte) (Command, error) {
	if len(b) < minExtendedCommandLen {
		return nil, LengthErr{Got: len(b), Want: minExtendedCommandLen}
	}

	sub := ExtendedType(b[extSubtypeIndex])
	switch sub {
	case QueryValueTableExt:
		return decodeCommand(NewQueryValueTableCommand(), b)
	case NoteSpecificationExt:
		return decodeCommand(NewQueryExtendedNoteSpecification(), b)
	case SetNoteInhibitsExt:
		// The CFSC table carries 8 enable bytes, the SC table 19.
		if len(b)-setExtendedNoteInhibitsBase <= cfscEnableLen {
			return decodeCommand(NewSetExtendedNoteInhibitsCFSC(), b)
		}
		return decodeCommand(NewSetExtendedNoteInhibitsSC(), b)
	default:
		return nil, SubtypeErr(sub)
	}
}

func decodeReply(r Reply, b []byte) (Reply, error) {
	if err := r.FromBuf(b); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeCommand(c Command, b []byte) (Command, error) {
	if err := c.FromBuf(b); err != nil {
		return nil, err
	}
	return c, nil
}
