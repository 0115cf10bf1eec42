package pb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Hand-rolled protobuf wire codec for the schema subset in hub.go. Field
// numbers follow the hub's .proto definitions; unknown fields are skipped on
// decode and never produced on encode.

// Codec plugs the wire functions into grpc. Name reports "proto" so the
// content subtype on the wire stays standard.
type Codec struct{}

func (Codec) Name() string { return "proto" }

// Marshal encodes any of the request/message types the client sends
func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case *FidRequest:
		return appendFidRequest(nil, m), nil
	case *LinksByFidRequest:
		return appendLinksByFidRequest(nil, m), nil
	case *LinksByTargetRequest:
		return appendLinksByTargetRequest(nil, m), nil
	case *SubscribeRequest:
		return appendSubscribeRequest(nil, m), nil
	case *Message:
		return AppendMessage(nil, m), nil
	default:
		return nil, fmt.Errorf("pb: cannot marshal %T", v)
	}
}

// Unmarshal decodes any of the response types the client receives
func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case *MessagesResponse:
		return parseMessagesResponse(data, m)
	case *OnChainEventResponse:
		return parseOnChainEventResponse(data, m)
	case *Message:
		return parseMessage(data, m)
	case *HubEvent:
		return parseHubEvent(data, m)
	default:
		return fmt.Errorf("pb: cannot unmarshal %T", v)
	}
}

//
// encoders
//

func appendFidRequest(b []byte, m *FidRequest) []byte {
	if m.Fid != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, m.Fid)
	}
	if m.PageSize != nil {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*m.PageSize))
	}
	if len(m.PageToken) > 0 {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, m.PageToken)
	}
	if m.Reverse != nil {
		b = protowire.AppendTag(b, 4, protowire.VarintType)
		b = protowire.AppendVarint(b, boolVarint(*m.Reverse))
	}
	return b
}

func appendLinksByFidRequest(b []byte, m *LinksByFidRequest) []byte {
	if m.Fid != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, m.Fid)
	}
	if m.LinkType != nil {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, *m.LinkType)
	}
	if m.PageSize != nil {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*m.PageSize))
	}
	if len(m.PageToken) > 0 {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, m.PageToken)
	}
	if m.Reverse != nil {
		b = protowire.AppendTag(b, 5, protowire.VarintType)
		b = protowire.AppendVarint(b, boolVarint(*m.Reverse))
	}
	return b
}

func appendLinksByTargetRequest(b []byte, m *LinksByTargetRequest) []byte {
	if m.TargetFid != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, m.TargetFid)
	}
	if m.LinkType != nil {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, *m.LinkType)
	}
	if m.PageSize != nil {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*m.PageSize))
	}
	if len(m.PageToken) > 0 {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, m.PageToken)
	}
	if m.Reverse != nil {
		b = protowire.AppendTag(b, 5, protowire.VarintType)
		b = protowire.AppendVarint(b, boolVarint(*m.Reverse))
	}
	return b
}

func appendSubscribeRequest(b []byte, m *SubscribeRequest) []byte {
	for _, t := range m.EventTypes {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(t))
	}
	if m.FromId != nil {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, *m.FromId)
	}
	return b
}

// AppendMessage encodes a full message envelope
func AppendMessage(b []byte, m *Message) []byte {
	if m.Data != nil {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, appendMessageData(nil, m.Data))
	}
	if len(m.Hash) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Hash)
	}
	if m.HashScheme != 0 {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.HashScheme))
	}
	if len(m.Signature) > 0 {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Signature)
	}
	if m.SignatureScheme != 0 {
		b = protowire.AppendTag(b, 5, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.SignatureScheme))
	}
	if len(m.Signer) > 0 {
		b = protowire.AppendTag(b, 6, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Signer)
	}
	return b
}

func appendMessageData(b []byte, d *MessageData) []byte {
	if d.Type != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(d.Type))
	}
	if d.Fid != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, d.Fid)
	}
	if d.Timestamp != 0 {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(d.Timestamp))
	}
	if d.CastAddBody != nil {
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendBytes(b, appendCastAddBody(nil, d.CastAddBody))
	}
	if d.UserDataBody != nil {
		b = protowire.AppendTag(b, 12, protowire.BytesType)
		b = protowire.AppendBytes(b, appendUserDataBody(nil, d.UserDataBody))
	}
	if d.LinkBody != nil {
		b = protowire.AppendTag(b, 14, protowire.BytesType)
		b = protowire.AppendBytes(b, appendLinkBody(nil, d.LinkBody))
	}
	return b
}

func appendUserDataBody(b []byte, u *UserDataBody) []byte {
	if u.Type != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(u.Type))
	}
	if u.Value != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, u.Value)
	}
	return b
}

func appendLinkBody(b []byte, l *LinkBody) []byte {
	if l.Type != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, l.Type)
	}
	if l.DisplayTimestamp != nil {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*l.DisplayTimestamp))
	}
	if l.TargetFid != 0 {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, l.TargetFid)
	}
	return b
}

func appendCastAddBody(b []byte, c *CastAddBody) []byte {
	for _, m := range c.Mentions {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, m)
	}
	if c.ParentCastId != nil {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, appendCastId(nil, c.ParentCastId))
	}
	if c.Text != "" {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendString(b, c.Text)
	}
	for _, p := range c.MentionsPositions {
		b = protowire.AppendTag(b, 5, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(p))
	}
	return b
}

func appendCastId(b []byte, c *CastId) []byte {
	if c.Fid != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, c.Fid)
	}
	if len(c.Hash) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, c.Hash)
	}
	return b
}

func boolVarint(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

//
// decoders
//

// fieldFunc handles one decoded field; bytes payloads arrive as val slices
type fieldFunc func(num protowire.Number, typ protowire.Type, varint uint64, bytes []byte) error

// walkFields drives a protobuf wire scan, dispatching each field to fn and
// skipping everything fn does not recognize
func walkFields(data []byte, fn fieldFunc) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			if err := fn(num, typ, v, nil); err != nil {
				return err
			}
			data = data[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			if err := fn(num, typ, 0, v); err != nil {
				return err
			}
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

func parseMessagesResponse(data []byte, out *MessagesResponse) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 1:
			var m Message
			if err := parseMessage(b, &m); err != nil {
				return err
			}
			out.Messages = append(out.Messages, &m)
		case 2:
			out.NextPageToken = append([]byte(nil), b...)
		}
		return nil
	})
}

func parseOnChainEventResponse(data []byte, out *OnChainEventResponse) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 1:
			var ev OnChainEvent
			if err := parseOnChainEvent(b, &ev); err != nil {
				return err
			}
			out.Events = append(out.Events, &ev)
		case 2:
			out.NextPageToken = append([]byte(nil), b...)
		}
		return nil
	})
}

// ParseMessage decodes a raw message envelope, as posted by clients
func ParseMessage(data []byte) (*Message, error) {
	var m Message
	if err := parseMessage(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func parseMessage(data []byte, out *Message) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 1:
			var d MessageData
			if err := parseMessageData(b, &d); err != nil {
				return err
			}
			out.Data = &d
		case 2:
			out.Hash = append([]byte(nil), b...)
		case 3:
			out.HashScheme = uint32(v)
		case 4:
			out.Signature = append([]byte(nil), b...)
		case 5:
			out.SignatureScheme = uint32(v)
		case 6:
			out.Signer = append([]byte(nil), b...)
		}
		return nil
	})
}

func parseMessageData(data []byte, out *MessageData) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 1:
			out.Type = MessageType(v)
		case 2:
			out.Fid = v
		case 3:
			out.Timestamp = uint32(v)
		case 5:
			var c CastAddBody
			if err := parseCastAddBody(b, &c); err != nil {
				return err
			}
			out.CastAddBody = &c
		case 12:
			var u UserDataBody
			if err := parseUserDataBody(b, &u); err != nil {
				return err
			}
			out.UserDataBody = &u
		case 14:
			var l LinkBody
			if err := parseLinkBody(b, &l); err != nil {
				return err
			}
			out.LinkBody = &l
		}
		return nil
	})
}

func parseUserDataBody(data []byte, out *UserDataBody) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 1:
			out.Type = UserDataType(v)
		case 2:
			out.Value = string(b)
		}
		return nil
	})
}

func parseLinkBody(data []byte, out *LinkBody) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 1:
			out.Type = string(b)
		case 2:
			ts := uint32(v)
			out.DisplayTimestamp = &ts
		case 3:
			out.TargetFid = v
		}
		return nil
	})
}

func parseCastAddBody(data []byte, out *CastAddBody) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 2:
			out.Mentions = append(out.Mentions, v)
		case 3:
			var c CastId
			if err := parseCastId(b, &c); err != nil {
				return err
			}
			out.ParentCastId = &c
		case 4:
			out.Text = string(b)
		case 5:
			out.MentionsPositions = append(out.MentionsPositions, uint32(v))
		}
		return nil
	})
}

func parseCastId(data []byte, out *CastId) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 1:
			out.Fid = v
		case 2:
			out.Hash = append([]byte(nil), b...)
		}
		return nil
	})
}

func parseHubEvent(data []byte, out *HubEvent) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 1:
			out.Type = HubEventType(v)
		case 2:
			out.Id = v
		case 3:
			var body MergeMessageBody
			if err := parseMergeMessageBody(b, &body); err != nil {
				return err
			}
			out.MergeMessageBody = &body
		case 7:
			var body MergeOnChainEventBody
			if err := parseMergeOnChainEventBody(b, &body); err != nil {
				return err
			}
			out.MergeOnChainEventBody = &body
		}
		return nil
	})
}

func parseMergeMessageBody(data []byte, out *MergeMessageBody) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 1:
			var m Message
			if err := parseMessage(b, &m); err != nil {
				return err
			}
			out.Message = &m
		case 2:
			var m Message
			if err := parseMessage(b, &m); err != nil {
				return err
			}
			out.DeletedMessages = append(out.DeletedMessages, &m)
		}
		return nil
	})
}

func parseMergeOnChainEventBody(data []byte, out *MergeOnChainEventBody) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		if num == 1 {
			var ev OnChainEvent
			if err := parseOnChainEvent(b, &ev); err != nil {
				return err
			}
			out.OnChainEvent = &ev
		}
		return nil
	})
}

func parseOnChainEvent(data []byte, out *OnChainEvent) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 1:
			out.Type = OnChainEventType(v)
		case 2:
			out.ChainId = uint32(v)
		case 3:
			out.BlockNumber = uint32(v)
		case 5:
			out.BlockTimestamp = v
		case 6:
			out.TransactionHash = append([]byte(nil), b...)
		case 7:
			out.LogIndex = uint32(v)
		case 8:
			out.Fid = v
		case 9:
			var body SignerEventBody
			if err := parseSignerEventBody(b, &body); err != nil {
				return err
			}
			out.SignerEventBody = &body
		}
		return nil
	})
}

func parseSignerEventBody(data []byte, out *SignerEventBody) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, v uint64, b []byte) error {
		switch num {
		case 1:
			out.Key = append([]byte(nil), b...)
		case 2:
			out.KeyType = uint32(v)
		case 3:
			out.EventType = SignerEventType(v)
		case 4:
			out.Metadata = append([]byte(nil), b...)
		}
		return nil
	})
}
