// Package pb holds the subset of the Farcaster hub wire schema this gateway
// consumes. Shapes mirror the hub's protobuf definitions; only the fields the
// gateway reads are carried.
package pb

// HubEventType discriminates events on the hub subscription stream
type HubEventType int32

const (
	HubEventType_HUB_EVENT_TYPE_NONE                 HubEventType = 0
	HubEventType_HUB_EVENT_TYPE_MERGE_MESSAGE        HubEventType = 1
	HubEventType_HUB_EVENT_TYPE_PRUNE_MESSAGE        HubEventType = 2
	HubEventType_HUB_EVENT_TYPE_REVOKE_MESSAGE       HubEventType = 3
	HubEventType_HUB_EVENT_TYPE_MERGE_USERNAME_PROOF HubEventType = 6
	HubEventType_HUB_EVENT_TYPE_MERGE_ON_CHAIN_EVENT HubEventType = 9
)

// OnChainEventType discriminates on-chain events
type OnChainEventType int32

const (
	OnChainEventType_EVENT_TYPE_NONE            OnChainEventType = 0
	OnChainEventType_EVENT_TYPE_SIGNER          OnChainEventType = 1
	OnChainEventType_EVENT_TYPE_SIGNER_MIGRATED OnChainEventType = 2
	OnChainEventType_EVENT_TYPE_ID_REGISTER     OnChainEventType = 3
	OnChainEventType_EVENT_TYPE_STORAGE_RENT    OnChainEventType = 4
)

// SignerEventType discriminates signer key lifecycle transitions
type SignerEventType int32

const (
	SignerEventType_SIGNER_EVENT_TYPE_NONE        SignerEventType = 0
	SignerEventType_SIGNER_EVENT_TYPE_ADD         SignerEventType = 1
	SignerEventType_SIGNER_EVENT_TYPE_REMOVE      SignerEventType = 2
	SignerEventType_SIGNER_EVENT_TYPE_ADMIN_RESET SignerEventType = 3
)

// MessageType discriminates hub message payloads
type MessageType int32

const (
	MessageType_MESSAGE_TYPE_NONE          MessageType = 0
	MessageType_MESSAGE_TYPE_CAST_ADD      MessageType = 1
	MessageType_MESSAGE_TYPE_CAST_REMOVE   MessageType = 2
	MessageType_MESSAGE_TYPE_LINK_ADD      MessageType = 5
	MessageType_MESSAGE_TYPE_LINK_REMOVE   MessageType = 6
	MessageType_MESSAGE_TYPE_USER_DATA_ADD MessageType = 11
)

// UserDataType identifies which profile attribute a USER_DATA message carries
type UserDataType int32

const (
	UserDataType_USER_DATA_TYPE_NONE     UserDataType = 0
	UserDataType_USER_DATA_TYPE_PFP      UserDataType = 1
	UserDataType_USER_DATA_TYPE_DISPLAY  UserDataType = 2
	UserDataType_USER_DATA_TYPE_BIO      UserDataType = 3
	UserDataType_USER_DATA_TYPE_URL      UserDataType = 5
	UserDataType_USER_DATA_TYPE_USERNAME UserDataType = 6
)

// CastId addresses a single cast by author and hash
type CastId struct {
	Fid  uint64
	Hash []byte
}

// UserDataBody is the payload of a USER_DATA_ADD message
type UserDataBody struct {
	Type  UserDataType
	Value string
}

// LinkBody is the payload of a LINK_ADD or LINK_REMOVE message
type LinkBody struct {
	Type             string
	DisplayTimestamp *uint32
	TargetFid        uint64
}

// CastAddBody is carried for completeness; the gateway does not materialize casts
type CastAddBody struct {
	Text              string
	ParentCastId      *CastId
	Mentions          []uint64
	MentionsPositions []uint32
}

// MessageData is the signed inner payload of a hub message.
// Timestamp is seconds since the Farcaster epoch.
type MessageData struct {
	Type      MessageType
	Fid       uint64
	Timestamp uint32

	// at most one of the following is set, per Type
	CastAddBody  *CastAddBody
	UserDataBody *UserDataBody
	LinkBody     *LinkBody
}

// GetType returns the message type, nil-safe
func (m *MessageData) GetType() MessageType {
	if m == nil {
		return MessageType_MESSAGE_TYPE_NONE
	}
	return m.Type
}

// GetFid returns the author fid, nil-safe
func (m *MessageData) GetFid() uint64 {
	if m == nil {
		return 0
	}
	return m.Fid
}

// Message is a signed hub message envelope
type Message struct {
	Data            *MessageData
	Hash            []byte
	HashScheme      uint32
	Signature       []byte
	SignatureScheme uint32
	Signer          []byte
}

// GetData returns the inner message data, nil-safe
func (m *Message) GetData() *MessageData {
	if m == nil {
		return nil
	}
	return m.Data
}

// GetSigner returns the signing key, nil-safe
func (m *Message) GetSigner() []byte {
	if m == nil {
		return nil
	}
	return m.Signer
}

// SignerEventBody is the payload of an on-chain signer event
type SignerEventBody struct {
	Key       []byte
	KeyType   uint32
	EventType SignerEventType
	Metadata  []byte
}

// OnChainEvent is an event sourced from the key/id registry contracts
type OnChainEvent struct {
	Type            OnChainEventType
	ChainId         uint32
	BlockNumber     uint32
	BlockTimestamp  uint64
	TransactionHash []byte
	LogIndex        uint32
	Fid             uint64

	SignerEventBody *SignerEventBody
}

// GetType returns the on-chain event type, nil-safe
func (e *OnChainEvent) GetType() OnChainEventType {
	if e == nil {
		return OnChainEventType_EVENT_TYPE_NONE
	}
	return e.Type
}

// MergeMessageBody wraps a merged message on the event stream
type MergeMessageBody struct {
	Message         *Message
	DeletedMessages []*Message
}

// MergeOnChainEventBody wraps a merged on-chain event on the event stream
type MergeOnChainEventBody struct {
	OnChainEvent *OnChainEvent
}

// HubEvent is one entry on the hub subscription stream.
// Id is the hub's monotonic event sequence number.
type HubEvent struct {
	Type HubEventType
	Id   uint64

	// at most one of the following is set, per Type
	MergeMessageBody      *MergeMessageBody
	MergeOnChainEventBody *MergeOnChainEventBody
}

// GetType returns the event type, nil-safe
func (e *HubEvent) GetType() HubEventType {
	if e == nil {
		return HubEventType_HUB_EVENT_TYPE_NONE
	}
	return e.Type
}

// FidRequest addresses a user-scoped collection
type FidRequest struct {
	Fid       uint64
	PageSize  *uint32
	PageToken []byte
	Reverse   *bool
}

// LinksByFidRequest fetches link messages authored by Fid
type LinksByFidRequest struct {
	Fid       uint64
	LinkType  *string
	PageSize  *uint32
	PageToken []byte
	Reverse   *bool
}

// LinksByTargetRequest fetches link messages pointing at TargetFid
type LinksByTargetRequest struct {
	TargetFid uint64
	LinkType  *string
	PageSize  *uint32
	PageToken []byte
	Reverse   *bool
}

// MessagesResponse is a page of messages
type MessagesResponse struct {
	Messages      []*Message
	NextPageToken []byte
}

// OnChainEventResponse is a page of on-chain events
type OnChainEventResponse struct {
	Events        []*OnChainEvent
	NextPageToken []byte
}

// SubscribeRequest opens the event stream; zero value subscribes to everything
type SubscribeRequest struct {
	EventTypes []HubEventType
	FromId     *uint64
}
