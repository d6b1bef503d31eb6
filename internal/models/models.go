package models

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every caller contract violation.
var ErrInvalidArgument = errors.New("invalid argument")

// OpType is the kind of a timeline operation, numbered as the server numbers it.
type OpType int

const (
	OpEndOfOperation            OpType = 0
	OpUpdateProfile             OpType = 1
	OpNotifiedUpdateProfile     OpType = 2
	OpRegisterUserID            OpType = 3
	OpAddContact                OpType = 4
	OpNotifiedAddContact        OpType = 5
	OpBlockContact              OpType = 6
	OpUnblockContact            OpType = 7
	OpNotifiedRecommendContact  OpType = 8
	OpCreateGroup               OpType = 9
	OpUpdateGroup               OpType = 10
	OpNotifiedUpdateGroup       OpType = 11
	OpInviteIntoGroup           OpType = 12
	OpNotifiedInviteIntoGroup   OpType = 13
	OpLeaveGroup                OpType = 14
	OpNotifiedLeaveGroup        OpType = 15
	OpAcceptGroupInvitation     OpType = 16
	OpNotifiedAcceptGroupInvite OpType = 17
	OpKickoutFromGroup          OpType = 18
	OpNotifiedKickoutFromGroup  OpType = 19
	OpCreateRoom                OpType = 20
	OpInviteIntoRoom            OpType = 21
	OpNotifiedInviteIntoRoom    OpType = 22
	OpLeaveRoom                 OpType = 23
	OpNotifiedLeaveRoom         OpType = 24
	OpSendMessage               OpType = 25
	OpReceiveMessage            OpType = 26
	OpSendMessageReceipt        OpType = 27
	OpReceiveMessageReceipt     OpType = 28
	OpSendContentReceipt        OpType = 29
)

var opTypeNames = map[OpType]string{
	OpEndOfOperation:            "END_OF_OPERATION",
	OpUpdateProfile:             "UPDATE_PROFILE",
	OpNotifiedUpdateProfile:     "NOTIFIED_UPDATE_PROFILE",
	OpRegisterUserID:            "REGISTER_USERID",
	OpAddContact:                "ADD_CONTACT",
	OpNotifiedAddContact:        "NOTIFIED_ADD_CONTACT",
	OpBlockContact:              "BLOCK_CONTACT",
	OpUnblockContact:            "UNBLOCK_CONTACT",
	OpNotifiedRecommendContact:  "NOTIFIED_RECOMMEND_CONTACT",
	OpCreateGroup:               "CREATE_GROUP",
	OpUpdateGroup:               "UPDATE_GROUP",
	OpNotifiedUpdateGroup:       "NOTIFIED_UPDATE_GROUP",
	OpInviteIntoGroup:           "INVITE_INTO_GROUP",
	OpNotifiedInviteIntoGroup:   "NOTIFIED_INVITE_INTO_GROUP",
	OpLeaveGroup:                "LEAVE_GROUP",
	OpNotifiedLeaveGroup:        "NOTIFIED_LEAVE_GROUP",
	OpAcceptGroupInvitation:     "ACCEPT_GROUP_INVITATION",
	OpNotifiedAcceptGroupInvite: "NOTIFIED_ACCEPT_GROUP_INVITATION",
	OpKickoutFromGroup:          "KICKOUT_FROM_GROUP",
	OpNotifiedKickoutFromGroup:  "NOTIFIED_KICKOUT_FROM_GROUP",
	OpCreateRoom:                "CREATE_ROOM",
	OpInviteIntoRoom:            "INVITE_INTO_ROOM",
	OpNotifiedInviteIntoRoom:    "NOTIFIED_INVITE_INTO_ROOM",
	OpLeaveRoom:                 "LEAVE_ROOM",
	OpNotifiedLeaveRoom:         "NOTIFIED_LEAVE_ROOM",
	OpSendMessage:               "SEND_MESSAGE",
	OpReceiveMessage:            "RECEIVE_MESSAGE",
	OpSendMessageReceipt:        "SEND_MESSAGE_RECEIPT",
	OpReceiveMessageReceipt:     "RECEIVE_MESSAGE_RECEIPT",
	OpSendContentReceipt:        "SEND_CONTENT_RECEIPT",
}

func (t OpType) String() string {
	if name, ok := opTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("OpType(%d)", int(t))
}

// IsMessage reports whether operations of this type carry a chat message.
func (t OpType) IsMessage() bool {
	return t == OpSendMessage || t == OpReceiveMessage
}

// Operation is one event of the chat timeline.
// Revision is assigned by the server; values <= 0 are not assigned yet.
type Operation struct {
	Revision int64    `json:"revision"`
	Type     OpType   `json:"type"`
	Message  *Message `json:"message,omitempty"`
	Param1   string   `json:"param1,omitempty"`
	Param2   string   `json:"param2,omitempty"`
	Param3   string   `json:"param3,omitempty"`
}

type Message struct {
	ID          string `json:"id"`
	From        string `json:"from"`
	To          string `json:"to"`
	Text        string `json:"text,omitempty"`
	CreatedTime int64  `json:"createdTime"`
}

type Profile struct {
	DisplayName   string `json:"displayName"`
	PicturePath   string `json:"picturePath"`
	StatusMessage string `json:"statusMessage"`
}

// ContactRecord is a contact or a group as delivered by the roster sync.
type ContactRecord struct {
	Mid         string `json:"mid"`
	DisplayName string `json:"displayName"`
	PicturePath string `json:"picturePath"`
}

// ContactInfo is what a chat list needs to render one contact.
type ContactInfo struct {
	PicturePath string `json:"picturePath"`
	DisplayName string `json:"displayName"`
}
