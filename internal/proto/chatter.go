package proto

import "github.com/aliciago/server/internal/net/packet"

// ChatterCommand is the messenger command id. The messenger frame is
// [length u16][id u16][payload], all XORed with MessengerXorKey.
type ChatterCommand uint16

const (
	ChatCmdLogin          ChatterCommand = 0x1
	ChatCmdLoginAckOK     ChatterCommand = 0x2
	ChatCmdLoginAckCancel ChatterCommand = 0x3
)

// ChatCmdLoginCommand is the serverbound messenger login, presenting the
// OTP issued by the lobby.
type ChatCmdLoginCommand struct {
	Val0 uint32
	Name string
	Code uint32
	Val1 uint32
}

func (v *ChatCmdLoginCommand) Read(r *packet.Reader) {
	v.Val0 = r.ReadUint32()
	v.Name = r.ReadString()
	v.Code = r.ReadUint32()
	v.Val1 = r.ReadUint32()
}

func (v ChatCmdLoginCommand) Write(w *packet.Writer) {
	w.WriteUint32(v.Val0)
	w.WriteString(v.Name)
	w.WriteUint32(v.Code)
	w.WriteUint32(v.Val1)
}

// ChatterGroup is a friends-list category.
type ChatterGroup struct {
	UID  uint32
	Name string
}

// ChatterFriendStatus is the presence of a friend entry.
type ChatterFriendStatus uint8

const (
	ChatterFriendOffline ChatterFriendStatus = 1
	ChatterFriendOnline  ChatterFriendStatus = 2
)

// ChatterFriend is a friends-list entry.
type ChatterFriend struct {
	UID         uint32
	CategoryUID uint32
	Name        string
	Status      ChatterFriendStatus
	Member5     uint8
	RoomUID     uint32
	RanchUID    uint32
}

// ChatCmdLoginAckOKCommand acknowledges the messenger login with the
// group and friend roster.
type ChatCmdLoginAckOKCommand struct {
	Member1 uint32

	MailAlarm struct {
		MailUID uint32
		HasMail bool
	}

	Groups  []ChatterGroup
	Friends []ChatterFriend
}

func (v ChatCmdLoginAckOKCommand) Write(w *packet.Writer) {
	w.WriteUint32(v.Member1)

	w.WriteUint32(v.MailAlarm.MailUID)
	w.WriteBool(v.MailAlarm.HasMail)

	w.WriteUint8(uint8(len(v.Groups)))
	for _, group := range v.Groups {
		w.WriteUint32(group.UID)
		w.WriteString(group.Name)
	}

	w.WriteUint8(uint8(len(v.Friends)))
	for _, friend := range v.Friends {
		w.WriteUint32(friend.UID)
		w.WriteUint32(friend.CategoryUID)
		w.WriteString(friend.Name)
		w.WriteUint8(uint8(friend.Status))
		w.WriteUint8(friend.Member5)
		w.WriteUint32(friend.RoomUID)
		w.WriteUint32(friend.RanchUID)
	}
}

func (v *ChatCmdLoginAckOKCommand) Read(r *packet.Reader) {
	v.Member1 = r.ReadUint32()

	v.MailAlarm.MailUID = r.ReadUint32()
	v.MailAlarm.HasMail = r.ReadBool()

	groupCount := r.ReadUint8()
	v.Groups = make([]ChatterGroup, groupCount)
	for i := range v.Groups {
		v.Groups[i].UID = r.ReadUint32()
		v.Groups[i].Name = r.ReadString()
	}

	friendCount := r.ReadUint8()
	v.Friends = make([]ChatterFriend, friendCount)
	for i := range v.Friends {
		v.Friends[i].UID = r.ReadUint32()
		v.Friends[i].CategoryUID = r.ReadUint32()
		v.Friends[i].Name = r.ReadString()
		v.Friends[i].Status = ChatterFriendStatus(r.ReadUint8())
		v.Friends[i].Member5 = r.ReadUint8()
		v.Friends[i].RoomUID = r.ReadUint32()
		v.Friends[i].RanchUID = r.ReadUint32()
	}
}

// ChatCmdLoginAckCancelCommand rejects the messenger login.
type ChatCmdLoginAckCancelCommand struct {
	Member1 uint32
}

func (v ChatCmdLoginAckCancelCommand) Write(w *packet.Writer) {
	w.WriteUint32(v.Member1)
}

func (v *ChatCmdLoginAckCancelCommand) Read(r *packet.Reader) {
	v.Member1 = r.ReadUint32()
}
