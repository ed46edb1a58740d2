package director

import (
	"sync"

	"github.com/aliciago/server/internal/config"
	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/net/chatter"
	"github.com/aliciago/server/internal/net/packet"
	"github.com/aliciago/server/internal/proto"
	"github.com/aliciago/server/internal/system"
	"go.uber.org/zap"
)

// OnlineRoster reports the currently-online characters; the lobby
// director provides it.
type OnlineRoster interface {
	OnlineCharacterUids() []data.Uid
}

// MessengerDirector serves the friends list / presence protocol over the
// chatter framing.
type MessengerDirector struct {
	server       *chatter.Server
	dataDirector *DataDirector
	otp          *system.OtpSystem
	roster       OnlineRoster
	settings     config.ServiceConfig
	log          *zap.Logger

	mu      sync.Mutex
	clients map[uint64]data.Uid
}

func NewMessengerDirector(
	dataDirector *DataDirector,
	otp *system.OtpSystem,
	roster OnlineRoster,
	settings config.ServiceConfig,
	log *zap.Logger,
) *MessengerDirector {
	d := &MessengerDirector{
		dataDirector: dataDirector,
		otp:          otp,
		roster:       roster,
		settings:     settings,
		log:          log,
		clients:      make(map[uint64]data.Uid),
	}
	d.server = chatter.NewServer(chatter.Events{
		OnClientDisconnected: d.handleClientDisconnected,
	}, log)

	d.server.Register(proto.ChatCmdLogin, d.handleChatterLogin)

	return d
}

// Initialize hosts the messenger listener.
func (d *MessengerDirector) Initialize() error {
	return d.server.Host(d.settings.Listen.Addr())
}

// Terminate closes the messenger listener and its clients.
func (d *MessengerDirector) Terminate() {
	d.server.End()
}

// Tick does nothing; the messenger director is reactive.
func (d *MessengerDirector) Tick() {}

func (d *MessengerDirector) handleClientDisconnected(clientID uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.clients, clientID)
}

// handleChatterLogin authorizes the OTP the lobby issued for the
// character and answers with a single "Online Players" group listing the
// online characters.
func (d *MessengerDirector) handleChatterLogin(clientID uint64, r *packet.Reader) error {
	message := proto.ChatCmdLoginCommand{}
	message.Read(r)
	if err := r.Err(); err != nil {
		return err
	}

	characterUid := message.Val0
	if !d.otp.AuthorizeCode(characterUid, message.Code) {
		d.log.Info("messenger login rejected, bad code",
			zap.Uint32("character", characterUid))
		d.server.QueueCommand(clientID, proto.ChatCmdLoginAckCancel, proto.ChatCmdLoginAckCancelCommand{})
		return nil
	}

	d.mu.Lock()
	d.clients[clientID] = characterUid
	d.mu.Unlock()

	const onlineGroupUid = 1
	response := proto.ChatCmdLoginAckOKCommand{
		Groups: []proto.ChatterGroup{
			{UID: onlineGroupUid, Name: "Online Players"},
		},
	}

	for _, uid := range d.roster.OnlineCharacterUids() {
		if uid == characterUid {
			continue
		}
		record, ok := d.dataDirector.GetCharacter(uid)
		if !ok {
			continue
		}
		friend := proto.ChatterFriend{
			UID:         uid,
			CategoryUID: onlineGroupUid,
			Status:      proto.ChatterFriendOnline,
		}
		record.Immutable(func(character *data.Character) {
			friend.Name = character.Name.Get()
			friend.RanchUID = character.RanchUid.Get()
		})
		response.Friends = append(response.Friends, friend)
	}

	d.server.QueueCommand(clientID, proto.ChatCmdLoginAckOK, response)
	return nil
}
