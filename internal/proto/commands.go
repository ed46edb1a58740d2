package proto

// Command ids form a closed enumeration; values are fixed by the client.
const (
	CmdLobbyLogin       Command = 0x7
	CmdLobbyLoginOK     Command = 0x8
	CmdLobbyLoginCancel Command = 0x9

	CmdLobbyRoomList   Command = 0x10
	CmdLobbyRoomListOK Command = 0x11

	CmdLobbyHeartbeat Command = 0x12

	CmdLobbyMakeRoom       Command = 0x13
	CmdLobbyMakeRoomOK     Command = 0x14
	CmdLobbyMakeRoomCancel Command = 0x15

	CmdLobbyEnterRoom       Command = 0x1c
	CmdLobbyEnterRoomOK     Command = 0x1d
	CmdLobbyEnterRoomCancel Command = 0x1e

	CmdLobbyEnterChannel       Command = 0x2b
	CmdLobbyEnterChannelOK     Command = 0x2c
	CmdLobbyEnterChannelCancel Command = 0x2d

	CmdRaceEnterRoom       Command = 0x30
	CmdRaceEnterRoomNotify Command = 0x31
	CmdRaceEnterRoomOK     Command = 0x32
	CmdRaceEnterRoomCancel Command = 0x33

	CmdRaceChat       Command = 0x52
	CmdRaceChatNotify Command = 0x53

	CmdRaceChangeRoomOptions       Command = 0x54
	CmdRaceChangeRoomOptionsNotify Command = 0x55

	CmdRaceReadyRace       Command = 0x58
	CmdRaceReadyRaceNotify Command = 0x59

	CmdRaceStartRace       Command = 0x5a
	CmdRaceStartRaceNotify Command = 0x5b
	CmdRaceStartRaceCancel Command = 0x5c

	CmdLobbyCreateNicknameNotify Command = 0x6b
	CmdLobbyCreateNickname       Command = 0x6c
	CmdLobbyCreateNicknameCancel Command = 0x6e

	CmdLobbyShowInventory       Command = 0x7e
	CmdLobbyShowInventoryOK     Command = 0x7f
	CmdLobbyShowInventoryCancel Command = 0x80

	CmdRanchWearEquipment       Command = 0x81
	CmdRanchWearEquipmentOK     Command = 0x82
	CmdRanchWearEquipmentCancel Command = 0x83

	CmdRanchRemoveEquipment       Command = 0x84
	CmdRanchRemoveEquipmentOK     Command = 0x85
	CmdRanchRemoveEquipmentCancel Command = 0x86

	CmdRanchHeartbeat Command = 0x9e

	CmdLobbyGoodsShopList       Command = 0xb2
	CmdLobbyGoodsShopListOK     Command = 0xb3
	CmdLobbyGoodsShopListCancel Command = 0xb4

	CmdRanchMissionEvent Command = 0xe0

	CmdLobbyAchievementCompleteList       Command = 0xe5
	CmdLobbyAchievementCompleteListOK     Command = 0xe6
	CmdLobbyAchievementCompleteListCancel Command = 0xe7

	CmdLobbyRequestPersonalInfo Command = 0xeb
	CmdLobbyPersonalInfo        Command = 0xec

	CmdLobbyEnterRanch       Command = 0xfc
	CmdLobbyEnterRanchOK     Command = 0xfd
	CmdLobbyEnterRanchCancel Command = 0xfe

	CmdLobbyEnterRandomRanch Command = 0x109

	CmdRanchEnterRanch       Command = 0x12b
	CmdRanchEnterRanchOK     Command = 0x12c
	CmdRanchEnterRanchCancel Command = 0x12d
	CmdRanchEnterRanchNotify Command = 0x12e

	CmdRanchLeaveRanch       Command = 0x12f
	CmdRanchLeaveRanchOK     Command = 0x130
	CmdRanchLeaveRanchNotify Command = 0x132

	CmdRanchChat       Command = 0x137
	CmdRanchChatNotify Command = 0x138

	CmdRanchSnapshot       Command = 0x139
	CmdRanchSnapshotNotify Command = 0x13a

	CmdRanchEnterBreedingMarket       Command = 0x13f
	CmdRanchEnterBreedingMarketOK     Command = 0x140
	CmdRanchEnterBreedingMarketCancel Command = 0x141

	CmdRanchSearchStallion       Command = 0x145
	CmdRanchSearchStallionOK     Command = 0x146
	CmdRanchSearchStallionCancel Command = 0x147

	CmdRanchUpdateEquipmentNotify Command = 0x14e

	CmdRanchTryBreeding       Command = 0x156
	CmdRanchTryBreedingOK     Command = 0x157
	CmdRanchTryBreedingCancel Command = 0x158

	CmdRanchAchievementUpdateProperty Command = 0x16b

	CmdLobbySetIntroduction       Command = 0x171
	CmdRanchSetIntroductionNotify Command = 0x174

	CmdLobbyGetMessengerInfo       Command = 0x186
	CmdLobbyGetMessengerInfoOK     Command = 0x187
	CmdLobbyGetMessengerInfoCancel Command = 0x188

	CmdRanchUpdateMountNickname       Command = 0x197
	CmdRanchUpdateMountNicknameOK     Command = 0x198
	CmdRanchUpdateMountNicknameCancel Command = 0x199

	CmdRanchUpdateBusyState       Command = 0x1a8
	CmdRanchUpdateBusyStateNotify Command = 0x1a9

	CmdRanchStuff   Command = 0x1af
	CmdRanchStuffOK Command = 0x1b0

	CmdRaceLoadingComplete       Command = 0x1b6
	CmdRaceLoadingCompleteNotify Command = 0x1b7

	CmdLobbyUpdateSystemContent       Command = 0x1bd
	CmdLobbyUpdateSystemContentNotify Command = 0x1c1

	CmdRanchCmdAction       Command = 0x1c9
	CmdRanchCmdActionNotify Command = 0x1ca

	CmdRanchUseItem       Command = 0x1e0
	CmdRanchUseItemOK     Command = 0x1e1
	CmdRanchUseItemCancel Command = 0x1e2

	CmdRanchUpdateMountInfoNotify Command = 0x1e7

	CmdRanchBreedingWishlist       Command = 0x1e8
	CmdRanchBreedingWishlistOK     Command = 0x1e9
	CmdRanchBreedingWishlistCancel Command = 0x1ea

	CmdRanchHousingBuild       Command = 0x25b
	CmdRanchHousingBuildOK     Command = 0x25c
	CmdRanchHousingBuildCancel Command = 0x25d
	CmdRanchHousingBuildNotify Command = 0x25e

	CmdRanchHousingRepair       Command = 0x262
	CmdRanchHousingRepairOK     Command = 0x263
	CmdRanchHousingRepairCancel Command = 0x264
	CmdRanchHousingRepairNotify Command = 0x265

	CmdRanchOpCmd   Command = 0x28e
	CmdRanchOpCmdOK Command = 0x28f

	CmdRanchRequestStorage       Command = 0x299
	CmdRanchRequestStorageOK     Command = 0x29a
	CmdRanchRequestStorageCancel Command = 0x29b

	CmdRanchGetItemFromStorage       Command = 0x29e
	CmdRanchGetItemFromStorageOK     Command = 0x29f
	CmdRanchGetItemFromStorageCancel Command = 0x2a0

	CmdLobbyInquiryTreecash       Command = 0x2b1
	CmdLobbyInquiryTreecashOK     Command = 0x2b2
	CmdLobbyInquiryTreecashCancel Command = 0x2b3

	CmdRanchCreateGuild       Command = 0x2be
	CmdRanchCreateGuildOK     Command = 0x2bf
	CmdRanchCreateGuildCancel Command = 0x2c0

	CmdRanchRequestGuildInfo       Command = 0x2e2
	CmdRanchRequestGuildInfoOK     Command = 0x2e3
	CmdRanchRequestGuildInfoCancel Command = 0x2e4

	CmdLobbyClientNotify Command = 0x309

	CmdLobbyRequestDailyQuestList       Command = 0x356
	CmdLobbyRequestDailyQuestListOK     Command = 0x357
	CmdLobbyRequestDailyQuestListCancel Command = 0x358

	CmdLobbyRequestLeagueInfo       Command = 0x376
	CmdLobbyRequestLeagueInfoOK     Command = 0x377
	CmdLobbyRequestLeagueInfoCancel Command = 0x378

	CmdRanchRequestLeagueTeamList       Command = 0x37c
	CmdRanchRequestLeagueTeamListOK     Command = 0x37d
	CmdRanchRequestLeagueTeamListCancel Command = 0x37e

	CmdRanchUpdatePet       Command = 0x392
	CmdRanchUpdatePetCancel Command = 0x439

	CmdRanchRequestPetBirth       Command = 0x39a
	CmdRanchRequestPetBirthOK     Command = 0x39b
	CmdRanchRequestPetBirthCancel Command = 0x39c
	CmdRanchPetBirthNotify        Command = 0x39d

	CmdRanchIncubateEgg       Command = 0x39f
	CmdRanchIncubateEggOK     Command = 0x3a0
	CmdRanchIncubateEggCancel Command = 0x3a1
	CmdRanchIncubateEggNotify Command = 0x3a2

	CmdLobbyRequestQuestList       Command = 0x3f8
	CmdLobbyRequestQuestListOK     Command = 0x3f9
	CmdLobbyRequestQuestListCancel Command = 0x3fa

	CmdLobbyRequestSpecialEventList   Command = 0x417
	CmdLobbyRequestSpecialEventListOK Command = 0x418

	CmdRanchRequestNpcDressList       Command = 0x44c
	CmdRanchRequestNpcDressListOK     Command = 0x44d
	CmdRanchRequestNpcDressListCancel Command = 0x44e

	CmdRanchKickRanch       Command = 0x45a
	CmdRanchKickRanchOK     Command = 0x45b
	CmdRanchKickRanchCancel Command = 0x45c
	CmdRanchKickRanchNotify Command = 0x45d

	CmdRaceUserRaceTimer   Command = 0x1024
	CmdRaceUserRaceTimerOK Command = 0x1025

	CmdRaceCountdown Command = 0x102d

	// CommandCount bounds the valid command id range.
	CommandCount Command = 0xFFFF
)

var commandNames = map[Command]string{
	CmdLobbyLogin:       "LobbyLogin",
	CmdLobbyLoginOK:     "LobbyLoginOK",
	CmdLobbyLoginCancel: "LobbyLoginCancel",

	CmdLobbyRoomList:   "LobbyRoomList",
	CmdLobbyRoomListOK: "LobbyRoomListOK",

	CmdLobbyHeartbeat: "LobbyHeartbeat",

	CmdLobbyMakeRoom:       "LobbyMakeRoom",
	CmdLobbyMakeRoomOK:     "LobbyMakeRoomOK",
	CmdLobbyMakeRoomCancel: "LobbyMakeRoomCancel",

	CmdLobbyEnterChannel:       "LobbyEnterChannel",
	CmdLobbyEnterChannelOK:     "LobbyEnterChannelOK",
	CmdLobbyEnterChannelCancel: "LobbyEnterChannelCancel",

	CmdLobbyCreateNicknameNotify: "LobbyCreateNicknameNotify",
	CmdLobbyCreateNickname:       "LobbyCreateNickname",
	CmdLobbyCreateNicknameCancel: "LobbyCreateNicknameCancel",

	CmdLobbyShowInventory:       "LobbyShowInventory",
	CmdLobbyShowInventoryOK:     "LobbyShowInventoryOK",
	CmdLobbyShowInventoryCancel: "LobbyShowInventoryCancel",

	CmdLobbyAchievementCompleteList:       "LobbyAchievementCompleteList",
	CmdLobbyAchievementCompleteListOK:     "LobbyAchievementCompleteListOK",
	CmdLobbyAchievementCompleteListCancel: "LobbyAchievementCompleteListCancel",

	CmdLobbyRequestDailyQuestList:       "LobbyRequestDailyQuestList",
	CmdLobbyRequestDailyQuestListOK:     "LobbyRequestDailyQuestListOK",
	CmdLobbyRequestDailyQuestListCancel: "LobbyRequestDailyQuestListCancel",

	CmdLobbyRequestLeagueInfo:       "LobbyRequestLeagueInfo",
	CmdLobbyRequestLeagueInfoOK:     "LobbyRequestLeagueInfoOK",
	CmdLobbyRequestLeagueInfoCancel: "LobbyRequestLeagueInfoCancel",

	CmdLobbyRequestQuestList:       "LobbyRequestQuestList",
	CmdLobbyRequestQuestListOK:     "LobbyRequestQuestListOK",
	CmdLobbyRequestQuestListCancel: "LobbyRequestQuestListCancel",

	CmdLobbyRequestSpecialEventList:   "LobbyRequestSpecialEventList",
	CmdLobbyRequestSpecialEventListOK: "LobbyRequestSpecialEventListOK",

	CmdLobbyEnterRanch:       "LobbyEnterRanch",
	CmdLobbyEnterRanchOK:     "LobbyEnterRanchOK",
	CmdLobbyEnterRanchCancel: "LobbyEnterRanchCancel",

	CmdLobbyGetMessengerInfo:       "LobbyGetMessengerInfo",
	CmdLobbyGetMessengerInfoOK:     "LobbyGetMessengerInfoOK",
	CmdLobbyGetMessengerInfoCancel: "LobbyGetMessengerInfoCancel",

	CmdLobbyClientNotify: "LobbyClientNotify",

	CmdLobbyGoodsShopList:       "LobbyGoodsShopList",
	CmdLobbyGoodsShopListOK:     "LobbyGoodsShopListOK",
	CmdLobbyGoodsShopListCancel: "LobbyGoodsShopListCancel",

	CmdLobbyInquiryTreecash:       "LobbyInquiryTreecash",
	CmdLobbyInquiryTreecashOK:     "LobbyInquiryTreecashOK",
	CmdLobbyInquiryTreecashCancel: "LobbyInquiryTreecashCancel",

	CmdLobbyEnterRandomRanch: "LobbyEnterRandomRanch",

	CmdRanchEnterRanch:       "RanchEnterRanch",
	CmdRanchEnterRanchOK:     "RanchEnterRanchOK",
	CmdRanchEnterRanchCancel: "RanchEnterRanchCancel",
	CmdRanchEnterRanchNotify: "RanchEnterRanchNotify",

	CmdRanchLeaveRanch:       "RanchLeaveRanch",
	CmdRanchLeaveRanchOK:     "RanchLeaveRanchOK",
	CmdRanchLeaveRanchNotify: "RanchLeaveRanchNotify",

	CmdRanchHeartbeat: "RanchHeartbeat",

	CmdRanchSnapshot:       "RanchSnapshot",
	CmdRanchSnapshotNotify: "RanchSnapshotNotify",

	CmdRanchCmdAction:       "RanchCmdAction",
	CmdRanchCmdActionNotify: "RanchCmdActionNotify",

	CmdRanchStuff:   "RanchStuff",
	CmdRanchStuffOK: "RanchStuffOK",

	CmdRanchUpdateBusyState:       "RanchUpdateBusyState",
	CmdRanchUpdateBusyStateNotify: "RanchUpdateBusyStateNotify",

	CmdRanchSearchStallion:       "RanchSearchStallion",
	CmdRanchSearchStallionOK:     "RanchSearchStallionOK",
	CmdRanchSearchStallionCancel: "RanchSearchStallionCancel",

	CmdRanchEnterBreedingMarket:       "RanchEnterBreedingMarket",
	CmdRanchEnterBreedingMarketOK:     "RanchEnterBreedingMarketOK",
	CmdRanchEnterBreedingMarketCancel: "RanchEnterBreedingMarketCancel",

	CmdRanchTryBreeding:       "RanchTryBreeding",
	CmdRanchTryBreedingOK:     "RanchTryBreedingOK",
	CmdRanchTryBreedingCancel: "RanchTryBreedingCancel",

	CmdRanchBreedingWishlist:       "RanchBreedingWishlist",
	CmdRanchBreedingWishlistOK:     "RanchBreedingWishlistOK",
	CmdRanchBreedingWishlistCancel: "RanchBreedingWishlistCancel",

	CmdRanchUpdateMountNickname:       "RanchUpdateMountNickname",
	CmdRanchUpdateMountNicknameOK:     "RanchUpdateMountNicknameOK",
	CmdRanchUpdateMountNicknameCancel: "RanchUpdateMountNicknameCancel",

	CmdRanchRequestStorage:       "RanchRequestStorage",
	CmdRanchRequestStorageOK:     "RanchRequestStorageOK",
	CmdRanchRequestStorageCancel: "RanchRequestStorageCancel",

	CmdRanchGetItemFromStorage:       "RanchGetItemFromStorage",
	CmdRanchGetItemFromStorageOK:     "RanchGetItemFromStorageOK",
	CmdRanchGetItemFromStorageCancel: "RanchGetItemFromStorageCancel",

	CmdRanchRequestNpcDressList:       "RanchRequestNpcDressList",
	CmdRanchRequestNpcDressListOK:     "RanchRequestNpcDressListOK",
	CmdRanchRequestNpcDressListCancel: "RanchRequestNpcDressListCancel",

	CmdRanchChat:       "RanchChat",
	CmdRanchChatNotify: "RanchChatNotify",

	CmdRanchWearEquipment:       "RanchWearEquipment",
	CmdRanchWearEquipmentOK:     "RanchWearEquipmentOK",
	CmdRanchWearEquipmentCancel: "RanchWearEquipmentCancel",

	CmdRanchRemoveEquipment:       "RanchRemoveEquipment",
	CmdRanchRemoveEquipmentOK:     "RanchRemoveEquipmentOK",
	CmdRanchRemoveEquipmentCancel: "RanchRemoveEquipmentCancel",

	CmdRanchUpdateEquipmentNotify: "RanchUpdateEquipmentNotify",

	CmdRaceEnterRoom:       "RaceEnterRoom",
	CmdRaceEnterRoomNotify: "RaceEnterRoomNotify",
	CmdRaceEnterRoomOK:     "RaceEnterRoomOK",
	CmdRaceEnterRoomCancel: "RaceEnterRoomCancel",

	CmdRaceChangeRoomOptions:       "RaceChangeRoomOptions",
	CmdRaceChangeRoomOptionsNotify: "RaceChangeRoomOptionsNotify",

	CmdRaceStartRace:       "RaceStartRace",
	CmdRaceStartRaceNotify: "RaceStartRaceNotify",
	CmdRaceStartRaceCancel: "RaceStartRaceCancel",

	CmdRaceUserRaceTimer:   "RaceUserRaceTimer",
	CmdRaceUserRaceTimerOK: "RaceUserRaceTimerOK",

	CmdRaceLoadingComplete:       "RaceLoadingComplete",
	CmdRaceLoadingCompleteNotify: "RaceLoadingCompleteNotify",

	CmdRaceChat:       "RaceChat",
	CmdRaceChatNotify: "RaceChatNotify",

	CmdRaceReadyRace:       "RaceReadyRace",
	CmdRaceReadyRaceNotify: "RaceReadyRaceNotify",

	CmdRaceCountdown: "RaceCountdown",
}

// Name returns the registered name of the command, or "n/a".
func (c Command) Name() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "n/a"
}

// Muted reports whether trace logging is suppressed for a chatty command.
func (c Command) Muted() bool {
	return c == CmdLobbyHeartbeat ||
		c == CmdRanchHeartbeat ||
		c == CmdRanchSnapshot ||
		c == CmdRanchSnapshotNotify
}
