package events

import (
	"strings"
)

// Kind is the occurrence a creature event responds to
type Kind int

const (
	KindNone Kind = iota
	KindLogin
	KindLogout
	KindChannelJoin
	KindChannelLeave
	KindAdvance
	KindMailSend
	KindMailReceive
	KindTradeRequest
	KindTradeAccept
	KindTextEdit
	KindReportBug
	KindLook
	KindThink
	KindDirection
	KindOutfit
	KindStatsChange
	KindAreaCombat
	KindPush
	KindTarget
	KindFollow
	KindCombat
	KindAttack
	KindCast
	KindKill
	KindDeath
	KindPrepareDeath
	KindMove
	KindMoveItem

	kindCount
)

type kindInfo struct {
	tag    string
	event  string
	params []string
}

var kinds = [kindCount]kindInfo{
	KindNone:         {},
	KindLogin:        {tag: "login", event: "onLogin", params: []string{"cid"}},
	KindLogout:       {tag: "logout", event: "onLogout", params: []string{"cid", "forceLogout"}},
	KindChannelJoin:  {tag: "joinchannel", event: "onJoinChannel", params: []string{"cid", "channel", "users"}},
	KindChannelLeave: {tag: "leavechannel", event: "onLeaveChannel", params: []string{"cid", "channel", "users"}},
	KindAdvance:      {tag: "advance", event: "onAdvance", params: []string{"cid", "skill", "oldLevel", "newLevel"}},
	KindMailSend:     {tag: "sendmail", event: "onSendMail", params: []string{"cid", "receiver", "item", "openBox"}},
	KindMailReceive:  {tag: "receivemail", event: "onReceiveMail", params: []string{"cid", "sender", "item", "openBox"}},
	KindTradeRequest: {tag: "traderequest", event: "onTradeRequest", params: []string{"cid", "target", "item"}},
	KindTradeAccept:  {tag: "tradeaccept", event: "onTradeAccept", params: []string{"cid", "target", "item", "targetItem"}},
	KindTextEdit:     {tag: "textedit", event: "onTextEdit", params: []string{"cid", "item", "newText"}},
	KindReportBug:    {tag: "reportbug", event: "onReportBug", params: []string{"cid", "comment"}},
	KindLook:         {tag: "look", event: "onLook", params: []string{"cid", "thing", "position", "lookDistance"}},
	KindThink:        {tag: "think", event: "onThink", params: []string{"cid", "interval"}},
	KindDirection:    {tag: "direction", event: "onDirection", params: []string{"cid", "old", "current"}},
	KindOutfit:       {tag: "outfit", event: "onOutfit", params: []string{"cid", "old", "current"}},
	KindStatsChange:  {tag: "statschange", event: "onStatsChange", params: []string{"cid", "attacker", "type", "combat", "value"}},
	KindAreaCombat:   {tag: "areacombat", event: "onAreaCombat", params: []string{"cid", "ground", "position", "aggressive"}},
	KindPush:         {tag: "push", event: "onPush", params: []string{"cid", "target"}},
	KindTarget:       {tag: "target", event: "onTarget", params: []string{"cid", "target"}},
	KindFollow:       {tag: "follow", event: "onFollow", params: []string{"cid", "target"}},
	KindCombat:       {tag: "combat", event: "onCombat", params: []string{"cid", "target"}},
	KindAttack:       {tag: "attack", event: "onAttack", params: []string{"cid", "target"}},
	KindCast:         {tag: "cast", event: "onCast", params: []string{"cid", "target"}},
	KindKill:         {tag: "kill", event: "onKill", params: []string{"cid", "target", "damage", "flags"}},
	KindDeath:        {tag: "death", event: "onDeath", params: []string{"cid", "corpse", "deathList"}},
	KindPrepareDeath: {tag: "preparedeath", event: "onPrepareDeath", params: []string{"cid", "deathList"}},
	KindMove:         {tag: "move", event: "onMove", params: []string{"cid", "fromPosition", "toPosition"}},
	KindMoveItem:     {tag: "moveitem", event: "onMoveItem", params: []string{"cid", "item", "count", "toContainer", "fromContainer", "fromPos", "toPos"}},
}

// warParam is appended to kill handlers when the war system is enabled
const warParam = "war"

var kindByTag = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for k := KindLogin; k < kindCount; k++ {
		m[kinds[k].tag] = k
	}
	return m
}()

// ResolveKind maps a descriptor type tag to its kind. Matching is exact
// apart from case; unknown tags yield KindNone.
func ResolveKind(tag string) Kind {
	return kindByTag[strings.ToLower(tag)]
}

// Kinds returns every usable kind in declaration order
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindLogin; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is a usable kind
func (k Kind) Valid() bool {
	return k > KindNone && k < kindCount
}

// String returns the descriptor tag of the kind
func (k Kind) String() string {
	if !k.Valid() {
		return "none"
	}
	return kinds[k].tag
}

// ScriptEventName is the global function a compiled script must define
func (k Kind) ScriptEventName() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].event
}

// ScriptEventParams lists the parameter names handed to scripts, in call
// order. Buffer-mode scripts see them as locals.
func (k Kind) ScriptEventParams(warSystem bool) []string {
	if !k.Valid() {
		return nil
	}
	params := append([]string(nil), kinds[k].params...)
	if k == KindKill && warSystem {
		params = append(params, warParam)
	}
	return params
}

// Signature renders the script callback declaration, e.g.
// "function onLogout(cid, forceLogout)"
func (k Kind) Signature(warSystem bool) string {
	if !k.Valid() {
		return ""
	}
	return "function " + k.ScriptEventName() + "(" + strings.Join(k.ScriptEventParams(warSystem), ", ") + ")"
}
