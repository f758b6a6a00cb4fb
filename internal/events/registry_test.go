package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/creaturescripts/internal/entities"
	dnderr "github.com/KirkDiggler/creaturescripts/internal/errors"
	"github.com/KirkDiggler/creaturescripts/internal/script"
	mockscript "github.com/KirkDiggler/creaturescripts/internal/script/mock"
)

type testNode map[string]string

func (n testNode) Attribute(key string) (string, bool) {
	v, ok := n[key]
	return v, ok
}

type RegistryTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	runtime  *mockscript.MockRuntime
	registry *Registry
	player   *entities.Creature
}

func (s *RegistryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.runtime = mockscript.NewMockRuntime(s.ctrl)
	s.registry = NewRegistry(&RegistryConfig{Runtime: s.runtime})
	s.player = entities.NewPlayer(268435457, "Alice", entities.Position{X: 100, Y: 100, Z: 7})
}

func (s *RegistryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newEvent configures a descriptor and compiles it against the mock runtime
func (s *RegistryTestSuite) newEvent(name, kind string, ref script.EntryRef) *Descriptor {
	d := s.registry.NewEvent("event")
	s.Require().NotNil(d)
	s.Require().NoError(d.Configure(testNode{"name": name, "type": kind}))

	s.runtime.EXPECT().Compile(name+".lua", "-- "+name, d.ScriptEventName()).Return(ref, nil)
	s.Require().NoError(d.Compile(name+".lua", "-- "+name))
	return d
}

func (s *RegistryTestSuite) expectCall(ref script.EntryRef, verdict bool) {
	env := script.NewEnv(1)
	s.runtime.EXPECT().ReserveEnv().Return(env, nil)
	s.runtime.EXPECT().Call(env, ref, gomock.Any()).Return(verdict, nil)
	s.runtime.EXPECT().ReleaseEnv(env)
}

func (s *RegistryTestSuite) TestNewEvent() {
	for _, node := range []string{"event", "creatureevent", "CreatureEvent", "creaturevent", "creaturescript"} {
		s.NotNil(s.registry.NewEvent(node), node)
	}
	s.Nil(s.registry.NewEvent("action"))
	s.Nil(s.registry.NewEvent(""))
}

func (s *RegistryTestSuite) TestConfigure_Errors() {
	d := s.registry.NewEvent("event")

	err := d.Configure(testNode{"type": "login"})
	s.Equal(dnderr.CodeMissingName, dnderr.GetCode(err))
	s.False(d.Loaded())

	err = d.Configure(testNode{"name": "welcome"})
	s.Equal(dnderr.CodeInvalidType, dnderr.GetCode(err))
	s.False(d.Loaded())

	err = d.Configure(testNode{"name": "welcome", "type": "logon"})
	s.Equal(dnderr.CodeInvalidType, dnderr.GetCode(err))
	s.Equal("logon", dnderr.GetMeta(err)["type"])
	s.False(d.Loaded())
	s.Equal(KindNone, d.Kind())
}

func (s *RegistryTestSuite) TestRegister_EmptyRegistry() {
	d := s.newEvent("welcome", "login", 1)

	ok, err := s.registry.Register(d, false)
	s.Require().NoError(err)
	s.True(ok)
	s.Len(s.registry.Descriptors(), 1)
	s.Same(d, s.registry.Lookup("welcome"))
}

func (s *RegistryTestSuite) TestRegister_InvalidKind() {
	d := s.registry.NewEvent("event")

	ok, err := s.registry.Register(d, true)
	s.False(ok)
	s.Equal(dnderr.CodeInvalidKind, dnderr.GetCode(err))
	s.Empty(s.registry.Descriptors())
}

func (s *RegistryTestSuite) TestRegister_MergesIntoUnloaded() {
	original := s.newEvent("welcome", "login", 1)
	_, err := s.registry.Register(original, false)
	s.Require().NoError(err)

	original.Reset()
	s.False(original.Loaded())

	for _, override := range []bool{false, true} {
		replacement := s.newEvent("welcome", "login", 2)
		ok, err := s.registry.Register(replacement, override)
		s.Require().NoError(err)
		s.Equal(override, ok)

		s.Len(s.registry.Descriptors(), 1)
		s.Same(original, s.registry.Lookup("welcome"))
		s.True(original.Loaded())
		s.Equal(ModeCompiled, original.Mode())

		original.Reset()
	}
}

func (s *RegistryTestSuite) TestRegister_LoadedWithoutOverride() {
	original := s.newEvent("welcome", "login", 1)
	_, err := s.registry.Register(original, false)
	s.Require().NoError(err)

	replacement := s.newEvent("welcome", "login", 2)
	replacement.SetBuffer("_result = false")

	ok, err := s.registry.Register(replacement, false)
	s.Require().NoError(err)
	s.False(ok)
	s.Len(s.registry.Descriptors(), 1)
	s.Equal(ModeCompiled, original.Mode())

	// the original entry still runs
	s.expectCall(1, true)
	s.True(s.registry.BroadcastLogin(s.player))
}

func (s *RegistryTestSuite) TestRegister_LoadedWithOverride() {
	original := s.newEvent("welcome", "login", 1)
	_, err := s.registry.Register(original, false)
	s.Require().NoError(err)

	replacement := s.newEvent("welcome", "login", 2)

	ok, err := s.registry.Register(replacement, true)
	s.Require().NoError(err)
	s.True(ok)
	s.Len(s.registry.Descriptors(), 1)
	s.Same(original, s.registry.Lookup("welcome"))

	s.expectCall(2, false)
	s.False(s.registry.BroadcastLogin(s.player))
}

func (s *RegistryTestSuite) TestRegister_SameNameOtherKind() {
	login := s.newEvent("greeter", "login", 1)
	logout := s.newEvent("greeter", "logout", 2)

	ok, err := s.registry.Register(login, false)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.registry.Register(logout, false)
	s.Require().NoError(err)
	s.True(ok)

	s.Len(s.registry.Descriptors(), 2)
	s.Same(login, s.registry.Lookup("greeter"))
	s.Equal([]*Descriptor{logout}, s.registry.ByKind(KindLogout))
}

func (s *RegistryTestSuite) TestBroadcastLogin_Reduction() {
	testCases := []struct {
		name     string
		verdicts []bool
		expected bool
	}{
		{name: "no handlers", verdicts: nil, expected: true},
		{name: "single deny", verdicts: []bool{false}, expected: false},
		{name: "allow then deny", verdicts: []bool{true, false}, expected: false},
		{name: "deny then allow", verdicts: []bool{false, true}, expected: false},
		{name: "all allow", verdicts: []bool{true, true, true}, expected: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			registry := NewRegistry(&RegistryConfig{Runtime: s.runtime})
			s.registry = registry

			var last *gomock.Call
			for i, verdict := range tc.verdicts {
				ref := script.EntryRef(i + 1)
				_, err := registry.Register(s.newEvent(string(rune('a'+i)), "login", ref), false)
				s.Require().NoError(err)

				// handlers run in registration order
				env := script.NewEnv(1)
				reserve := s.runtime.EXPECT().ReserveEnv().Return(env, nil)
				if last != nil {
					reserve.After(last)
				}
				call := s.runtime.EXPECT().Call(env, ref, gomock.Any()).Return(verdict, nil).After(reserve)
				last = s.runtime.EXPECT().ReleaseEnv(env).After(call)
			}

			s.Equal(tc.expected, registry.BroadcastLogin(s.player))
		})
	}
}

func (s *RegistryTestSuite) TestBroadcastLogout_SkipsOtherKindsAndUnloaded() {
	logout := s.newEvent("farewell", "logout", 1)
	_, err := s.registry.Register(logout, false)
	s.Require().NoError(err)

	unloaded := s.newEvent("stale", "logout", 2)
	_, err = s.registry.Register(unloaded, false)
	s.Require().NoError(err)
	unloaded.Reset()

	_, err = s.registry.Register(s.newEvent("welcome", "login", 3), false)
	s.Require().NoError(err)

	env := script.NewEnv(1)
	s.runtime.EXPECT().ReserveEnv().Return(env, nil)
	s.runtime.EXPECT().Call(env, script.EntryRef(1), []script.Arg{
		{Name: "cid", Value: script.Handle(268435457)},
		{Name: "forceLogout", Value: script.Bool(true)},
	}).Return(true, nil)
	s.runtime.EXPECT().ReleaseEnv(env)

	s.True(s.registry.BroadcastLogout(s.player, true))
}

func (s *RegistryTestSuite) TestExecute_ReentrancyExhausted() {
	d := s.newEvent("welcome", "login", 1)
	_, err := s.registry.Register(d, false)
	s.Require().NoError(err)

	s.runtime.EXPECT().ReserveEnv().Return(nil, dnderr.ReentrancyExhausted(21))

	s.False(d.ExecuteLogin(s.player))
	s.True(d.Loaded())
	s.Equal(ModeCompiled, d.Mode())
}

func (s *RegistryTestSuite) TestExecute_CompiledFaultDenies() {
	d := s.newEvent("welcome", "login", 1)

	env := script.NewEnv(1)
	s.runtime.EXPECT().ReserveEnv().Return(env, nil)
	s.runtime.EXPECT().Call(env, script.EntryRef(1), gomock.Any()).
		Return(false, dnderr.ScriptFault(errors.New("attempt to call a nil value"), "welcome.lua"))
	s.runtime.EXPECT().ReleaseEnv(env)

	s.False(d.ExecuteLogin(s.player))
}

func (s *RegistryTestSuite) TestExecute_BufferFaultAllows() {
	d := s.registry.NewEvent("event")
	s.Require().NoError(d.Configure(testNode{"name": "welcome", "type": "login"}))
	d.SetBuffer("error('boom')")

	env := script.NewEnv(1)
	s.runtime.EXPECT().ReserveEnv().Return(env, nil)
	s.runtime.EXPECT().RunBuffer(env, "local cid = 268435457\nerror('boom')").
		Return(dnderr.ScriptFault(errors.New("boom"), "welcome"))
	s.runtime.EXPECT().ReleaseEnv(env)

	s.True(d.ExecuteLogin(s.player))
}

func (s *RegistryTestSuite) TestExecute_BufferReadsResult() {
	d := s.registry.NewEvent("event")
	s.Require().NoError(d.Configure(testNode{"name": "guard", "type": "logout"}))
	d.SetBuffer("_result = not forceLogout")

	env := script.NewEnv(1)
	gomock.InOrder(
		s.runtime.EXPECT().ReserveEnv().Return(env, nil),
		s.runtime.EXPECT().RunBuffer(env, "local cid = 268435457\nlocal forceLogout = true\n_result = not forceLogout").Return(nil),
		s.runtime.EXPECT().GlobalBool(script.ResultGlobal, true).Return(false),
		s.runtime.EXPECT().ReleaseEnv(env),
	)

	s.False(d.ExecuteLogout(s.player, true))
	s.Equal("Alice", env.EventDesc())
	s.Equal(s.player.Position, env.RealPos())
}

func (s *RegistryTestSuite) TestExecute_NotScriptedAllows() {
	d := s.registry.NewEvent("event")
	s.Require().NoError(d.Configure(testNode{"name": "empty", "type": "think"}))

	env := script.NewEnv(1)
	s.runtime.EXPECT().ReserveEnv().Return(env, nil)
	s.runtime.EXPECT().ReleaseEnv(env)

	s.True(d.ExecuteThink(s.player, 1000))
}

func (s *RegistryTestSuite) TestCompile_Error() {
	d := s.registry.NewEvent("event")
	s.Require().NoError(d.Configure(testNode{"name": "welcome", "type": "login"}))

	s.runtime.EXPECT().Compile("welcome.lua", "", "onLogin").
		Return(script.EntryRef(0), dnderr.Newf(dnderr.CodeScriptFault, "event onLogin not found"))

	err := d.Compile("welcome.lua", "")
	s.True(dnderr.IsScriptFault(err))
	s.Equal(ModeNotScripted, d.Mode())

	unconfigured := s.registry.NewEvent("event")
	s.Equal(dnderr.CodeInvalidKind, dnderr.GetCode(unconfigured.Compile("x.lua", "")))
}

func (s *RegistryTestSuite) TestClearAll() {
	d := s.newEvent("welcome", "login", 1)
	_, err := s.registry.Register(d, false)
	s.Require().NoError(err)

	s.runtime.EXPECT().Reset().Return(nil)
	s.Require().NoError(s.registry.ClearAll())

	s.Len(s.registry.Descriptors(), 1)
	s.False(d.Loaded())
	s.Equal(ModeNotScripted, d.Mode())
	s.Equal("welcome", d.Name())
	s.Empty(s.registry.ByKind(KindLogin))

	// no handlers run after a clear
	s.True(s.registry.BroadcastLogin(s.player))
}

func (s *RegistryTestSuite) TestClearAll_RuntimeBusyKeepsHandlers() {
	d := s.newEvent("guard", "login", 1)
	_, err := s.registry.Register(d, false)
	s.Require().NoError(err)

	s.runtime.EXPECT().Reset().Return(dnderr.New(dnderr.CodeInternal, "slots in use"))
	err = s.registry.ClearAll()
	s.Error(err)
	s.Equal(dnderr.CodeInternal, dnderr.GetCode(err))

	s.True(d.Loaded())
	s.Equal(ModeCompiled, d.Mode())
	s.Len(s.registry.ByKind(KindLogin), 1)

	// the handler still denies
	s.expectCall(1, false)
	s.False(s.registry.BroadcastLogin(s.player))
}

func (s *RegistryTestSuite) TestOutcome() {
	d := s.newEvent("welcome", "login", 1)

	s.Equal(OutcomeAppended, s.registry.Outcome("welcome", KindLogin, false))

	outcome, err := s.registry.RegisterOutcome(d, false)
	s.Require().NoError(err)
	s.Equal(OutcomeAppended, outcome)

	s.Equal(OutcomeIgnored, s.registry.Outcome("welcome", KindLogin, false))
	s.Equal(OutcomeMerged, s.registry.Outcome("welcome", KindLogin, true))
	s.Equal(OutcomeAppended, s.registry.Outcome("welcome", KindLogout, false))
	s.Equal(OutcomeAppended, s.registry.Outcome("farewell", KindLogin, false))

	duplicate := s.newEvent("welcome", "login", 2)
	outcome, err = s.registry.RegisterOutcome(duplicate, false)
	s.Require().NoError(err)
	s.Equal(OutcomeIgnored, outcome)
	s.Equal("ignored", outcome.String())

	d.Reset()
	s.Equal(OutcomeMerged, s.registry.Outcome("welcome", KindLogin, false))
	outcome, err = s.registry.RegisterOutcome(duplicate, false)
	s.Require().NoError(err)
	s.Equal(OutcomeMerged, outcome)
	s.True(d.Loaded())
	s.Len(s.registry.Descriptors(), 1)

	_, err = s.registry.RegisterOutcome(nil, false)
	s.Equal(dnderr.CodeInvalidArgument, dnderr.GetCode(err))
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
