package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/creaturescripts/internal/entities"
	dnderr "github.com/KirkDiggler/creaturescripts/internal/errors"
	"github.com/KirkDiggler/creaturescripts/internal/events"
	"github.com/KirkDiggler/creaturescripts/internal/manifest"
	"github.com/KirkDiggler/creaturescripts/internal/repositories/definitions"
	"github.com/KirkDiggler/creaturescripts/internal/script"
)

const (
	welcomeScript = `function onLogin(cid)
	return getCreatureName(cid) == "Alice"
end
`
	denyScript = `function onLogin(cid)
	return false
end
`
)

type ServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	dir      string
	runtime  *script.LuaRuntime
	registry *events.Registry
	repo     *definitions.InMemoryRepository
	service  Service

	alice *entities.Creature
	bob   *entities.Creature
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()
	s.runtime = script.NewLuaRuntime("CreatureScript Interface", 4)
	s.registry = events.NewRegistry(&events.RegistryConfig{Runtime: s.runtime})
	s.repo = definitions.NewInMemoryRepository()
	s.service = NewService(&ServiceConfig{
		Registry:  s.registry,
		Source:    s.repo,
		ScriptDir: s.dir,
	})

	s.alice = entities.NewPlayer(268435457, "Alice", entities.Position{X: 100, Y: 100, Z: 7})
	s.bob = entities.NewPlayer(268435458, "Bob", entities.Position{X: 101, Y: 100, Z: 7})
}

func (s *ServiceTestSuite) writeScript(name, source string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, name), []byte(source), 0o600))
}

func (s *ServiceTestSuite) create(def *manifest.Definition) *manifest.Definition {
	s.Require().NoError(s.repo.Create(s.ctx, def))
	return def
}

func (s *ServiceTestSuite) TestLoad_CompiledAndBuffered() {
	s.writeScript("welcome.lua", welcomeScript)
	s.create(&manifest.Definition{Name: "welcome", Type: "login", Script: "welcome.lua"})
	s.create(&manifest.Definition{Name: "stay", Type: "logout", Buffer: "_result = not forceLogout"})

	result, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, result.Registered)
	s.Empty(result.Rejected)

	welcome := s.registry.Lookup("welcome")
	s.Require().NotNil(welcome)
	s.Equal(events.ModeCompiled, welcome.Mode())
	s.Equal(events.ModeBuffer, s.registry.Lookup("stay").Mode())

	s.True(s.registry.BroadcastLogin(s.alice))
	s.False(s.registry.BroadcastLogin(s.bob))
	s.True(s.registry.BroadcastLogout(s.alice, false))
	s.False(s.registry.BroadcastLogout(s.alice, true))
}

func (s *ServiceTestSuite) TestLoad_RejectsInvalidDefinitions() {
	s.writeScript("welcome.lua", welcomeScript)
	s.writeScript("wrong.lua", "function onLogout(cid) return true end")

	s.create(&manifest.Definition{Name: "welcome", Type: "login", Script: "welcome.lua"})
	s.create(&manifest.Definition{Type: "login", Buffer: "_result = true"})
	s.create(&manifest.Definition{Name: "bogus", Type: "levelup", Buffer: "_result = true"})
	s.create(&manifest.Definition{Name: "missing", Type: "login", Script: "missing.lua"})
	s.create(&manifest.Definition{Name: "wrong", Type: "login", Script: "wrong.lua"})
	s.create(&manifest.Definition{Name: "odd", Node: "action", Type: "login", Buffer: "_result = true"})
	s.create(&manifest.Definition{Name: "empty", Type: "login"})

	result, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, result.Registered)
	s.Equal(7, result.Total())
	s.Require().Len(result.Rejected, 6)

	s.Equal(1, result.Rejected[0].Index)
	s.Equal(dnderr.CodeMissingName, dnderr.GetCode(result.Rejected[0].Err))
	s.Equal("bogus", result.Rejected[1].Name)
	s.Equal(dnderr.CodeInvalidType, dnderr.GetCode(result.Rejected[1].Err))
	s.Equal("missing", result.Rejected[2].Name)
	s.Equal("wrong", result.Rejected[3].Name)
	s.Equal("odd", result.Rejected[4].Name)
	s.Equal(dnderr.CodeInvalidArgument, dnderr.GetCode(result.Rejected[4].Err))
	s.Equal("empty", result.Rejected[5].Name)

	s.Len(s.registry.Descriptors(), 1)
	s.True(s.registry.BroadcastLogin(s.alice))
}

func (s *ServiceTestSuite) TestLoad_Duplicates() {
	s.writeScript("welcome.lua", welcomeScript)
	s.writeScript("deny.lua", denyScript)

	s.create(&manifest.Definition{Name: "welcome", Type: "login", Script: "welcome.lua"})
	s.create(&manifest.Definition{Name: "welcome", Type: "login", Script: "deny.lua"})

	result, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, result.Registered)
	s.Equal(1, result.Ignored)
	s.True(s.registry.BroadcastLogin(s.alice))

	s.create(&manifest.Definition{Name: "welcome", Type: "login", Script: "deny.lua", Override: true})

	result, err = s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, result.Registered)
	s.Equal(2, result.Ignored)
	s.Equal(1, result.Merged)
	s.Len(s.registry.Descriptors(), 1)
	s.False(s.registry.BroadcastLogin(s.alice))
}

func (s *ServiceTestSuite) TestLoad_IgnoredDuplicateIsNotCompiled() {
	s.writeScript("welcome.lua", welcomeScript)
	s.writeScript("broken.lua", "function onLogin(cid")

	s.create(&manifest.Definition{Name: "welcome", Type: "login", Script: "welcome.lua"})
	s.create(&manifest.Definition{Name: "welcome", Type: "login", Script: "broken.lua"})
	s.create(&manifest.Definition{Name: "welcome", Type: "login", Script: "missing.lua"})

	result, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, result.Registered)
	s.Equal(2, result.Ignored)
	s.Empty(result.Rejected)
	s.True(s.registry.BroadcastLogin(s.alice))

	// with override the duplicate is compiled and its fault reported
	s.create(&manifest.Definition{Name: "welcome", Type: "login", Script: "broken.lua", Override: true})

	result, err = s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(result.Rejected, 1)
	s.Equal(3, result.Rejected[0].Index)
	s.True(s.registry.BroadcastLogin(s.alice))
}

func (s *ServiceTestSuite) TestReload_PicksUpChanges() {
	s.writeScript("welcome.lua", welcomeScript)
	welcome := s.create(&manifest.Definition{Name: "welcome", Type: "login", Script: "welcome.lua"})
	s.create(&manifest.Definition{Name: "stay", Type: "logout", Buffer: "_result = false"})

	_, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.False(s.registry.BroadcastLogout(s.alice, false))

	s.writeScript("welcome.lua", denyScript)
	s.Require().NoError(s.repo.Delete(s.ctx, welcome.ID))
	s.create(&manifest.Definition{Name: "welcome", Type: "login", Script: "welcome.lua"})

	result, err := s.service.Reload(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, result.Registered)
	s.Equal(2, result.Merged)
	s.False(s.registry.BroadcastLogin(s.alice))
	s.False(s.registry.BroadcastLogout(s.alice, false))
}

func (s *ServiceTestSuite) TestReload_DropsRemovedDefinitions() {
	stay := s.create(&manifest.Definition{Name: "stay", Type: "logout", Buffer: "_result = false"})

	_, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.False(s.registry.BroadcastLogout(s.alice, false))

	s.Require().NoError(s.repo.Delete(s.ctx, stay.ID))

	result, err := s.service.Reload(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, result.Total())

	// the descriptor stays registered but no longer runs
	d := s.registry.Lookup("stay")
	s.Require().NotNil(d)
	s.False(d.Loaded())
	s.Empty(s.registry.ByKind(events.KindLogout))
	s.True(s.registry.BroadcastLogout(s.alice, false))
}

type failingSource struct{}

func (failingSource) List(ctx context.Context) ([]*manifest.Definition, error) {
	return nil, dnderr.NotFoundf("manifest not found")
}

func (s *ServiceTestSuite) TestLoad_SourceError() {
	svc := NewService(&ServiceConfig{Registry: s.registry, Source: failingSource{}})

	result, err := svc.Load(s.ctx)
	s.Error(err)
	s.Nil(result)
	s.True(dnderr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestLoad_Cancelled() {
	s.create(&manifest.Definition{Name: "stay", Type: "logout", Buffer: "_result = false"})

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.service.Load(ctx)
	s.Error(err)
	s.True(errors.Is(err, context.Canceled))
	s.Empty(s.registry.Descriptors())
}

func (s *ServiceTestSuite) TestNewService_RequiresDependencies() {
	s.Panics(func() { NewService(nil) })
	s.Panics(func() { NewService(&ServiceConfig{Source: s.repo}) })
	s.Panics(func() { NewService(&ServiceConfig{Registry: s.registry}) })
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
