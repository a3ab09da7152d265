package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// callableSpec declares one callable of a fake module
type callableSpec struct {
	name string
	args []domain.ArgMetadata
}

// fakeChain is an in-memory ChainClient
type fakeChain struct {
	mu         sync.Mutex
	connected  bool
	connectErr error
	connects   int
	modules    map[string]map[domain.InteractionType][]callableSpec
}

func newFakeChain(connected bool) *fakeChain {
	return &fakeChain{
		connected: connected,
		modules:   make(map[string]map[domain.InteractionType][]callableSpec),
	}
}

func (f *fakeChain) with(module string, kind domain.InteractionType, specs ...callableSpec) *fakeChain {
	if f.modules[module] == nil {
		f.modules[module] = make(map[domain.InteractionType][]callableSpec)
	}
	f.modules[module][kind] = append(f.modules[module][kind], specs...)
	return f
}

func (f *fakeChain) Connect(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects++
	if f.connectErr != nil {
		return f.connectErr
	}
	f.connected = true
	return nil
}

func (f *fakeChain) Connected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

// Modules ignores the connection flag, as do the other metadata reads
func (f *fakeChain) Modules() []string {
	names := make([]string, 0, len(f.modules))
	for name := range f.modules {
		names = append(names, name)
	}
	return names
}

func (f *fakeChain) Callables(kind domain.InteractionType, module string) []string {
	var names []string
	for _, entry := range f.modules[module][kind] {
		names = append(names, entry.name)
	}
	return names
}

func (f *fakeChain) CallableArgs(kind domain.InteractionType, module, callable string) []domain.ArgMetadata {
	for _, entry := range f.modules[module][kind] {
		if entry.name == callable {
			return entry.args
		}
	}
	return nil
}

// recordingSubmitter captures submissions and replays scripted statuses
type recordingSubmitter struct {
	mu          sync.Mutex
	submissions []domain.Submission
	accounts    []domain.Account
	statuses    []string
	block       chan struct{}
}

func (s *recordingSubmitter) Submit(ctx context.Context, submission domain.Submission, account domain.Account, status usecase.StatusFunc) <-chan struct{} {
	s.mu.Lock()
	s.submissions = append(s.submissions, submission)
	s.accounts = append(s.accounts, account)
	statuses := append([]string(nil), s.statuses...)
	block := s.block
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if block != nil {
			<-block
		}
		for _, text := range statuses {
			status(text)
		}
	}()
	return done
}

func (s *recordingSubmitter) last() domain.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submissions[len(s.submissions)-1]
}

// MockAccountResolver is a mock implementation of AccountResolver
type MockAccountResolver struct {
	mock.Mock
}

func (m *MockAccountResolver) Accounts() []domain.Account {
	args := m.Called()
	return args.Get(0).([]domain.Account)
}

func (m *MockAccountResolver) Resolve(name string) (domain.Account, error) {
	args := m.Called(name)
	return args.Get(0).(domain.Account), args.Error(1)
}

// MockCallableSelector is a mock implementation of CallableSelector
type MockCallableSelector struct {
	mock.Mock
}

func (m *MockCallableSelector) SelectCallable(ctx context.Context, module string, callables []domain.Operation) (string, error) {
	args := m.Called(ctx, module, callables)
	return args.String(0), args.Error(1)
}

// MockParamPrompter is a mock implementation of ParamPrompter
type MockParamPrompter struct {
	mock.Mock
}

func (m *MockParamPrompter) PromptParams(ctx context.Context, kind domain.InteractionType, fields []domain.ParamField, current []domain.InputParam) ([]domain.InputParam, error) {
	args := m.Called(ctx, kind, fields, current)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InputParam), args.Error(1)
}

// recordingSink collects status sink calls
type recordingSink struct {
	mu      sync.Mutex
	started string
	updates []string
	final   string
}

func (s *recordingSink) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = message
}

func (s *recordingSink) Update(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, text)
}

func (s *recordingSink) Stop(final string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.final = final
}

// kittiesChain mirrors a pallet with two extrinsics and one query
func kittiesChain(connected bool) *fakeChain {
	return newFakeChain(connected).
		with("substratekitties", domain.InteractionExtrinsic,
			callableSpec{name: "transfer", args: []domain.ArgMetadata{
				{Name: "to", Type: "AccountId"},
				{Name: "amount", Type: "Option<u64>"},
			}},
			callableSpec{name: "mint"},
			callableSpec{name: "breed", args: []domain.ArgMetadata{
				{Name: "kitty_1", Type: "Hash"},
				{Name: "kitty_2", Type: "Hash"},
			}},
		).
		with("substratekitties", domain.InteractionQuery,
			callableSpec{name: "kittyOwner", args: []domain.ArgMetadata{{Name: "kitty", Type: "Hash"}}},
		)
}
