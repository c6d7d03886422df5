package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
)

var _ driven.SourceClient = (*mockSourceClient)(nil)

// searchCall records the arguments of one source call.
type searchCall struct {
	query    string
	language string
	limit    int
}

// mockSourceClient implements driven.SourceClient for testing.
type mockSourceClient struct {
	code         []domain.CodeItem
	repositories []domain.RepositoryItem
	issues       []domain.IssueItem
	discussions  []domain.IssueItem

	codeErr       error
	repoErr       error
	issueErr      error
	discussionErr error

	// block, when set, is waited on by every call before it returns.
	block chan struct{}

	started atomic.Int32

	mu       sync.Mutex
	received map[domain.Kind][]searchCall
}

func (m *mockSourceClient) record(kind domain.Kind, query, language string, limit int) {
	m.mu.Lock()
	if m.received == nil {
		m.received = make(map[domain.Kind][]searchCall)
	}
	m.received[kind] = append(m.received[kind], searchCall{query: query, language: language, limit: limit})
	m.mu.Unlock()

	m.started.Add(1)
	if m.block != nil {
		<-m.block
	}
}

// callsFor returns the recorded calls for kind.
func (m *mockSourceClient) callsFor(kind domain.Kind) []searchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]searchCall(nil), m.received[kind]...)
}

// totalCalls returns the number of calls across all kinds.
func (m *mockSourceClient) totalCalls() int {
	return int(m.started.Load())
}

func (m *mockSourceClient) SearchCode(_ context.Context, query, language string, limit int) ([]domain.CodeItem, error) {
	m.record(domain.KindCode, query, language, limit)
	if m.codeErr != nil {
		return nil, m.codeErr
	}
	return m.code, nil
}

func (m *mockSourceClient) SearchRepositories(
	_ context.Context, query, language string, limit int,
) ([]domain.RepositoryItem, error) {
	m.record(domain.KindRepository, query, language, limit)
	if m.repoErr != nil {
		return nil, m.repoErr
	}
	return m.repositories, nil
}

func (m *mockSourceClient) SearchIssues(_ context.Context, query, language string, limit int) ([]domain.IssueItem, error) {
	m.record(domain.KindIssue, query, language, limit)
	if m.issueErr != nil {
		return nil, m.issueErr
	}
	return m.issues, nil
}

func (m *mockSourceClient) SearchDiscussions(
	_ context.Context, query, language string, limit int,
) ([]domain.IssueItem, error) {
	m.record(domain.KindDiscussion, query, language, limit)
	if m.discussionErr != nil {
		return nil, m.discussionErr
	}
	return m.discussions, nil
}

// mockDiscussionSearcher implements driven.DiscussionSearcher for testing.
type mockDiscussionSearcher struct {
	items []domain.IssueItem
	calls atomic.Int32
}

func (m *mockDiscussionSearcher) SearchDiscussions(
	_ context.Context, _, _ string, _ int,
) ([]domain.IssueItem, error) {
	m.calls.Add(1)
	return m.items, nil
}
