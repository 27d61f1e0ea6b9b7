package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/reflectlabs/feedback-analyzer/internal/domain"
)

var _ feedbackLister = &feedbackListerMock{}

type feedbackListerMock struct {
	ListWindowFunc func(ctx context.Context, days int, source domain.Source, limit int) ([]*domain.Feedback, error)

	calls struct {
		ListWindow []struct {
			Ctx    context.Context
			Days   int
			Source domain.Source
			Limit  int
		}
	}
	lockListWindow sync.RWMutex
}

func (mock *feedbackListerMock) ListWindow(ctx context.Context, days int, source domain.Source, limit int) ([]*domain.Feedback, error) {
	if mock.ListWindowFunc == nil {
		panic("feedbackListerMock.ListWindowFunc: method is nil but feedbackLister.ListWindow was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Days   int
		Source domain.Source
		Limit  int
	}{Ctx: ctx, Days: days, Source: source, Limit: limit}
	mock.lockListWindow.Lock()
	mock.calls.ListWindow = append(mock.calls.ListWindow, callInfo)
	mock.lockListWindow.Unlock()
	return mock.ListWindowFunc(ctx, days, source, limit)
}

func (mock *feedbackListerMock) ListWindowCalls() []struct {
	Ctx    context.Context
	Days   int
	Source domain.Source
	Limit  int
} {
	mock.lockListWindow.RLock()
	calls := mock.calls.ListWindow
	mock.lockListWindow.RUnlock()
	return calls
}

var _ summarizer = &summarizerMock{}

type summarizerMock struct {
	SummarizeFunc func(ctx context.Context, messages []string) string

	calls struct {
		Summarize []struct {
			Ctx      context.Context
			Messages []string
		}
	}
	lockSummarize sync.RWMutex
}

func (mock *summarizerMock) Summarize(ctx context.Context, messages []string) string {
	if mock.SummarizeFunc == nil {
		panic("summarizerMock.SummarizeFunc: method is nil but summarizer.Summarize was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Messages []string
	}{Ctx: ctx, Messages: messages}
	mock.lockSummarize.Lock()
	mock.calls.Summarize = append(mock.calls.Summarize, callInfo)
	mock.lockSummarize.Unlock()
	return mock.SummarizeFunc(ctx, messages)
}

func (mock *summarizerMock) SummarizeCalls() []struct {
	Ctx      context.Context
	Messages []string
} {
	mock.lockSummarize.RLock()
	calls := mock.calls.Summarize
	mock.lockSummarize.RUnlock()
	return calls
}

var _ responseCache = &responseCacheMock{}

type responseCacheMock struct {
	GetFunc func(ctx context.Context, key string) (string, bool)
	PutFunc func(ctx context.Context, key, payload string, ttl time.Duration)

	calls struct {
		Get []struct {
			Ctx context.Context
			Key string
		}
		Put []struct {
			Ctx     context.Context
			Key     string
			Payload string
			TTL     time.Duration
		}
	}
	lockGet sync.RWMutex
	lockPut sync.RWMutex
}

func (mock *responseCacheMock) Get(ctx context.Context, key string) (string, bool) {
	if mock.GetFunc == nil {
		panic("responseCacheMock.GetFunc: method is nil but responseCache.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *responseCacheMock) GetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *responseCacheMock) Put(ctx context.Context, key, payload string, ttl time.Duration) {
	if mock.PutFunc == nil {
		panic("responseCacheMock.PutFunc: method is nil but responseCache.Put was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Key     string
		Payload string
		TTL     time.Duration
	}{Ctx: ctx, Key: key, Payload: payload, TTL: ttl}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	mock.PutFunc(ctx, key, payload, ttl)
}

func (mock *responseCacheMock) PutCalls() []struct {
	Ctx     context.Context
	Key     string
	Payload string
	TTL     time.Duration
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
