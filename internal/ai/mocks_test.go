package ai

import (
	"context"
	"sync"
)

var _ completionClient = &completionClientMock{}

type completionClientMock struct {
	CompleteFunc func(ctx context.Context, req CompletionRequest) (string, error)

	calls struct {
		Complete []struct {
			Ctx context.Context
			Req CompletionRequest
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completionClientMock) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completionClientMock.CompleteFunc: method is nil but completionClient.Complete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req CompletionRequest
	}{Ctx: ctx, Req: req}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, req)
}

func (mock *completionClientMock) CompleteCalls() []struct {
	Ctx context.Context
	Req CompletionRequest
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
