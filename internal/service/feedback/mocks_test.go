package feedback

import (
	"context"
	"sync"

	"github.com/reflectlabs/feedback-analyzer/internal/ai"
	"github.com/reflectlabs/feedback-analyzer/internal/domain"
)

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	CreateFunc func(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Fb  *domain.Feedback
		}
	}
	lockCreate sync.RWMutex
}

func (mock *feedbackRepoMock) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fb  *domain.Feedback
	}{Ctx: ctx, Fb: fb}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, fb)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Fb  *domain.Feedback
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ classifier = &classifierMock{}

type classifierMock struct {
	ClassifyFunc func(ctx context.Context, message string) ai.Classification

	calls struct {
		Classify []struct {
			Ctx     context.Context
			Message string
		}
	}
	lockClassify sync.RWMutex
}

func (mock *classifierMock) Classify(ctx context.Context, message string) ai.Classification {
	if mock.ClassifyFunc == nil {
		panic("classifierMock.ClassifyFunc: method is nil but classifier.Classify was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Message string
	}{Ctx: ctx, Message: message}
	mock.lockClassify.Lock()
	mock.calls.Classify = append(mock.calls.Classify, callInfo)
	mock.lockClassify.Unlock()
	return mock.ClassifyFunc(ctx, message)
}

func (mock *classifierMock) ClassifyCalls() []struct {
	Ctx     context.Context
	Message string
} {
	mock.lockClassify.RLock()
	calls := mock.calls.Classify
	mock.lockClassify.RUnlock()
	return calls
}
