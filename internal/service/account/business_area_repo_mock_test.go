package account

import (
	"context"
	"sync"
	
	"github.com/heartmarshall/edip-crm/internal/domain"
)

var _ businessAreaRepo = &businessAreaRepoMock{}

type businessAreaRepoMock struct {
	GetFunc func(ctx context.Context, name string) (*domain.BusinessArea, error)

	calls struct {
		Get []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockGet sync.RWMutex
}

func (mock *businessAreaRepoMock) Get(ctx context.Context, name string) (*domain.BusinessArea, error) {
	if mock.GetFunc == nil {
		panic("businessAreaRepoMock.GetFunc: method is nil but businessAreaRepo.Get was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, name)
}

func (mock *businessAreaRepoMock) GetCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
