package account

import (
	"context"
	"sync"
	
	"github.com/heartmarshall/edip-crm/internal/domain"
)

var _ updateRepo = &updateRepoMock{}

type updateRepoMock struct {
	ListByAccountFunc func(ctx context.Context, bsnid string) ([]*domain.Update, error)

	calls struct {
		ListByAccount []struct {
			Ctx   context.Context
			Bsnid string
		}
	}
	lockListByAccount sync.RWMutex
}

func (mock *updateRepoMock) ListByAccount(ctx context.Context, bsnid string) ([]*domain.Update, error) {
	if mock.ListByAccountFunc == nil {
		panic("updateRepoMock.ListByAccountFunc: method is nil but updateRepo.ListByAccount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Bsnid string
	}{
		Ctx:   ctx,
		Bsnid: bsnid,
	}
	mock.lockListByAccount.Lock()
	mock.calls.ListByAccount = append(mock.calls.ListByAccount, callInfo)
	mock.lockListByAccount.Unlock()
	return mock.ListByAccountFunc(ctx, bsnid)
}

func (mock *updateRepoMock) ListByAccountCalls() []struct {
	Ctx   context.Context
	Bsnid string
} {
	var calls []struct {
		Ctx   context.Context
		Bsnid string
	}
	mock.lockListByAccount.RLock()
	calls = mock.calls.ListByAccount
	mock.lockListByAccount.RUnlock()
	return calls
}
